package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// US federal holidays. Saturday holidays are observed on the Friday before,
// Sunday holidays on the Monday after.
func newUS() *calendar.Table {
	return calendar.NewTable("US", "United States",
		newYear.Observe(calendar.ShiftStraddle),
		calendar.NthWeekday("Martin Luther King Jr. Day", time.January, time.Monday, 3).Between(1986, 0),
		calendar.NthWeekday("Washington's Birthday", time.February, time.Monday, 3),
		calendar.NthWeekday("Memorial Day", time.May, time.Monday, -1),
		calendar.Fixed("Juneteenth", time.June, 19).Observe(calendar.ShiftStraddle).Between(2021, 0),
		calendar.Fixed("Independence Day", time.July, 4).Observe(calendar.ShiftStraddle),
		calendar.NthWeekday("Labor Day", time.September, time.Monday, 1),
		calendar.NthWeekday("Columbus Day", time.October, time.Monday, 2),
		calendar.Fixed("Veterans Day", time.November, 11).Observe(calendar.ShiftStraddle),
		calendar.NthWeekday("Thanksgiving Day", time.November, time.Thursday, 4),
		christmas.Observe(calendar.ShiftStraddle),
	)
}
