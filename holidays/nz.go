package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// New Zealand public holidays. Waitangi Day and Anzac Day are moved off
// the weekend since 2014.
func newNZ() *calendar.Table {
	waitangi := calendar.Fixed("Waitangi Day", time.February, 6)
	anzac := calendar.Fixed("Anzac Day", time.April, 25)

	return calendar.NewTable("NZ", "New Zealand",
		newYear.Observe(calendar.ShiftForward),
		calendar.Fixed("Day after New Year's Day", time.January, 2).Observe(calendar.ShiftPairedAfter),
		waitangi.Between(0, 2013),
		waitangi.Observe(calendar.ShiftForward).Between(2014, 0),
		goodFriday,
		easterMonday,
		anzac.Between(0, 2013),
		anzac.Observe(calendar.ShiftForward).Between(2014, 0),
		calendar.NthWeekday("Queen's Birthday", time.June, time.Monday, 1).Between(0, 2022),
		calendar.NthWeekday("King's Birthday", time.June, time.Monday, 1).Between(2023, 0),
		calendar.Custom("Labour Day", nzLabourDay),
		christmas.Observe(calendar.ShiftForward),
		boxingDay.Observe(calendar.ShiftPairedAfter),
	)
}

// nzLabourDay is the fourth Monday of October since 1910 and the second
// Wednesday of October before.
func nzLabourDay(year int, _ *calendar.Computus) (calendar.Date, bool) {
	if year < 1910 {
		return calendar.NthWeekdayOfMonth(year, time.October, time.Wednesday, 2)
	}
	return calendar.NthWeekdayOfMonth(year, time.October, time.Monday, 4)
}
