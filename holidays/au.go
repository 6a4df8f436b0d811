package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// National public holidays in Australia. Labour Day follows New South
// Wales, the Australian Capital Territory and South Australia.
func newAU() *calendar.Table {
	return calendar.NewTable("AU", "Australia",
		newYear.Observe(calendar.ShiftForward),
		calendar.Fixed("Australia Day", time.January, 26).Observe(calendar.ShiftForward),
		goodFriday,
		calendar.EasterOffset("Easter Saturday", -1),
		easterMonday,
		calendar.Custom("Anzac Day", anzacDay),
		calendar.NthWeekday("Queen's Birthday", time.June, time.Monday, 2).Between(0, 2022),
		calendar.NthWeekday("King's Birthday", time.June, time.Monday, 2).Between(2023, 0),
		calendar.NthWeekday("Labour Day", time.October, time.Monday, 1),
		christmas.Observe(calendar.ShiftForward),
		boxingDay.Observe(calendar.ShiftPairedAfter),
	)
}

// anzacDay is April 25th. It is not moved off a weekend, but when it
// clashes with Easter Sunday or Monday it is held the day after Easter
// Monday.
func anzacDay(year int, c *calendar.Computus) (calendar.Date, bool) {
	d, err := calendar.NewDate(year, time.April, 25)
	if err != nil {
		return calendar.Date{}, false
	}
	easter := c.EasterSunday(year)
	if d == easter || d == easter.AddDays(1) {
		d = easter.AddDays(2)
	}
	return d, true
}
