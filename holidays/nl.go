package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

func newNL() *calendar.Table {
	return calendar.NewTable("NL", "Netherlands",
		newYear,
		goodFriday,
		easterMonday,
		calendar.Custom("King's Day", kingsDay).Between(2014, 0),
		calendar.Custom("Queen's Day", queensDay).Between(1949, 2013),
		calendar.Fixed("Liberation Day", time.May, 5),
		ascension,
		whitMonday,
		christmas,
		renamed(boxingDay, "Second Day of Christmas"),
	)
}

// kingsDay is April 27th, or the Saturday before when it falls on a Sunday.
func kingsDay(year int, _ *calendar.Computus) (calendar.Date, bool) {
	d, err := calendar.NewDate(year, time.April, 27)
	if err != nil {
		return calendar.Date{}, false
	}
	if d.Weekday() == time.Sunday {
		d = d.AddDays(-1)
	}
	return d, true
}

// queensDay is April 30th. On a Sunday it moved to the Saturday before
// until 1979 and to the Monday after from 1980.
func queensDay(year int, _ *calendar.Computus) (calendar.Date, bool) {
	d, err := calendar.NewDate(year, time.April, 30)
	if err != nil {
		return calendar.Date{}, false
	}
	if d.Weekday() == time.Sunday {
		if year < 1980 {
			return d.AddDays(-1), true
		}
		return d.AddDays(1), true
	}
	return d, true
}
