package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// Bank holidays in England and Wales.
func newGB() *calendar.Table {
	return calendar.NewTable("GB", "United Kingdom",
		newYear.Observe(calendar.ShiftForward),
		goodFriday,
		easterMonday,
		except(calendar.NthWeekday("Early May Bank Holiday", time.May, time.Monday, 1), 1995, 2020),
		calendar.Fixed("VE Day", time.May, 8).Between(1995, 1995),
		calendar.Fixed("VE Day", time.May, 8).Between(2020, 2020),
		except(calendar.NthWeekday("Spring Bank Holiday", time.May, time.Monday, -1), 2002, 2012, 2022),
		calendar.Fixed("Spring Bank Holiday", time.June, 4).Between(2002, 2002),
		calendar.Fixed("Golden Jubilee", time.June, 3).Between(2002, 2002),
		calendar.Fixed("Spring Bank Holiday", time.June, 4).Between(2012, 2012),
		calendar.Fixed("Diamond Jubilee", time.June, 5).Between(2012, 2012),
		calendar.Fixed("Spring Bank Holiday", time.June, 2).Between(2022, 2022),
		calendar.Fixed("Platinum Jubilee", time.June, 3).Between(2022, 2022),
		calendar.NthWeekday("Summer Bank Holiday", time.August, time.Monday, -1),
		calendar.Fixed("Millennium Celebrations", time.December, 31).Between(1999, 1999),
		calendar.Fixed("Royal Wedding", time.April, 29).Between(2011, 2011),
		calendar.Fixed("State Funeral of Queen Elizabeth II", time.September, 19).Between(2022, 2022),
		calendar.Fixed("Coronation of King Charles III", time.May, 8).Between(2023, 2023),
		christmas.Observe(calendar.ShiftForward),
		boxingDay.Observe(calendar.ShiftPairedAfter),
	)
}
