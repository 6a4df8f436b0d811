package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// Swedish public holidays plus the eves banks close on.
func newSE() *calendar.Table {
	return calendar.NewTable("SE", "Sweden",
		newYear,
		epiphany,
		goodFriday,
		easterSunday,
		easterMonday,
		labourDay,
		ascension,
		whitSunday,
		calendar.Fixed("National Day", time.June, 6).Between(2005, 0),
		calendar.WeekdayOnOrAfter("Midsummer Eve", time.June, 19, time.Friday),
		calendar.WeekdayOnOrAfter("Midsummer Day", time.June, 20, time.Saturday),
		calendar.WeekdayOnOrAfter("All Saints' Day", time.October, 31, time.Saturday),
		christmasEve,
		christmas,
		renamed(boxingDay, "Second Day of Christmas"),
		newYearsEve,
	)
}
