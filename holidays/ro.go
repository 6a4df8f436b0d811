package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

func newRO() *calendar.Table {
	return calendar.NewTable("RO", "Romania",
		newYear,
		calendar.Fixed("Day after New Year's Day", time.January, 2),
		calendar.Fixed("Epiphany", time.January, 6).Between(2024, 0),
		calendar.Fixed("Synaxis of St. John the Baptist", time.January, 7).Between(2024, 0),
		calendar.Fixed("Unification Day", time.January, 24).Between(2017, 0),
		orthodoxGoodFriday.Between(2018, 0),
		orthodoxEaster,
		orthodoxEasterMonday,
		labourDay,
		calendar.Fixed("Children's Day", time.June, 1).Between(2017, 0),
		orthodoxWhitSunday,
		orthodoxWhitMonday,
		assumption,
		calendar.Fixed("St. Andrew's Day", time.November, 30).Between(2012, 0),
		calendar.Fixed("National Day", time.December, 1),
		christmas,
		renamed(boxingDay, "Second Day of Christmas"),
	)
}
