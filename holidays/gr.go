package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// Greece observes the movable feasts of the Orthodox calendar.
func newGR() *calendar.Table {
	return calendar.NewTable("GR", "Greece",
		newYear,
		epiphany,
		calendar.OrthodoxOffset("Clean Monday", -48),
		calendar.Fixed("Independence Day", time.March, 25),
		orthodoxGoodFriday,
		orthodoxEasterMonday,
		labourDay,
		orthodoxWhitMonday,
		assumption,
		calendar.Fixed("Ochi Day", time.October, 28),
		christmas,
		calendar.Fixed("Synaxis of the Mother of God", time.December, 26),
	)
}
