package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

func newAT() *calendar.Table {
	return calendar.NewTable("AT", "Austria",
		newYear,
		epiphany,
		easterMonday,
		renamed(labourDay, "Staatsfeiertag"),
		ascension,
		whitMonday,
		corpusChristi,
		assumption,
		calendar.Fixed("National Day", time.October, 26),
		allSaints,
		calendar.Fixed("Immaculate Conception", time.December, 8),
		christmas,
		renamed(boxingDay, "St. Stephen's Day"),
	)
}
