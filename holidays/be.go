package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

func newBE() *calendar.Table {
	return calendar.NewTable("BE", "Belgium",
		newYear,
		easterMonday,
		labourDay,
		ascension,
		whitMonday,
		calendar.Fixed("National Day", time.July, 21),
		assumption,
		allSaints,
		calendar.Fixed("Armistice Day", time.November, 11),
		christmas,
	)
}
