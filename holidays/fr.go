package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

func newFR() *calendar.Table {
	return calendar.NewTable("FR", "France",
		newYear,
		easterMonday,
		labourDay,
		calendar.Fixed("Victory in Europe Day", time.May, 8),
		ascension,
		whitMonday,
		calendar.Fixed("Bastille Day", time.July, 14),
		assumption,
		allSaints,
		calendar.Fixed("Armistice Day", time.November, 11),
		christmas,
	)
}
