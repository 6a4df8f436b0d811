package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// National holidays in Spain. Regional holidays, including Maundy Thursday
// and Easter Monday, are not part of the table.
func newES() *calendar.Table {
	return calendar.NewTable("ES", "Spain",
		newYear,
		epiphany,
		goodFriday,
		labourDay,
		assumption,
		calendar.Fixed("National Day of Spain", time.October, 12),
		allSaints,
		calendar.Fixed("Constitution Day", time.December, 6),
		calendar.Fixed("Immaculate Conception", time.December, 8),
		christmas,
	)
}
