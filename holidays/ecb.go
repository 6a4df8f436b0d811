package holidays

import (
	"github.com/alpacahq/marketcal/calendar"
)

// Closing days of the TARGET2 payment system.
func newECB() *calendar.Table {
	return calendar.NewTable("ECB", "European Central Bank",
		newYear,
		goodFriday,
		easterMonday,
		labourDay,
		christmas,
		renamed(boxingDay, "Christmas Holiday"),
	)
}
