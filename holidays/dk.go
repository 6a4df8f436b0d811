package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

func newDK() *calendar.Table {
	return calendar.NewTable("DK", "Denmark",
		newYear,
		maundyThursday,
		goodFriday,
		easterSunday,
		easterMonday,
		// abolished from 2024
		calendar.EasterOffset("Great Prayer Day", 26).Between(0, 2023),
		ascension,
		whitSunday,
		whitMonday,
		calendar.Fixed("Constitution Day", time.June, 5),
		christmas,
		renamed(boxingDay, "Second Day of Christmas"),
	)
}
