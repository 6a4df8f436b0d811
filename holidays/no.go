package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

func newNO() *calendar.Table {
	return calendar.NewTable("NO", "Norway",
		newYear,
		maundyThursday,
		goodFriday,
		easterSunday,
		easterMonday,
		labourDay,
		calendar.Fixed("Constitution Day", time.May, 17),
		ascension,
		whitSunday,
		whitMonday,
		christmas,
		renamed(boxingDay, "Second Day of Christmas"),
	)
}
