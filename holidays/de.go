package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

var (
	reformationDay = calendar.Fixed("Reformation Day", time.October, 31)
	womensDay      = calendar.Fixed("International Women's Day", time.March, 8)
	repentanceDay  = calendar.Custom("Day of Repentance and Prayer", dayOfRepentance)
)

// Nationwide holidays in Germany. Reformation Day was a nationwide holiday
// only in 2017, its 500th anniversary.
func newDE() *calendar.Table {
	return calendar.NewTable("DE", "Germany",
		newYear,
		goodFriday,
		easterMonday,
		labourDay,
		ascension,
		whitMonday,
		calendar.Fixed("German Unity Day", time.October, 3).Between(1990, 0),
		reformationDay.Between(2017, 2017),
		christmas,
		renamed(boxingDay, "Second Day of Christmas"),
	)
}

// newDEStates builds the tables of the German states. Each extends the
// nationwide table.
func newDEStates(de *calendar.Table) []*calendar.Table {
	// states where Reformation Day is a holiday every year; 2017 comes
	// from the nationwide table
	reformation := except(reformationDay, 2017)

	return []*calendar.Table{
		de.Extend("DE-BB", "Brandenburg",
			easterSunday,
			whitSunday,
			reformation,
		),
		de.Extend("DE-BE", "Berlin",
			womensDay.Between(2019, 0),
			calendar.Fixed("Liberation Day", time.May, 8).Between(2020, 2020),
		),
		de.Extend("DE-BW", "Baden-Württemberg",
			epiphany,
			corpusChristi,
			allSaints,
		),
		de.Extend("DE-BY", "Bavaria",
			epiphany,
			corpusChristi,
			assumption,
			allSaints,
		),
		de.Extend("DE-HE", "Hesse",
			corpusChristi,
		),
		de.Extend("DE-MV", "Mecklenburg-Western Pomerania",
			womensDay.Between(2023, 0),
			reformation,
		),
		de.Extend("DE-NW", "North Rhine-Westphalia",
			corpusChristi,
			allSaints,
		),
		de.Extend("DE-RP", "Rhineland-Palatinate",
			corpusChristi,
			allSaints,
		),
		de.Extend("DE-SL", "Saarland",
			corpusChristi,
			assumption,
			allSaints,
		),
		de.Extend("DE-SN", "Saxony",
			reformation,
			repentanceDay,
		),
		de.Extend("DE-ST", "Saxony-Anhalt",
			epiphany,
			reformation,
		),
		de.Extend("DE-TH", "Thuringia",
			calendar.Fixed("World Children's Day", time.September, 20).Between(2019, 0),
			reformation,
		),
	}
}

// dayOfRepentance is the last Wednesday before November 23rd.
func dayOfRepentance(year int, _ *calendar.Computus) (calendar.Date, bool) {
	d, err := calendar.NewDate(year, time.November, 22)
	if err != nil {
		return calendar.Date{}, false
	}
	return calendar.FindPrevious(d, time.Wednesday), true
}
