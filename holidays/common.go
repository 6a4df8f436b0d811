package holidays

import (
	"time"

	"github.com/alpacahq/marketcal/calendar"
)

// Holidays shared by most western jurisdictions.
var (
	newYear        = calendar.Fixed("New Year's Day", time.January, 1)
	epiphany       = calendar.Fixed("Epiphany", time.January, 6)
	maundyThursday = calendar.EasterOffset("Maundy Thursday", -3)
	goodFriday     = calendar.EasterOffset("Good Friday", -2)
	easterSunday   = calendar.EasterOffset("Easter Sunday", 0)
	easterMonday   = calendar.EasterOffset("Easter Monday", 1)
	labourDay      = calendar.Fixed("Labour Day", time.May, 1)
	ascension      = calendar.EasterOffset("Ascension Day", 39)
	whitSunday     = calendar.EasterOffset("Whit Sunday", 49)
	whitMonday     = calendar.EasterOffset("Whit Monday", 50)
	corpusChristi  = calendar.EasterOffset("Corpus Christi", 60)
	assumption     = calendar.Fixed("Assumption Day", time.August, 15)
	allSaints      = calendar.Fixed("All Saints' Day", time.November, 1)
	christmasEve   = calendar.Fixed("Christmas Eve", time.December, 24)
	christmas      = calendar.Fixed("Christmas Day", time.December, 25)
	boxingDay      = calendar.Fixed("Boxing Day", time.December, 26)
	newYearsEve    = calendar.Fixed("New Year's Eve", time.December, 31)
)

// Holidays of the Orthodox churches.
var (
	orthodoxGoodFriday   = calendar.OrthodoxOffset("Orthodox Good Friday", -2)
	orthodoxEaster       = calendar.OrthodoxOffset("Orthodox Easter Sunday", 0)
	orthodoxEasterMonday = calendar.OrthodoxOffset("Orthodox Easter Monday", 1)
	orthodoxWhitSunday   = calendar.OrthodoxOffset("Orthodox Whit Sunday", 49)
	orthodoxWhitMonday   = calendar.OrthodoxOffset("Orthodox Whit Monday", 50)
)

// renamed returns a copy of r under another name.
func renamed(r calendar.Rule, name string) calendar.Rule {
	r.Name = name
	return r
}

// except returns a copy of r that does not occur in the given years.
func except(r calendar.Rule, years ...int) calendar.Rule {
	when := r.When
	r.When = func(year int, c *calendar.Computus) (calendar.Date, bool) {
		for _, y := range years {
			if y == year {
				return calendar.Date{}, false
			}
		}
		return when(year, c)
	}
	return r
}
