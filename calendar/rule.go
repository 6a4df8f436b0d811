package calendar

import (
	"fmt"
	"sort"
	"time"
)

// DateFunc calculates the canonical date of a holiday for the given year.
// The second return value is false when the holiday does not occur that year.
type DateFunc func(year int, c *Computus) (Date, bool)

// Holiday is one occurrence of a named holiday.
type Holiday struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Date     Date   `json:"date"`
	Observed Date   `json:"observed"`
}

// Shifted reports whether the holiday is observed on a different day.
func (h Holiday) Shifted() bool { return h.Date != h.Observed }

// Rule describes the yearly occurrence of a holiday.
//
// A Rule is usually built with one of the constructors below and refined with
// Observe and Between:
//   Fixed("Independence Day", time.July, 4).Observe(ShiftStraddle)
//   NthWeekday("Juneteenth", ...).Between(2021, 0)
type Rule struct {
	Name     string
	When     DateFunc
	Observed ShiftPolicy
	// Since and Until bound the years the rule applies to, both inclusive.
	// Zero means unbounded.
	Since int
	Until int
}

// Fixed creates a Rule for an exact day of a month. It panics when the day
// can never exist in that month; Feb 29th is allowed and simply does not
// occur in common years.
func Fixed(name string, month time.Month, day int) Rule {
	if _, err := NewDate(2000, month, day); err != nil {
		panic(fmt.Sprintf("fixed holiday %q: %v", name, err))
	}
	return Rule{
		Name: name,
		When: func(year int, _ *Computus) (Date, bool) {
			d, err := NewDate(year, month, day)
			return d, err == nil
		},
	}
}

// EasterOffset creates a Rule for a day offset from Western Easter Sunday.
func EasterOffset(name string, days int) Rule {
	return Rule{
		Name: name,
		When: func(year int, c *Computus) (Date, bool) {
			return c.EasterSunday(year).AddDays(days), true
		},
	}
}

// OrthodoxOffset creates a Rule for a day offset from Orthodox Easter Sunday.
func OrthodoxOffset(name string, days int) Rule {
	return Rule{
		Name: name,
		When: func(year int, c *Computus) (Date, bool) {
			return c.OrthodoxEasterSunday(year).AddDays(days), true
		},
	}
}

// NthWeekday creates a Rule for the nth weekday of a month, such as the
// second Monday of October. Negative n counts from the end of the month.
func NthWeekday(name string, month time.Month, wd time.Weekday, n int) Rule {
	return Rule{
		Name: name,
		When: func(year int, _ *Computus) (Date, bool) {
			return NthWeekdayOfMonth(year, month, wd, n)
		},
	}
}

// WeekdayOnOrAfter creates a Rule for the first wd on or after a fixed day,
// such as the Saturday between June 20th and 26th.
func WeekdayOnOrAfter(name string, month time.Month, day int, wd time.Weekday) Rule {
	return Rule{
		Name: name,
		When: func(year int, _ *Computus) (Date, bool) {
			anchor, err := NewDate(year, month, day)
			if err != nil {
				return Date{}, false
			}
			return FindNext(anchor, wd), true
		},
	}
}

// Custom creates a Rule from an arbitrary DateFunc.
func Custom(name string, fn DateFunc) Rule {
	return Rule{Name: name, When: fn}
}

// Observe returns a copy of r observed under policy p.
func (r Rule) Observe(p ShiftPolicy) Rule {
	r.Observed = p
	return r
}

// Between returns a copy of r restricted to the years since..until.
// Zero leaves a bound open.
func (r Rule) Between(since, until int) Rule {
	r.Since, r.Until = since, until
	return r
}

// Applies reports whether r is in force in year.
func (r Rule) Applies(year int) bool {
	if r.Since != 0 && year < r.Since {
		return false
	}
	if r.Until != 0 && year > r.Until {
		return false
	}
	return true
}

// Occurrence evaluates r for year.
func (r Rule) Occurrence(year int, c *Computus) (Holiday, bool) {
	if !r.Applies(year) || r.When == nil {
		return Holiday{}, false
	}
	d, ok := r.When(year, c)
	if !ok {
		return Holiday{}, false
	}
	return Holiday{
		Name:     r.Name,
		Date:     d,
		Observed: ShiftWeekend(d, r.Observed),
	}, true
}

// Table is a jurisdiction's holiday calendar built from declarative rules.
// It is safe for concurrent use once constructed.
type Table struct {
	Code     string
	Name     string
	rules    []Rule
	computus *Computus
}

// NewTable creates a Table evaluated against DefaultComputus.
func NewTable(code, name string, rules ...Rule) *Table {
	return &Table{Code: code, Name: name, rules: rules, computus: DefaultComputus}
}

// WithComputus returns a copy of t evaluated against c.
func (t *Table) WithComputus(c *Computus) *Table {
	cp := *t
	cp.computus = c
	return &cp
}

// Extend returns a new Table with t's rules followed by rules.
func (t *Table) Extend(code, name string, rules ...Rule) *Table {
	all := make([]Rule, 0, len(t.rules)+len(rules))
	all = append(all, t.rules...)
	all = append(all, rules...)
	return &Table{Code: code, Name: name, rules: all, computus: t.computus}
}

// Rules returns a copy of the table's rules.
func (t *Table) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// Holidays returns every holiday whose canonical date falls in year, sorted
// by observed date and then name. Holidays sharing a date are all kept.
func (t *Table) Holidays(year int) []Holiday {
	out := make([]Holiday, 0, len(t.rules))
	for _, r := range t.rules {
		h, ok := r.Occurrence(year, t.computus)
		if !ok {
			continue
		}
		h.Code = t.Code
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Observed != out[j].Observed {
			return out[i].Observed.Before(out[j].Observed)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup returns the holidays whose canonical or observed date is d.
// Neighbouring years are consulted because weekend shifts can cross
// December 31st.
func (t *Table) Lookup(d Date) []Holiday {
	var out []Holiday
	for year := d.year - 1; year <= d.year+1; year++ {
		if year < MinYear || year > MaxYear {
			continue
		}
		for _, h := range t.Holidays(year) {
			if h.Date == d || h.Observed == d {
				out = append(out, h)
			}
		}
	}
	return out
}

// IsHoliday reports whether d is the canonical or observed date of a holiday.
func (t *Table) IsHoliday(d Date) bool {
	for year := d.year - 1; year <= d.year+1; year++ {
		if year < MinYear || year > MaxYear {
			continue
		}
		for _, r := range t.rules {
			h, ok := r.Occurrence(year, t.computus)
			if ok && (h.Date == d || h.Observed == d) {
				return true
			}
		}
	}
	return false
}
