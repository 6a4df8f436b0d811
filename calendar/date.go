package calendar

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for programmer errors such as a negative
	// open-day count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidDate is returned when a year/month/day combination does not
	// exist in the supported range.
	ErrInvalidDate = errors.New("invalid date")
)

const (
	MinYear = 1
	MaxYear = 9999

	dateLayout = "2006-01-02"
)

// Date is a calendar date without time-of-day or location.
// The zero value is not a valid date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for year, month and day. Combinations that do not
// exist (Feb 30th, month 13) or years outside MinYear..MaxYear are rejected
// instead of being normalized into an adjacent month or year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Wrapf(ErrInvalidDate, "year %d out of range [%d, %d]", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Date{}, errors.Wrapf(ErrInvalidDate, "month %d out of range", int(month))
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%04d-%02d has no day %d", year, int(month), day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on an invalid date.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "parse %q: %v", s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// DaysIn reports the number of days in the month of the given year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func fromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Time returns d at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// In returns d at midnight in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

func (d Date) YearDay() int { return d.Time().YearDay() }

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	return IsWeekend(d.Weekday())
}

// AddDays returns d shifted by n days. Month and year boundaries are crossed
// as needed. The result is unchecked and may leave MinYear..MaxYear; use
// AddDaysChecked when that matters.
func (d Date) AddDays(n int) Date {
	if n == 0 {
		return d
	}
	return fromTime(d.Time().AddDate(0, 0, n))
}

// AddDaysChecked is like AddDays but fails with ErrInvalidDate when the
// result falls outside MinYear..MaxYear.
func (d Date) AddDaysChecked(n int) (Date, error) {
	out := d.AddDays(n)
	if out.year < MinYear || out.year > MaxYear {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%s %+d days leaves year range [%d, %d]",
			d, n, MinYear, MaxYear)
	}
	return out, nil
}

// DaysUntil returns the signed number of days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(int(d.month) - int(o.month))
	default:
		return sign(d.day - o.day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
