package calendar

import (
	"time"

	"github.com/pkg/errors"
)

// HolidayChecker reports whether a date is a holiday in some jurisdiction.
// Implementations must be pure functions of the date.
type HolidayChecker interface {
	IsHoliday(d Date) bool
}

// HolidayCheckerFunc adapts a function to a HolidayChecker.
type HolidayCheckerFunc func(d Date) bool

func (f HolidayCheckerFunc) IsHoliday(d Date) bool { return f(d) }

// NoHolidays is a HolidayChecker with no holidays at all; only weekends are
// closed.
var NoHolidays HolidayChecker = HolidayCheckerFunc(func(Date) bool { return false })

// Direction is the direction of a working-day traversal.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (dir Direction) String() string {
	if dir == Backward {
		return "backward"
	}
	return "forward"
}

// IsWorkingDay reports whether d is neither a weekend day nor a holiday.
func IsWorkingDay(cal HolidayChecker, d Date) bool {
	return !d.IsWeekend() && !cal.IsHoliday(d)
}

// AdvanceWorkingDays scans from start in direction dir and returns the date
// on which count open days have been satisfied. The result is always a
// working day; a count of zero resolves to the first working day reached.
//
// If includeSameDay is false the scan begins one day after (or before) start,
// so start itself can never be returned. A scan that would leave
// MinYear..MaxYear fails with ErrInvalidDate.
func AdvanceWorkingDays(cal HolidayChecker, start Date, dir Direction, count int, includeSameDay bool) (Date, error) {
	if count < 0 {
		return Date{}, errors.Wrapf(ErrInvalidArgument, "open day count must not be negative, got %d", count)
	}
	if dir != Backward {
		dir = Forward
	}

	cursor := start
	var err error
	if !includeSameDay {
		if cursor, err = cursor.AddDaysChecked(int(dir)); err != nil {
			return Date{}, err
		}
	}

	satisfied := 0
	for {
		wd := cursor.Weekday()
		step := int(dir)
		switch {
		case IsWeekend(wd):
			step = weekendJump(wd, dir)
		case cal.IsHoliday(cursor):
			step = holidayJump(wd, dir)
		default:
			satisfied++
			if satisfied >= count {
				return cursor, nil
			}
		}
		if cursor, err = cursor.AddDaysChecked(step); err != nil {
			return Date{}, errors.WithMessagef(err, "%d of %d open days found from %s", satisfied, count, start)
		}
	}
}

// weekendJump moves a cursor sitting on a weekend day to the closest weekday
// in the traversal direction.
func weekendJump(wd time.Weekday, dir Direction) int {
	if dir == Forward {
		if wd == time.Saturday {
			return 2
		}
		return 1
	}
	if wd == time.Sunday {
		return -2
	}
	return -1
}

// holidayJump moves a cursor off a weekday holiday, hopping over the weekend
// when the holiday borders it.
func holidayJump(wd time.Weekday, dir Direction) int {
	if dir == Forward {
		if wd == time.Friday {
			return 3
		}
		return 1
	}
	if wd == time.Monday {
		return -3
	}
	return -1
}

// NextWorkingDay returns the first working day strictly after d, or the zero
// Date when none exists before the end of MaxYear.
func NextWorkingDay(cal HolidayChecker, d Date) Date {
	next, _ := AdvanceWorkingDays(cal, d, Forward, 1, false)
	return next
}

// PreviousWorkingDay returns the last working day strictly before d, or the
// zero Date when none exists after the start of MinYear.
func PreviousWorkingDay(cal HolidayChecker, d Date) Date {
	prev, _ := AdvanceWorkingDays(cal, d, Backward, 1, false)
	return prev
}

// CountWorkingDays returns the number of working days between from and to,
// both inclusive. The result is negative when to is before from.
func CountWorkingDays(cal HolidayChecker, from, to Date) int {
	factor := 1
	if to.Before(from) {
		factor = -1
		from, to = to, from
	}
	n := 0
	for d := from; !d.After(to); d = d.AddDays(1) {
		if IsWorkingDay(cal, d) {
			n++
		}
	}
	return factor * n
}
