package calendar

import "time"

// IsWeekend reports whether day is Saturday or Sunday.
func IsWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

// FindNext returns the first date on or after d that falls on wd.
func FindNext(d Date, wd time.Weekday) Date {
	delta := (int(wd) - int(d.Weekday()) + 7) % 7
	return d.AddDays(delta)
}

// FindPrevious returns the last date on or before d that falls on wd.
func FindPrevious(d Date, wd time.Weekday) Date {
	delta := (int(d.Weekday()) - int(wd) + 7) % 7
	return d.AddDays(-delta)
}

// FindNearest returns the occurrence of wd closest to d. The result is never
// more than 3 days away; a forward distance of 4 or more resolves to the
// previous week's occurrence.
func FindNearest(d Date, wd time.Weekday) Date {
	delta := (int(wd) - int(d.Weekday()) + 7) % 7
	if delta > 3 {
		delta -= 7
	}
	return d.AddDays(delta)
}

// NthWeekdayOnOrAfter returns the nth occurrence of wd counting from anchor.
// n == 1 is the first occurrence on or after anchor; every further n adds a
// week. The result is not checked to stay within anchor's month.
func NthWeekdayOnOrAfter(anchor Date, wd time.Weekday, n int) Date {
	return FindNext(anchor, wd).AddDays((n - 1) * 7)
}

// NthWeekdayOfMonth returns the nth wd of the month.
//
// The value of n affects the direction of counting:
//   n > 0: counting begins at the first day of the month.
//   n < 0: counting begins at the last day of the month.
// The second return value is false when n is zero or the month has no such
// occurrence (the fifth Monday of a four-Monday month).
func NthWeekdayOfMonth(year int, month time.Month, wd time.Weekday, n int) (Date, bool) {
	switch {
	case n > 0:
		d := NthWeekdayOnOrAfter(Date{year: year, month: month, day: 1}, wd, n)
		return d, d.month == month
	case n < 0:
		d := LastWeekdayOfMonth(year, month, wd).AddDays((n + 1) * 7)
		return d, d.month == month
	}
	return Date{}, false
}

// LastWeekdayOfMonth returns the last wd of the month.
func LastWeekdayOfMonth(year int, month time.Month, wd time.Weekday) Date {
	return FindPrevious(Date{year: year, month: month, day: DaysIn(year, month)}, wd)
}

// IsWeekdayN reports whether d is the nth occurrence of wd in its month,
// counting from the end of the month when n is negative.
func IsWeekdayN(d Date, wd time.Weekday, n int) bool {
	if d.Weekday() != wd || n == 0 {
		return false
	}
	if n > 0 {
		return (d.day-1)/7 == n-1
	}
	return (DaysIn(d.year, d.month)-d.day)/7 == -n-1
}
