// Package calendar is the holiday engine shared by every jurisdiction table.
//
// It provides a date-only value type, the Gregorian and Orthodox Easter
// computus with per-year memoization, weekday search primitives, weekend
// observation policies, declarative holiday rules and the working-day
// traversal used for business-day arithmetic.
//
// Work days are Monday through Friday on dates the supplied HolidayChecker
// does not report as holidays. As in the time package, all calculations
// assume a proleptic Gregorian calendar.
package calendar
