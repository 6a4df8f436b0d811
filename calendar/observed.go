package calendar

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ShiftPolicy represents a rule for observing a holiday that falls on a
// weekend (or, for paired holidays, on a day already taken by its partner).
type ShiftPolicy int

// ShiftPolicy values
const (
	ShiftNone          ShiftPolicy = iota // the exact day only
	ShiftForward                          // Saturday and Sunday to Monday
	ShiftSundayForward                    // Sunday to Monday, Saturday unchanged
	ShiftStraddle                         // Saturday to Friday, Sunday to Monday
	ShiftPairedAfter                      // second of two consecutive holidays
	ShiftPairedBefore                     // holiday preceding another fixed holiday
)

// shiftDeltas holds the day delta per policy, indexed by time.Weekday
// (Sunday first). National payroll rules depend on these exact values.
var shiftDeltas = map[ShiftPolicy][7]int{
	//                  Sun Mon Tue Wed Thu Fri Sat
	ShiftNone:          {0, 0, 0, 0, 0, 0, 0},
	ShiftForward:       {1, 0, 0, 0, 0, 0, 2},
	ShiftSundayForward: {1, 0, 0, 0, 0, 0, 0},
	ShiftStraddle:      {1, 0, 0, 0, 0, 0, -1},
	ShiftPairedAfter:   {2, 1, 0, 0, 0, 0, 2},
	ShiftPairedBefore:  {-2, 0, 0, 0, 0, 0, -1},
}

var shiftNames = map[ShiftPolicy]string{
	ShiftNone:          "none",
	ShiftForward:       "forward",
	ShiftSundayForward: "sunday-forward",
	ShiftStraddle:      "straddle",
	ShiftPairedAfter:   "paired-after",
	ShiftPairedBefore:  "paired-before",
}

// ShiftWeekend returns the date on which a holiday falling on d is observed
// under policy p. Unknown policies leave d unchanged.
func ShiftWeekend(d Date, p ShiftPolicy) Date {
	return d.AddDays(p.Delta(d.Weekday()))
}

// Delta returns the day delta p applies to a holiday on wd. Unknown policies
// apply no delta.
func (p ShiftPolicy) Delta(wd time.Weekday) int {
	return shiftDeltas[p][wd]
}

func (p ShiftPolicy) String() string {
	if s, ok := shiftNames[p]; ok {
		return s
	}
	return "unknown"
}

// ParseShiftPolicy parses the name returned by ShiftPolicy.String.
func ParseShiftPolicy(s string) (ShiftPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range shiftNames {
		if name == s {
			return p, nil
		}
	}
	return ShiftNone, errors.Wrapf(ErrInvalidArgument, "unknown shift policy %q", s)
}
