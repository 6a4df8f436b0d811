package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/marketcal/calendar"
)

func testTable() *calendar.Table {
	return calendar.NewTable("XX", "Testland",
		calendar.Fixed("New Year", time.January, 1).Observe(calendar.ShiftStraddle),
		calendar.EasterOffset("Good Friday", -2),
		calendar.EasterOffset("Easter Monday", 1),
		calendar.NthWeekday("Spring Holiday", time.May, time.Monday, -1),
		calendar.Fixed("Leap Day", time.February, 29),
		calendar.Fixed("Founders Day", time.June, 10).Between(2020, 2022),
		calendar.WeekdayOnOrAfter("Midsummer", time.June, 20, time.Saturday),
		calendar.Fixed("Christmas", time.December, 25).Observe(calendar.ShiftForward),
		calendar.Fixed("Boxing Day", time.December, 26).Observe(calendar.ShiftPairedAfter),
	)
}

func TestFixedPanicsOnImpossibleDay(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { calendar.Fixed("Nope", time.February, 30) })
	assert.NotPanics(t, func() { calendar.Fixed("Leap Day", time.February, 29) })
}

func TestRuleBetween(t *testing.T) {
	t.Parallel()

	r := calendar.Fixed("Founders Day", time.June, 10).Between(2020, 2022)
	assert.False(t, r.Applies(2019))
	assert.True(t, r.Applies(2020))
	assert.True(t, r.Applies(2022))
	assert.False(t, r.Applies(2023))

	_, ok := r.Occurrence(2019, nil)
	assert.False(t, ok)
	h, ok := r.Occurrence(2021, nil)
	require.True(t, ok)
	assert.Equal(t, d(2021, time.June, 10), h.Date)
}

func TestTableHolidays(t *testing.T) {
	t.Parallel()

	got := testTable().Holidays(2021)
	want := []calendar.Holiday{
		{Code: "XX", Name: "New Year", Date: d(2021, 1, 1), Observed: d(2021, 1, 1)},
		{Code: "XX", Name: "Good Friday", Date: d(2021, 4, 2), Observed: d(2021, 4, 2)},
		{Code: "XX", Name: "Easter Monday", Date: d(2021, 4, 5), Observed: d(2021, 4, 5)},
		{Code: "XX", Name: "Spring Holiday", Date: d(2021, 5, 31), Observed: d(2021, 5, 31)},
		{Code: "XX", Name: "Founders Day", Date: d(2021, 6, 10), Observed: d(2021, 6, 10)},
		{Code: "XX", Name: "Midsummer", Date: d(2021, 6, 26), Observed: d(2021, 6, 26)},
		// Christmas on Saturday moves to Monday, Boxing Day on Sunday to Tuesday
		{Code: "XX", Name: "Christmas", Date: d(2021, 12, 25), Observed: d(2021, 12, 27)},
		{Code: "XX", Name: "Boxing Day", Date: d(2021, 12, 26), Observed: d(2021, 12, 28)},
	}
	assert.Equal(t, want, got)
}

func TestTableLeapDayAndYearRange(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	names := func(hs []calendar.Holiday) []string {
		out := make([]string, len(hs))
		for i, h := range hs {
			out[i] = h.Name
		}
		return out
	}
	assert.Contains(t, names(tbl.Holidays(2024)), "Leap Day")
	assert.NotContains(t, names(tbl.Holidays(2023)), "Leap Day")
	assert.NotContains(t, names(tbl.Holidays(2023)), "Founders Day")
}

func TestTableIsHolidayAcrossYearBoundary(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	// 2022-01-01 is a Saturday, observed on Friday 2021-12-31
	assert.True(t, tbl.IsHoliday(d(2021, 12, 31)))
	assert.True(t, tbl.IsHoliday(d(2022, 1, 1)))
	assert.False(t, tbl.IsHoliday(d(2022, 1, 3)))

	found := tbl.Lookup(d(2021, 12, 31))
	require.Len(t, found, 1)
	assert.Equal(t, "New Year", found[0].Name)
	assert.Equal(t, d(2022, 1, 1), found[0].Date)
	assert.True(t, found[0].Shifted())
}

func TestTableAsHolidayChecker(t *testing.T) {
	t.Parallel()

	var cal calendar.HolidayChecker = testTable()
	// Friday 2021-12-24 + 1 open day skips the weekend and both observed days
	got, err := calendar.AdvanceWorkingDays(cal, d(2021, 12, 24), calendar.Forward, 1, false)
	require.NoError(t, err)
	assert.Equal(t, d(2021, 12, 29), got)

	got, err = calendar.AdvanceWorkingDays(cal, d(2021, 4, 6), calendar.Backward, 1, false)
	require.NoError(t, err)
	assert.Equal(t, d(2021, 4, 1), got)
}

func TestTableWithComputus(t *testing.T) {
	t.Parallel()

	c := calendar.NewComputus()
	tbl := testTable().WithComputus(c)
	tbl.Holidays(2030)
	assert.Equal(t, 1, c.Western.Len())
	assert.Equal(t, 0, c.Orthodox.Len())

	ext := tbl.Extend("XX-A", "Testland A", calendar.OrthodoxOffset("Orthodox Easter", 0))
	assert.Len(t, ext.Rules(), len(tbl.Rules())+1)
	assert.True(t, ext.IsHoliday(d(2024, time.May, 5)))
	assert.False(t, tbl.IsHoliday(d(2024, time.May, 5)))
	// 2023 and 2024 were evaluated before the match
	assert.Equal(t, 2, c.Orthodox.Len())
}
