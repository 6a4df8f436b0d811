package calendar_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/marketcal/calendar"
)

func TestNewDate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		"ok/ regular day":             {2024, time.March, 31, false},
		"ok/ leap day":                {2024, time.February, 29, false},
		"ng/ leap day in common year": {2023, time.February, 29, true},
		"ng/ day 31 of April":         {2024, time.April, 31, true},
		"ng/ month 13":                {2024, 13, 1, true},
		"ng/ day 0":                   {2024, time.January, 0, true},
		"ng/ year 0":                  {0, time.January, 1, true},
		"ng/ year 10000":              {10000, time.January, 1, true},
		"ok/ first supported day":     {1, time.January, 1, false},
		"ok/ last supported day":      {9999, time.December, 31, false},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d, err := calendar.NewDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, calendar.ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, d.Year())
			assert.Equal(t, tt.month, d.Month())
			assert.Equal(t, tt.day, d.Day())
		})
	}
}

func TestMustDatePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { calendar.MustDate(2021, time.February, 30) })
}

func TestDateOfDiscardsTimeOfDay(t *testing.T) {
	t.Parallel()

	jst := time.FixedZone("Asia/Tokyo", 9*60*60)
	// 2019-07-20 01:00 JST is still 2019-07-19 in UTC, DateOf keeps the local date
	tm := time.Date(2019, 7, 20, 1, 0, 0, 0, jst)
	assert.Equal(t, calendar.MustDate(2019, time.July, 20), calendar.DateOf(tm))
	assert.Equal(t, calendar.MustDate(2019, time.July, 19), calendar.DateOf(tm.UTC()))
}

func TestDateArithmetic(t *testing.T) {
	t.Parallel()

	d := calendar.MustDate(2024, time.February, 28)
	assert.Equal(t, calendar.MustDate(2024, time.February, 29), d.AddDays(1))
	assert.Equal(t, calendar.MustDate(2024, time.March, 1), d.AddDays(2))
	assert.Equal(t, calendar.MustDate(2023, time.December, 31), calendar.MustDate(2024, time.January, 1).AddDays(-1))
	assert.Equal(t, 366, calendar.MustDate(2024, time.January, 1).DaysUntil(calendar.MustDate(2025, time.January, 1)))
	assert.Equal(t, -1, d.DaysUntil(d.AddDays(-1)))

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.Equal(t, 0, d.Compare(calendar.MustDate(2024, time.February, 28)))
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, 59, d.YearDay())
}

func TestAddDaysChecked(t *testing.T) {
	t.Parallel()

	last := calendar.MustDate(calendar.MaxYear, time.December, 31)
	first := calendar.MustDate(calendar.MinYear, time.January, 1)

	got, err := last.AddDaysChecked(-1)
	require.NoError(t, err)
	assert.Equal(t, calendar.MustDate(calendar.MaxYear, time.December, 30), got)

	got, err = first.AddDaysChecked(0)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = last.AddDaysChecked(1)
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))
	_, err = first.AddDaysChecked(-1)
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))

	// the unchecked form keeps normalizing past the range
	assert.Equal(t, 10000, last.AddDays(1).Year())
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := calendar.ParseDate("2025-04-20")
	require.NoError(t, err)
	assert.Equal(t, calendar.MustDate(2025, time.April, 20), d)
	assert.Equal(t, "2025-04-20", d.String())

	_, err = calendar.ParseDate("2025-02-30")
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))

	_, err = calendar.ParseDate("20/04/2025")
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))
}

func TestDateText(t *testing.T) {
	t.Parallel()

	var d calendar.Date
	require.NoError(t, d.UnmarshalText([]byte("2000-02-29")))
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2000-02-29", string(b))
	assert.Error(t, d.UnmarshalText([]byte("1900-02-29")))
}
