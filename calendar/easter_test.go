package calendar_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alpacahq/marketcal/calendar"
)

func TestComputeEaster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want calendar.Date
	}{
		{1961, calendar.MustDate(1961, time.April, 2)},
		{2000, calendar.MustDate(2000, time.April, 23)},
		{2008, calendar.MustDate(2008, time.March, 23)},
		{2018, calendar.MustDate(2018, time.April, 1)},
		{2019, calendar.MustDate(2019, time.April, 21)},
		{2024, calendar.MustDate(2024, time.March, 31)},
		{2025, calendar.MustDate(2025, time.April, 20)},
		{2038, calendar.MustDate(2038, time.April, 25)},
		{2285, calendar.MustDate(2285, time.March, 22)},
	}

	for _, test := range tests {
		got := calendar.ComputeEaster(test.year)
		if got != test.want {
			t.Errorf("got: %s; want: %s (%d)", got, test.want, test.year)
		}
	}
}

func TestComputeOrthodoxEaster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want calendar.Date
	}{
		{2010, calendar.MustDate(2010, time.April, 4)},
		{2017, calendar.MustDate(2017, time.April, 16)},
		{2018, calendar.MustDate(2018, time.April, 8)},
		{2019, calendar.MustDate(2019, time.April, 28)},
		{2020, calendar.MustDate(2020, time.April, 19)},
		{2021, calendar.MustDate(2021, time.May, 2)},
		{2022, calendar.MustDate(2022, time.April, 24)},
		{2023, calendar.MustDate(2023, time.April, 16)},
		{2024, calendar.MustDate(2024, time.May, 5)},
		{2025, calendar.MustDate(2025, time.April, 20)},
	}

	for _, test := range tests {
		got := calendar.ComputeOrthodoxEaster(test.year)
		if got != test.want {
			t.Errorf("got: %s; want: %s (%d)", got, test.want, test.year)
		}
	}
}

func TestEasterIsSpringSunday(t *testing.T) {
	t.Parallel()

	for year := 1583; year <= 4099; year++ {
		e := calendar.ComputeEaster(year)
		if e.Weekday() != time.Sunday {
			t.Fatalf("easter %s is a %s", e, e.Weekday())
		}
		if e.Month() != time.March && e.Month() != time.April {
			t.Fatalf("easter %s is outside March and April", e)
		}
		if e.Year() != year {
			t.Fatalf("easter %s is not in %d", e, year)
		}

		o := calendar.ComputeOrthodoxEaster(year)
		if o.Weekday() != time.Sunday {
			t.Fatalf("orthodox easter %s is a %s", o, o.Weekday())
		}
		if year >= 1900 && year < 2100 && o.Before(e) {
			t.Fatalf("orthodox easter %s is before western easter %s", o, e)
		}
	}
}

func TestEasterCache(t *testing.T) {
	t.Parallel()

	var calls int64
	cache := calendar.NewEasterCache(func(year int) calendar.Date {
		atomic.AddInt64(&calls, 1)
		return calendar.ComputeEaster(year)
	})

	var hits, misses int64
	cache.Observe(func(hit bool) {
		if hit {
			atomic.AddInt64(&hits, 1)
		} else {
			atomic.AddInt64(&misses, 1)
		}
	})

	first := cache.Sunday(2024)
	second := cache.Sunday(2024)
	assert.Equal(t, first, second)
	assert.Equal(t, calendar.MustDate(2024, time.March, 31), first)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
	assert.Equal(t, int64(1), atomic.LoadInt64(&misses))
	assert.Equal(t, 1, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, first, cache.Sunday(2024))
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestEasterCacheObserverSwap(t *testing.T) {
	t.Parallel()

	cache := calendar.NewEasterCache(calendar.ComputeEaster)
	cache.Sunday(2000) // no hook yet

	var first, second int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			cache.Sunday(2000 + i%10)
		}
	}()
	cache.Observe(func(bool) { atomic.AddInt64(&first, 1) })
	cache.Observe(func(bool) { atomic.AddInt64(&second, 1) })
	<-done

	before := atomic.LoadInt64(&second)
	cache.Sunday(2000)
	assert.Equal(t, before+1, atomic.LoadInt64(&second))

	cache.Observe(nil)
	cache.Sunday(2000)
	assert.Equal(t, before+1, atomic.LoadInt64(&second))
	assert.Equal(t, 10, cache.Len())
}

func TestEasterCacheConcurrentReaders(t *testing.T) {
	t.Parallel()

	cache := calendar.NewEasterCache(calendar.ComputeEaster)
	const workers = 32

	results := make([]calendar.Date, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for year := 1900; year < 2100; year++ {
				d := cache.Sunday(year)
				if year == 2025 {
					results[i] = d
				}
			}
		}(i)
	}
	wg.Wait()

	for _, d := range results {
		assert.Equal(t, calendar.MustDate(2025, time.April, 20), d)
	}
	assert.Equal(t, 200, cache.Len())
}

func TestComputusCachesAreSeparate(t *testing.T) {
	t.Parallel()

	c := calendar.NewComputus()
	assert.Equal(t, calendar.MustDate(2024, time.March, 31), c.EasterSunday(2024))
	assert.Equal(t, calendar.MustDate(2024, time.May, 5), c.OrthodoxEasterSunday(2024))
	assert.Equal(t, 1, c.Western.Len())
	assert.Equal(t, 1, c.Orthodox.Len())

	c.Preload(2000, 2009)
	assert.Equal(t, 11, c.Western.Len())
	assert.Equal(t, 11, c.Orthodox.Len())

	c.Reset()
	assert.Equal(t, 0, c.Western.Len())
	assert.Equal(t, 0, c.Orthodox.Len())
}

func TestUncachedComputus(t *testing.T) {
	t.Parallel()

	c := calendar.Uncached()
	assert.Equal(t, calendar.ComputeEaster(2030), c.EasterSunday(2030))
	assert.Equal(t, calendar.ComputeOrthodoxEaster(2030), c.OrthodoxEasterSunday(2030))

	var nilComputus *calendar.Computus
	assert.Equal(t, calendar.ComputeEaster(2030), nilComputus.EasterSunday(2030))
}

func TestEasterSundayDefault(t *testing.T) {
	t.Parallel()
	assert.Equal(t, calendar.EasterSunday(2025), calendar.EasterSunday(2025))
	assert.Equal(t, calendar.OrthodoxEasterSunday(2025), calendar.EasterSunday(2025))
}
