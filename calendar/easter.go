package calendar

import (
	"sync"
	"sync/atomic"
	"time"
)

// ComputeEaster returns Western (Gregorian) Easter Sunday for year using the
// anonymous Gregorian (Meeus/Jones/Butcher) congruence. It is never cached.
func ComputeEaster(year int) Date {
	y := year
	a := y % 19
	b := y / 100
	c := y % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date{year: year, month: time.Month(month), day: day}
}

// ComputeOrthodoxEaster returns Orthodox Easter Sunday for year. The Julian
// computus gives a Julian calendar date, which is converted to the proleptic
// Gregorian calendar used everywhere else. It is never cached.
func ComputeOrthodoxEaster(year int) Date {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7

	month := (d + e + 114) / 31
	day := ((d + e + 114) % 31) + 1

	// julian day-of-month to gregorian; 13 days for 1900-2099
	offset := year/100 - year/400 - 2

	return Date{year: year, month: time.Month(month), day: day}.AddDays(offset)
}

// EasterCache memoizes one Easter algorithm per year. Values are computed
// outside any lock and inserted only if absent, so concurrent callers for the
// same year always converge on the first stored value.
type EasterCache struct {
	compute func(year int) Date
	dates   sync.Map // int -> Date
	size    int64

	observe atomic.Value // observer
}

type observer struct {
	fn func(hit bool)
}

// NewEasterCache creates an empty cache around compute.
func NewEasterCache(compute func(year int) Date) *EasterCache {
	return &EasterCache{compute: compute}
}

// Sunday returns the cached Easter Sunday for year, computing it on first use.
func (c *EasterCache) Sunday(year int) Date {
	if v, ok := c.dates.Load(year); ok {
		c.notify(true)
		return v.(Date)
	}
	computed := c.compute(year)
	v, loaded := c.dates.LoadOrStore(year, computed)
	if !loaded {
		atomic.AddInt64(&c.size, 1)
	}
	c.notify(false)
	return v.(Date)
}

// Observe registers fn to be called on every lookup with whether it was
// served from the cache.
// A nil fn removes the hook.
func (c *EasterCache) Observe(fn func(hit bool)) {
	c.observe.Store(observer{fn: fn})
}

func (c *EasterCache) notify(hit bool) {
	if o, ok := c.observe.Load().(observer); ok && o.fn != nil {
		o.fn(hit)
	}
}

// Len reports the number of cached years.
func (c *EasterCache) Len() int {
	return int(atomic.LoadInt64(&c.size))
}

// Reset drops every cached year.
func (c *EasterCache) Reset() {
	c.dates.Range(func(k, _ interface{}) bool {
		if _, ok := c.dates.LoadAndDelete(k); ok {
			atomic.AddInt64(&c.size, -1)
		}
		return true
	})
}

// Computus bundles the Western and Orthodox Easter caches. A nil cache, or a
// nil *Computus, computes every lookup from scratch.
type Computus struct {
	Western  *EasterCache
	Orthodox *EasterCache
}

// NewComputus returns a Computus with two fresh caches.
func NewComputus() *Computus {
	return &Computus{
		Western:  NewEasterCache(ComputeEaster),
		Orthodox: NewEasterCache(ComputeOrthodoxEaster),
	}
}

// Uncached returns a Computus that bypasses memoization.
func Uncached() *Computus {
	return &Computus{}
}

// EasterSunday returns Western Easter Sunday for year.
func (c *Computus) EasterSunday(year int) Date {
	if c == nil || c.Western == nil {
		return ComputeEaster(year)
	}
	return c.Western.Sunday(year)
}

// OrthodoxEasterSunday returns Orthodox Easter Sunday for year.
func (c *Computus) OrthodoxEasterSunday(year int) Date {
	if c == nil || c.Orthodox == nil {
		return ComputeOrthodoxEaster(year)
	}
	return c.Orthodox.Sunday(year)
}

// Reset clears both caches.
func (c *Computus) Reset() {
	if c == nil {
		return
	}
	if c.Western != nil {
		c.Western.Reset()
	}
	if c.Orthodox != nil {
		c.Orthodox.Reset()
	}
}

// Preload warms both caches for every year in [from, to].
func (c *Computus) Preload(from, to int) {
	for y := from; y <= to; y++ {
		c.EasterSunday(y)
		c.OrthodoxEasterSunday(y)
	}
}

// DefaultComputus is the process-wide computus used by EasterSunday,
// OrthodoxEasterSunday and tables built without an explicit one.
var DefaultComputus = NewComputus()

// EasterSunday returns Western Easter Sunday for year from DefaultComputus.
func EasterSunday(year int) Date {
	return DefaultComputus.EasterSunday(year)
}

// OrthodoxEasterSunday returns Orthodox Easter Sunday for year from
// DefaultComputus.
func OrthodoxEasterSunday(year int) Date {
	return DefaultComputus.OrthodoxEasterSunday(year)
}
