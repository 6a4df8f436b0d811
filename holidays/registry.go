package holidays

import (
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/alpacahq/marketcal/calendar"
)

// ErrUnknownCountry is returned when no table is registered for a code.
var ErrUnknownCountry = errors.WithMessage(calendar.ErrInvalidArgument, "unknown country code")

// Registry maps jurisdiction codes to holiday tables.
// Codes are case-insensitive and stored upper-case.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*calendar.Table
}

// Default holds every built-in table evaluated against calendar.DefaultComputus.
var Default = NewRegistry(calendar.DefaultComputus)

// NewRegistry returns a registry of every built-in table evaluated against c.
func NewRegistry(c *calendar.Computus) *Registry {
	r := NewEmptyRegistry()
	for _, t := range builtins() {
		// codes are unique in builtins
		_ = r.Register(t.WithComputus(c))
	}
	return r
}

// NewEmptyRegistry returns a registry with no tables.
func NewEmptyRegistry() *Registry {
	return &Registry{tables: map[string]*calendar.Table{}}
}

func builtins() []*calendar.Table {
	de := newDE()
	tables := []*calendar.Table{
		newAT(),
		newAU(),
		newBE(),
		de,
		newDK(),
		newECB(),
		newES(),
		newFR(),
		newGB(),
		newGR(),
		newNL(),
		newNO(),
		newNZ(),
		newRO(),
		newSE(),
		newUS(),
	}
	return append(tables, newDEStates(de)...)
}

// Register adds t under its code. Registering a code twice is an error.
func (r *Registry) Register(t *calendar.Table) error {
	if t == nil || strings.TrimSpace(t.Code) == "" {
		return errors.Wrap(calendar.ErrInvalidArgument, "table needs a code")
	}
	code := strings.ToUpper(t.Code)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[code]; ok {
		return errors.Wrapf(calendar.ErrInvalidArgument, "country %s is already registered", code)
	}
	r.tables[code] = t
	return nil
}

// Lookup returns the table registered under code.
func (r *Registry) Lookup(code string) (*calendar.Table, error) {
	r.mu.RLock()
	t, ok := r.tables[strings.ToUpper(strings.TrimSpace(code))]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCountry, "%q", code)
	}
	return t, nil
}

// Codes returns the registered codes in sorted order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	codes := make([]string, 0, len(r.tables))
	for code := range r.tables {
		codes = append(codes, code)
	}
	r.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

// Match returns the sorted codes matching a glob pattern such as "DE-*".
func (r *Registry) Match(pattern string) ([]string, error) {
	g, err := glob.Compile(strings.ToUpper(pattern))
	if err != nil {
		return nil, errors.Wrapf(calendar.ErrInvalidArgument, "bad pattern %q: %v", pattern, err)
	}
	var out []string
	for _, code := range r.Codes() {
		if g.Match(code) {
			out = append(out, code)
		}
	}
	return out, nil
}

// Subset returns a new registry holding only the tables whose code keep
// accepts.
func (r *Registry) Subset(keep func(code string) bool) *Registry {
	sub := NewEmptyRegistry()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for code, t := range r.tables {
		if keep(code) {
			sub.tables[code] = t
		}
	}
	return sub
}

// Len reports the number of registered tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}
