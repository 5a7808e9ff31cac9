package holidays

import (
	"context"
	"sync"

	"github.com/alexanderramin/prazo/internal/calendar"
)

type yearRange struct{ from, to int }

// Cache memoizes another provider per year range. It is opt-in: callers
// wrap a provider explicitly when they compute many schedules.
type Cache struct {
	next Provider

	mu      sync.Mutex
	entries map[yearRange]calendar.HolidaySet
	misses  int
}

func NewCache(next Provider) *Cache {
	return &Cache{next: next, entries: make(map[yearRange]calendar.HolidaySet)}
}

// Holidays returns a copy of the memoized set so callers cannot corrupt it.
func (c *Cache) Holidays(ctx context.Context, fromYear, toYear int) (calendar.HolidaySet, error) {
	key := yearRange{fromYear, toYear}

	c.mu.Lock()
	set, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return calendar.HolidaySet{}.Merge(set), nil
	}

	set, err := c.next.Holidays(ctx, fromYear, toYear)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = set
	c.misses++
	c.mu.Unlock()
	return calendar.HolidaySet{}.Merge(set), nil
}

func (c *Cache) Coverage() (fromYear, toYear int, ok bool) {
	return CoverageOf(c.next)
}

// Misses reports how many times the wrapped provider was consulted.
func (c *Cache) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
