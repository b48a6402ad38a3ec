package exchange

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/frostguard/frostguard/internal/currency"
)

// Cache stores rate tables keyed by their base currency.
type Cache interface {
	Get(ctx context.Context, base currency.Code) (Table, bool)
	Set(ctx context.Context, base currency.Code, table Table) error
}

type memoryEntry struct {
	table     Table
	fetchedAt time.Time
}

// MemoryCache is a process-local Cache. A zero TTL keeps entries until the process exits.
// Concurrent Sets for the same base are last-write-wins.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[currency.Code]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type MemoryCacheOption func(*MemoryCache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.now = now
	}
}

func NewMemoryCache(ttl time.Duration, opts ...MemoryCacheOption) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[currency.Code]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *MemoryCache) Get(_ context.Context, base currency.Code) (Table, bool) {
	c.mu.RLock()
	entry, ok := c.entries[base]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.ttl > 0 && c.now().Sub(entry.fetchedAt) >= c.ttl {
		c.mu.Lock()
		// Re-check: another writer may have refreshed the entry meanwhile.
		if current, ok := c.entries[base]; ok && current.fetchedAt.Equal(entry.fetchedAt) {
			delete(c.entries, base)
		}
		c.mu.Unlock()

		return nil, false
	}

	return entry.table, true
}

func (c *MemoryCache) Set(_ context.Context, base currency.Code, table Table) error {
	c.mu.Lock()
	c.entries[base] = memoryEntry{table: maps.Clone(table), fetchedAt: c.now()}
	c.mu.Unlock()

	return nil
}
