// Package cache provides an in-memory key-value store with per-entry TTL
// and a capacity-bounded sweep that evicts the oldest entries by insertion
// time. It is shared by the image enrichment pipeline and the AI
// recommendation generator, each owning its own instance.
package cache

import (
	"sort"
	"sync"
	"time"
)

// Config bounds a cache instance.
type Config struct {
	TTL       time.Duration // default entry lifetime
	Capacity  int           // entry count ceiling before a sweep runs
	SweepSize int           // number of oldest entries removed per sweep
}

// Stats reports cache usage for monitoring.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

type entry struct {
	value      any
	insertedAt time.Time
	ttl        time.Duration
}

// Cache is a TTL cache safe for concurrent use. Operations are cheap
// relative to the network calls they guard, so a single mutex suffices.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	cfg     Config
	hits    uint64
	misses  uint64
	now     func() time.Time // injectable clock for tests
}

// New creates a cache with the given bounds. Zero or negative Capacity
// disables the sweep; zero TTL means entries never expire unless stored
// with SetWithTTL.
func New(cfg Config) *Cache {
	if cfg.SweepSize <= 0 {
		cfg.SweepSize = 1
	}
	return &Cache{
		entries: make(map[string]entry),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Get returns the value for key. Expired entries are deleted eagerly and
// reported as absent.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if e.ttl > 0 && c.now().Sub(e.insertedAt) >= e.ttl {
		delete(c.entries, key)
		c.misses++
		return nil, false
	}
	c.hits++
	return e.value, true
}

// Set stores value under key with the cache's default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.cfg.TTL)
}

// SetWithTTL stores value under key with an explicit TTL, then sweeps the
// oldest entries if the capacity ceiling is exceeded.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:      value,
		insertedAt: c.now(),
		ttl:        ttl,
	}

	if c.cfg.Capacity > 0 && len(c.entries) > c.cfg.Capacity {
		c.sweepLocked()
	}
}

// sweepLocked removes the SweepSize oldest entries by insertion time.
// Caller must hold c.mu.
func (c *Cache) sweepLocked() {
	type aged struct {
		key        string
		insertedAt time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, insertedAt: e.insertedAt})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].insertedAt.Before(all[j].insertedAt)
	})

	n := c.cfg.SweepSize
	if n > len(all) {
		n = len(all)
	}
	for i := 0; i < n; i++ {
		delete(c.entries, all[i].key)
	}
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the current entry count, not counting entries that have
// expired but not yet been touched.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	now := c.now()
	for _, e := range c.entries {
		if e.ttl > 0 && now.Sub(e.insertedAt) >= e.ttl {
			continue
		}
		count++
	}
	return count
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// GetStats returns usage counters for monitoring.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
