package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(cfg Config) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(cfg)
	c.now = clock.Now
	return c, clock
}

func TestGetAfterSet(t *testing.T) {
	c, _ := newTestCache(Config{TTL: 24 * time.Hour, Capacity: 500, SweepSize: 100})

	images := []string{"u1", "u2", "u3"}
	c.Set("images:Paris France travel:4", images)

	got, ok := c.Get("images:Paris France travel:4")
	require.True(t, ok)
	assert.Equal(t, images, got)
}

func TestMissingKey(t *testing.T) {
	c, _ := newTestCache(Config{TTL: time.Hour})

	_, ok := c.Get("absent")
	assert.False(t, ok)

	stats := c.GetStats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(0), stats.Hits)
}

func TestExpiryRemovesEntry(t *testing.T) {
	c, clock := newTestCache(Config{TTL: time.Hour})

	c.Set("k", "v")
	clock.Advance(time.Hour) // age == TTL counts as expired

	_, ok := c.Get("k")
	assert.False(t, ok)

	// The expired entry must be gone, not just hidden.
	stats := c.GetStats()
	assert.Equal(t, 0, stats.Entries)
}

func TestEntryValidJustBeforeTTL(t *testing.T) {
	c, clock := newTestCache(Config{TTL: time.Hour})

	c.Set("k", "v")
	clock.Advance(time.Hour - time.Second)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestPerEntryTTLOverride(t *testing.T) {
	c, clock := newTestCache(Config{TTL: time.Hour})

	c.SetWithTTL("short", "v", time.Minute)
	c.Set("long", "v")

	clock.Advance(2 * time.Minute)

	_, ok := c.Get("short")
	assert.False(t, ok)
	_, ok = c.Get("long")
	assert.True(t, ok)
}

func TestCapacitySweepRemovesOldest(t *testing.T) {
	c, clock := newTestCache(Config{TTL: time.Hour, Capacity: 5, SweepSize: 2})

	for i := 0; i < 6; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
		clock.Advance(time.Second)
	}

	// Inserting the 6th entry exceeded the ceiling; the 2 oldest go.
	assert.Equal(t, 4, c.Len())
	_, ok := c.Get("k0")
	assert.False(t, ok)
	_, ok = c.Get("k1")
	assert.False(t, ok)
	_, ok = c.Get("k5")
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	c, _ := newTestCache(Config{TTL: time.Hour})
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c, _ := newTestCache(Config{TTL: time.Hour, Capacity: 50, SweepSize: 10})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", i%20)
				c.Set(key, g)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
}
