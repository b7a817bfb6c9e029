package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"bondcache/internal/interfaces"
	"bondcache/internal/models"
)

// Ensure TTLCache implements interfaces.BondCache
var _ interfaces.BondCache = (*TTLCache)(nil)

// entry is one cached bond with its absolute expiry time. The recency list
// element holds *entry values; the map indexes them by key.
type entry struct {
	key       string
	bond      models.Bond
	expiresAt time.Time
}

// TTLCache is a size-bounded in-memory cache with per-entry TTL and
// least-recently-used eviction. All operations take the single mutex for
// their full duration, so the map, the recency list, and the counters are
// always observed in a consistent state. The cache never performs I/O;
// callers must not hold it across upstream fetches.
//
// Expiry is lazy: an expired entry is removed by the Get that discovers it,
// not by a background sweep.
type TTLCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used, back = LRU victim
	maxSize int
	ttl     time.Duration
	clk     clock.Clock
	hits    uint64
	misses  uint64
}

// New creates a cache holding at most maxSize entries, each valid for ttl
// after insertion.
func New(maxSize int, ttl time.Duration) *TTLCache {
	return NewWithClock(maxSize, ttl, clock.New())
}

// NewWithClock is New with an injected clock, used by tests to control
// expiry without sleeping.
func NewWithClock(maxSize int, ttl time.Duration, clk clock.Clock) *TTLCache {
	return &TTLCache{
		entries: make(map[string]*list.Element, maxSize),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
		clk:     clk,
	}
}

// Get returns the bond stored under key, promoting it to most recently
// used. A missing or expired entry counts as a miss; expired entries are
// removed on discovery and never returned.
func (c *TTLCache) Get(key string) (models.Bond, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}

	ent := elem.Value.(*entry)
	if c.clk.Now().After(ent.expiresAt) {
		c.removeElement(elem)
		c.misses++
		return nil, false
	}

	c.order.MoveToFront(elem)
	c.hits++
	return ent.bond, true
}

// Set stores bond under key with a fresh expiry, as the most recently used
// entry. An existing entry for the same key is replaced whole. When the key
// is new and the cache is at capacity, the least recently used entry is
// evicted first, so the size bound always holds.
func (c *TTLCache) Set(key string, bond models.Bond) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.removeElement(elem)
	} else if c.order.Len() >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	ent := &entry{key: key, bond: bond, expiresAt: c.clk.Now().Add(c.ttl)}
	c.entries[key] = c.order.PushFront(ent)
}

// Clear removes every entry and resets the hit/miss counters. It returns
// the number of entries present immediately before clearing.
func (c *TTLCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.entries)
	c.entries = make(map[string]*list.Element, c.maxSize)
	c.order.Init()
	c.hits = 0
	c.misses = 0
	return count
}

// Stats returns a snapshot of the cache state. The hit rate is 0.0 until
// the first access.
func (c *TTLCache) Stats() models.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := models.CacheStats{
		Size:       len(c.entries),
		MaxSize:    c.maxSize,
		Hits:       c.hits,
		Misses:     c.misses,
		TTLSeconds: c.ttl.Seconds(),
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}

// removeElement drops an entry from both the recency list and the index.
// Callers must hold the mutex.
func (c *TTLCache) removeElement(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.entries, elem.Value.(*entry).key)
}
