package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bondcache/internal/models"
)

func testBond(isin string) models.Bond {
	return models.Bond{"isin": isin, "coupon_rate": 0.015}
}

func TestTTLCache_GetMiss(t *testing.T) {
	c := New(10, time.Minute)

	bond, found := c.Get("US912810TM58")

	assert.False(t, found)
	assert.Nil(t, bond)
	assert.Equal(t, uint64(1), c.Stats().Misses)
}

func TestTTLCache_SetAndGet(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("GB00BYZW3G56", testBond("GB00BYZW3G56"))

	bond, found := c.Get("GB00BYZW3G56")

	require.True(t, found)
	assert.Equal(t, "GB00BYZW3G56", bond.ISIN())

	stats := c.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(0), stats.Misses)
}

func TestTTLCache_EmptyKeyIsValid(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("", testBond("X"))

	bond, found := c.Get("")

	require.True(t, found)
	assert.Equal(t, "X", bond.ISIN())
}

func TestTTLCache_SetReplacesWholeEntry(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("K", models.Bond{"isin": "K", "issuer": "old", "currency": "USD"})
	c.Set("K", models.Bond{"isin": "K", "issuer": "new"})

	bond, found := c.Get("K")

	require.True(t, found)
	assert.Equal(t, "new", bond.StringField("issuer"))
	// Replace, not merge: fields from the old entry must not survive
	assert.Empty(t, bond.StringField("currency"))
	assert.Equal(t, 1, c.Stats().Size)
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2, 300*time.Second)
	c.Set("A", testBond("A"))
	c.Set("B", testBond("B"))
	c.Set("C", testBond("C")) // evicts A

	_, found := c.Get("A")
	assert.False(t, found)

	b, found := c.Get("B")
	require.True(t, found)
	assert.Equal(t, "B", b.ISIN())

	cc, found := c.Get("C")
	require.True(t, found)
	assert.Equal(t, "C", cc.ISIN())

	assert.Equal(t, 2, c.Stats().Size)
}

func TestTTLCache_GetPromotesRecency(t *testing.T) {
	c := New(3, time.Minute)
	c.Set("A", testBond("A"))
	c.Set("B", testBond("B"))
	c.Set("C", testBond("C"))

	// Touch A so B becomes the LRU victim
	_, found := c.Get("A")
	require.True(t, found)

	c.Set("D", testBond("D"))

	_, found = c.Get("B")
	assert.False(t, found, "B should have been evicted")
	_, found = c.Get("A")
	assert.True(t, found, "A was promoted by the Get and must survive")
	_, found = c.Get("D")
	assert.True(t, found)
}

func TestTTLCache_SetPromotesRecency(t *testing.T) {
	c := New(2, time.Minute)
	c.Set("A", testBond("A"))
	c.Set("B", testBond("B"))
	c.Set("A", testBond("A")) // re-set bumps A to most recently used
	c.Set("C", testBond("C")) // evicts B

	_, found := c.Get("B")
	assert.False(t, found)
	_, found = c.Get("A")
	assert.True(t, found)
}

func TestTTLCache_SizeBoundHolds(t *testing.T) {
	c := New(5, time.Minute)

	for i := 0; i < 50; i++ {
		c.Set(fmt.Sprintf("ISIN%02d", i), testBond("X"))
		assert.LessOrEqual(t, c.Stats().Size, 5)
	}
	assert.Equal(t, 5, c.Stats().Size)

	// Only the five most recent keys remain
	for i := 45; i < 50; i++ {
		_, found := c.Get(fmt.Sprintf("ISIN%02d", i))
		assert.True(t, found)
	}
}

func TestTTLCache_LazyExpiry(t *testing.T) {
	clk := clock.NewMock()
	c := NewWithClock(10, time.Second, clk)

	c.Set("X", testBond("X"))
	clk.Add(1100 * time.Millisecond)

	bond, found := c.Get("X")

	assert.False(t, found)
	assert.Nil(t, bond)

	stats := c.Stats()
	assert.Equal(t, 0, stats.Size, "expired entry is purged by the Get that discovers it")
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(0), stats.Hits)
}

func TestTTLCache_SetRefreshesExpiry(t *testing.T) {
	clk := clock.NewMock()
	c := NewWithClock(10, 10*time.Second, clk)

	c.Set("X", testBond("X"))
	clk.Add(8 * time.Second)
	c.Set("X", testBond("X")) // fresh TTL from now
	clk.Add(8 * time.Second)

	_, found := c.Get("X")
	assert.True(t, found, "re-set entry expires ttl after the re-set, not the original insert")
}

func TestTTLCache_UnexpiredWithinTTL(t *testing.T) {
	clk := clock.NewMock()
	c := NewWithClock(10, 300*time.Second, clk)

	c.Set("X", testBond("X"))
	clk.Add(299 * time.Second)

	_, found := c.Get("X")
	assert.True(t, found)
}

func TestTTLCache_Clear(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("A", testBond("A"))
	c.Set("B", testBond("B"))
	c.Get("A")
	c.Get("missing")

	count := c.Clear()

	assert.Equal(t, 2, count)

	stats := c.Stats()
	assert.Equal(t, 0, stats.Size)
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(0), stats.Misses)
	assert.Equal(t, 0.0, stats.HitRate)

	_, found := c.Get("A")
	assert.False(t, found)
}

func TestTTLCache_ClearEmpty(t *testing.T) {
	c := New(10, time.Minute)
	assert.Equal(t, 0, c.Clear())
}

func TestTTLCache_HitRate(t *testing.T) {
	c := New(10, time.Minute)

	assert.Equal(t, 0.0, c.Stats().HitRate, "hit rate is 0.0 before any access")

	c.Set("A", testBond("A"))
	c.Get("A")       // hit
	c.Get("A")       // hit
	c.Get("missing") // miss
	c.Get("missing") // miss

	stats := c.Stats()
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.InDelta(t, 0.5, stats.HitRate, 1e-9)
}

func TestTTLCache_StatsDoesNotMutate(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("A", testBond("A"))
	c.Get("A")

	before := c.Stats()
	after := c.Stats()

	assert.Equal(t, before, after)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := New(50, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("ISIN%03d", (g*7+i)%100)
				if i%3 == 0 {
					c.Set(key, testBond(key))
				} else {
					if bond, found := c.Get(key); found && bond.ISIN() != key {
						t.Errorf("got bond %q under key %q", bond.ISIN(), key)
					}
				}
			}
		}(g)
	}
	wg.Wait()

	stats := c.Stats()
	assert.LessOrEqual(t, stats.Size, 50)
	// 333 gets per goroutine (i % 3 != 0 for i in 0..499)
	assert.Equal(t, uint64(8*333), stats.Hits+stats.Misses, "every get is counted exactly once")
}
