package cache

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"bondcache/internal/interfaces"
	"bondcache/internal/metrics"
)

// Ensure QueryCache implements interfaces.QueryCache
var _ interfaces.QueryCache = (*QueryCache)(nil)

// QueryCache caches serialized list/search responses in BigCache. Unlike
// the bond cache it has no strict recency contract; BigCache's own
// time-window eviction is good enough for read-mostly tabular queries.
type QueryCache struct {
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// NewQueryCache creates a BigCache-backed query cache with the given hard
// size limit in MB and entry lifetime.
func NewQueryCache(sizeMB int, ttl time.Duration, logger *zap.Logger) (*QueryCache, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.HardMaxCacheSize = sizeMB
	cfg.Verbose = false
	cfg.MaxEntrySize = 1024 * 1024

	bc, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	return &QueryCache{cache: bc, logger: logger}, nil
}

// Get returns the cached response bytes for a canonical query key.
func (q *QueryCache) Get(key string) ([]byte, bool) {
	data, err := q.cache.Get(key)
	if err != nil {
		metrics.RecordQueryCacheMiss()
		return nil, false
	}
	metrics.RecordQueryCacheHit()
	return data, true
}

// Set stores serialized response bytes under a canonical query key.
func (q *QueryCache) Set(key string, val []byte) {
	if err := q.cache.Set(key, val); err != nil {
		q.logger.Warn("failed to store query response", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the underlying BigCache.
func (q *QueryCache) Close() error {
	return q.cache.Close()
}
