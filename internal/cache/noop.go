package cache

import (
	"bondcache/internal/interfaces"
)

// Ensure NoOpQueryCache implements interfaces.QueryCache
var _ interfaces.QueryCache = (*NoOpQueryCache)(nil)

// NoOpQueryCache is used when the query cache is disabled in config.
// Every lookup misses and writes are discarded.
type NoOpQueryCache struct{}

// NewNoOpQueryCache creates a disabled query cache.
func NewNoOpQueryCache() *NoOpQueryCache {
	return &NoOpQueryCache{}
}

func (n *NoOpQueryCache) Get(key string) ([]byte, bool) { return nil, false }

func (n *NoOpQueryCache) Set(key string, val []byte) {}

func (n *NoOpQueryCache) Close() error { return nil }
