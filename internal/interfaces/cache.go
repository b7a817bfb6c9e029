package interfaces

import (
	"bondcache/internal/models"
)

//go:generate mockgen -package=mock -source=cache.go -destination=mock/cache.go

// BondCache is the bounded TTL cache guarding bond lookups.
type BondCache interface {
	// Get returns the cached bond and whether it was present and unexpired.
	Get(key string) (models.Bond, bool)
	// Set stores a bond under key with a fresh TTL, evicting the least
	// recently used entry if the cache is full.
	Set(key string, bond models.Bond)
	// Clear removes all entries, resets the counters, and returns the
	// number of entries removed.
	Clear() int
	// Stats returns a point-in-time snapshot without mutating state.
	Stats() models.CacheStats
}

// QueryCache caches serialized tabular query responses (list/search).
type QueryCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, val []byte)
	Close() error
}
