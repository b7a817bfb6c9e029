package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bondcache/internal/client"
	"bondcache/internal/interfaces"
	"bondcache/internal/metrics"
	"bondcache/internal/models"
	"bondcache/internal/validate"
)

var (
	// ErrInvalidISIN means the input does not look like an ISIN.
	ErrInvalidISIN = errors.New("invalid ISIN format")
	// ErrBondNotFound means the upstream API has no bond for the ISIN.
	ErrBondNotFound = errors.New("bond not found")
	// ErrUnknownField means a field name is neither known nor aliased.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownCountry means a country code outside the supported set.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrInvalidInput covers empty or malformed operation arguments.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoResults means a query matched nothing.
	ErrNoResults = errors.New("no results")
)

// Service implements the add-in operations on top of the bond cache and
// the upstream API client.
type Service struct {
	api        interfaces.BondAPI
	bondCache  interfaces.BondCache
	queryCache interfaces.QueryCache
	logger     *zap.Logger
	now        func() time.Time
}

// New creates the operations service. All dependencies are constructed by
// the caller; the service owns no global state.
func New(api interfaces.BondAPI, bondCache interfaces.BondCache, queryCache interfaces.QueryCache, logger *zap.Logger) *Service {
	return &Service{
		api:        api,
		bondCache:  bondCache,
		queryCache: queryCache,
		logger:     logger,
		now:        time.Now,
	}
}

// FetchBond returns the bond for a normalized, validated ISIN, consulting
// the cache first. The cache is never held across the upstream call, and a
// failed lookup never populates it, so a later call retries the upstream
// until a real bond is stored. Two concurrent misses for the same key may
// both reach the upstream; the last successful result wins.
func (s *Service) FetchBond(ctx context.Context, isin string) (models.Bond, error) {
	if bond, found := s.bondCache.Get(isin); found {
		metrics.RecordBondCacheHit()
		return bond, nil
	}
	metrics.RecordBondCacheMiss()

	bond, err := s.api.GetBond(ctx, isin)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBondNotFound, isin)
		}
		return nil, fmt.Errorf("fetch bond %s: %w", isin, err)
	}

	s.bondCache.Set(isin, bond)
	metrics.UpdateBondCacheSize(s.bondCache.Stats().Size)
	return bond, nil
}

// fetchValidated normalizes and validates an ISIN, then fetches it.
func (s *Service) fetchValidated(ctx context.Context, isin string) (models.Bond, error) {
	normalized := validate.NormalizeISIN(isin)
	if !validate.IsValidISINFormat(normalized) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidISIN, isin)
	}
	return s.FetchBond(ctx, normalized)
}

// ClearCache removes all cached bonds and returns how many were removed.
func (s *Service) ClearCache() int {
	count := s.bondCache.Clear()
	metrics.UpdateBondCacheSize(0)
	s.logger.Info("Bond cache cleared", zap.Int("entries_removed", count))
	return count
}

// CacheStats returns a snapshot of the bond cache.
func (s *Service) CacheStats() models.CacheStats {
	return s.bondCache.Stats()
}

// FormatCacheStats renders the snapshot in the add-in's one-line format.
func (s *Service) FormatCacheStats() string {
	stats := s.bondCache.Stats()
	return fmt.Sprintf("Size: %d/%d | Hit Rate: %.0f%% | TTL: %.0fs",
		stats.Size, stats.MaxSize, stats.HitRate*100, stats.TTLSeconds)
}

// APIStatus reports upstream connectivity as display text.
func (s *Service) APIStatus(ctx context.Context) string {
	if err := s.api.Health(ctx); err != nil {
		return fmt.Sprintf("Disconnected: %v", err)
	}
	return "Connected"
}

// ValidateISIN reports whether the input is a well-formed ISIN with a
// recognized country prefix.
func (s *Service) ValidateISIN(isin string) bool {
	return validate.IsValidISIN(isin, models.CountryNames)
}
