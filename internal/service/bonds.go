package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bondcache/internal/models"
	"bondcache/internal/validate"
)

const (
	defaultListLimit = 500
	maxListLimit     = 1000
)

// StaticField returns a single bond field. Shorthand aliases are resolved,
// and coupon rates are scaled to display percent.
func (s *Service) StaticField(ctx context.Context, isin, field string) (interface{}, error) {
	if isin == "" || field == "" {
		return nil, fmt.Errorf("%w: ISIN and field required", ErrInvalidInput)
	}

	bond, err := s.fetchValidated(ctx, isin)
	if err != nil {
		return nil, err
	}

	field = strings.ToLower(strings.TrimSpace(field))
	if canonical, ok := models.FieldAliases[field]; ok {
		field = canonical
	}

	value, present := bond[field]
	if !present {
		if _, known := models.FieldDescriptions[field]; !known {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		return "", nil
	}
	if value == nil {
		return "", nil
	}

	if field == "coupon_rate" {
		if rate, ok := bond.NumberField(field); ok {
			return rate * 100, nil
		}
	}
	return value, nil
}

// Info returns the full bond record as a row in InfoColumns order,
// optionally preceded by a header row.
func (s *Service) Info(ctx context.Context, isin string, withHeaders bool) ([][]interface{}, error) {
	if isin == "" {
		return nil, fmt.Errorf("%w: ISIN required", ErrInvalidInput)
	}

	bond, err := s.fetchValidated(ctx, isin)
	if err != nil {
		return nil, err
	}

	values := make([]interface{}, 0, len(models.InfoColumns))
	for _, col := range models.InfoColumns {
		val := bond[col.Key]
		if col.Key == "coupon_rate" {
			if rate, ok := bond.NumberField(col.Key); ok {
				val = rate * 100
			}
		}
		if val == nil {
			val = ""
		}
		values = append(values, val)
	}

	if withHeaders {
		headers := make([]interface{}, 0, len(models.InfoColumns))
		for _, col := range models.InfoColumns {
			headers = append(headers, col.Header)
		}
		return [][]interface{}{headers, values}, nil
	}
	return [][]interface{}{values}, nil
}

// List returns the ISINs for a country, optionally filtered by security
// type.
func (s *Service) List(ctx context.Context, country, securityType string, limit int) ([]string, error) {
	if country == "" {
		return nil, fmt.Errorf("%w: country code required", ErrInvalidInput)
	}
	country = validate.NormalizeCountry(country)
	if _, ok := models.CountryNames[country]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}

	query := models.ListQuery{Country: country, Limit: clampLimit(limit)}
	if securityType != "" {
		st := strings.ToUpper(strings.TrimSpace(securityType))
		if st != models.SecurityTypeNominal && st != models.SecurityTypeIndexLinked {
			return nil, fmt.Errorf("%w: security_type must be NOMINAL or INDEX_LINKED", ErrInvalidInput)
		}
		query.SecurityType = st
	}

	bonds, err := s.listBondsCached(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(bonds) == 0 {
		return nil, fmt.Errorf("%w: no bonds found for %s", ErrNoResults, country)
	}

	isins := make([]string, 0, len(bonds))
	for _, b := range bonds {
		isins = append(isins, b.ISIN())
	}
	return isins, nil
}

// SearchFilter is one field/value pair of a search query.
type SearchFilter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Search returns ISINs of bonds matching all given filters.
func (s *Service) Search(ctx context.Context, filters []SearchFilter) ([]string, error) {
	query := models.ListQuery{Limit: defaultListLimit}

	applied := 0
	for _, f := range filters {
		if f.Field == "" || f.Value == "" {
			continue
		}
		if err := applyFilter(&query, f); err != nil {
			return nil, err
		}
		applied++
	}
	if applied == 0 {
		return nil, fmt.Errorf("%w: at least one filter required", ErrInvalidInput)
	}

	bonds, err := s.listBondsCached(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(bonds) == 0 {
		return nil, fmt.Errorf("%w: no bonds match filters", ErrNoResults)
	}

	isins := make([]string, 0, len(bonds))
	for _, b := range bonds {
		isins = append(isins, b.ISIN())
	}
	return isins, nil
}

// Count returns the number of bonds in the database, total or for one
// country.
func (s *Service) Count(ctx context.Context, country string) (int, error) {
	stats, err := s.api.GetDatabaseStats(ctx)
	if err != nil {
		return 0, fmt.Errorf("database stats: %w", err)
	}

	if country != "" {
		return stats.ByCountry[validate.NormalizeCountry(country)], nil
	}
	return stats.TotalBonds, nil
}

// Refresh asks the API to re-pull bond data, then clears the bond cache so
// stale entries are not served while the upstream updates.
func (s *Service) Refresh(ctx context.Context, country string) (string, error) {
	req := models.RefreshRequest{}
	if country != "" {
		req.Country = validate.NormalizeCountry(country)
	} else {
		req.Full = true
	}

	resp, err := s.api.TriggerRefresh(ctx, req)
	if err != nil {
		return "", fmt.Errorf("trigger refresh: %w", err)
	}

	cleared := s.ClearCache()
	s.logger.Info("Refresh triggered",
		zap.String("country", req.Country),
		zap.Bool("full", req.Full),
		zap.Int("cache_entries_cleared", cleared))

	if resp.Message == "" {
		return "Refresh started", nil
	}
	return resp.Message, nil
}

// listBondsCached serves list queries through the query cache. The cached
// form is the serialized bond slice keyed by the canonical query string.
func (s *Service) listBondsCached(ctx context.Context, query models.ListQuery) ([]models.Bond, error) {
	key := queryKey(query)

	if data, found := s.queryCache.Get(key); found {
		var bonds []models.Bond
		if err := json.Unmarshal(data, &bonds); err == nil {
			return bonds, nil
		}
		s.logger.Warn("Discarding undecodable query cache entry", zap.String("key", key))
	}

	bonds, err := s.api.ListBonds(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bonds: %w", err)
	}

	if data, err := json.Marshal(bonds); err == nil {
		s.queryCache.Set(key, data)
	}
	return bonds, nil
}

// queryKey canonicalizes a list query into a deterministic cache key.
func queryKey(q models.ListQuery) string {
	return fmt.Sprintf("bonds:%s:%s:%s:%s:%s:%s:%s:%d",
		q.Country, q.SecurityType, q.Currency,
		q.MaturityFrom, q.MaturityTo, q.MinCoupon, q.MaxCoupon, q.Limit)
}

func applyFilter(query *models.ListQuery, f SearchFilter) error {
	value := strings.TrimSpace(f.Value)
	switch strings.ToLower(strings.TrimSpace(f.Field)) {
	case "country":
		query.Country = validate.NormalizeCountry(value)
	case "security_type":
		query.SecurityType = strings.ToUpper(value)
	case "currency":
		query.Currency = strings.ToUpper(value)
	case "maturity_from":
		query.MaturityFrom = value
	case "maturity_to":
		query.MaturityTo = value
	case "min_coupon":
		query.MinCoupon = value
	case "max_coupon":
		query.MaxCoupon = value
	default:
		return fmt.Errorf("%w: filter field %q", ErrUnknownField, f.Field)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
