package httpserver

import (
	"bondcache/internal/models"
	"bondcache/internal/service"
)

// BondRequest addresses a single bond, with operation-specific extras.
type BondRequest struct {
	ISIN        string `json:"isin"`
	Field       string `json:"field,omitempty"`
	WithHeaders bool   `json:"with_headers,omitempty"`
	AsOf        string `json:"as_of,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

// ListRequest filters the list operation.
type ListRequest struct {
	Country      string `json:"country"`
	SecurityType string `json:"security_type,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// SearchRequest carries the search filters.
type SearchRequest struct {
	Filters []service.SearchFilter `json:"filters"`
}

// MaturityRangeRequest bounds the maturity range operation.
type MaturityRangeRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Country  string `json:"country,omitempty"`
}

// RefreshRequest names the country to refresh; empty means full refresh.
type RefreshRequest struct {
	Country string `json:"country,omitempty"`
}

// ActionsRequest filters the corporate actions operation.
type ActionsRequest struct {
	ActionType string `json:"action_type,omitempty"`
	DaysAhead  int    `json:"days_ahead,omitempty"`
}

// OpResponse is the envelope for scalar and tabular operation results.
type OpResponse struct {
	Success bool        `json:"success"`
	Value   interface{} `json:"value,omitempty"`
	Rows    interface{} `json:"rows,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CacheStatsResponse carries the cache snapshot plus its display form.
type CacheStatsResponse struct {
	Success   bool              `json:"success"`
	Stats     models.CacheStats `json:"stats"`
	Formatted string            `json:"formatted"`
}
