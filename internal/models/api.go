package models

// ListQuery holds the filter parameters accepted by the /bonds endpoint.
// Zero values mean "no filter".
type ListQuery struct {
	Country      string
	SecurityType string
	Currency     string
	MaturityFrom string
	MaturityTo   string
	MinCoupon    string
	MaxCoupon    string
	Limit        int
}

// DatabaseStats is the payload of the API's /stats endpoint.
type DatabaseStats struct {
	TotalBonds int            `json:"total_bonds"`
	ByCountry  map[string]int `json:"by_country"`
}

// RefreshRequest asks the API to re-pull bond data from its sources.
// Either Country is set or Full is true.
type RefreshRequest struct {
	Country string `json:"country,omitempty"`
	Full    bool   `json:"full,omitempty"`
}

// RefreshResponse is the acknowledgement returned by /bonds/refresh.
type RefreshResponse struct {
	Message string `json:"message"`
}

// FieldSource attributes one bond field to the data source that provided it.
type FieldSource struct {
	SourceName string  `json:"source_name"`
	Confidence float64 `json:"confidence"`
}

// Lineage describes where a bond's data came from.
type Lineage struct {
	ContributingSources      []string               `json:"contributing_sources"`
	ReconciliationConfidence float64                `json:"reconciliation_confidence"`
	FieldSources             map[string]FieldSource `json:"field_sources"`
}

// ChangeRecord is one entry of a bond's change history.
type ChangeRecord struct {
	ChangedAt  string `json:"changed_at"`
	ChangeType string `json:"change_type"`
	FieldName  string `json:"field_name"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
}

// CorporateAction is a maturity, call, or coupon change affecting a bond.
type CorporateAction struct {
	ISIN          string `json:"isin"`
	ActionType    string `json:"action_type"`
	EffectiveDate string `json:"effective_date"`
	Notes         string `json:"notes"`
}

// ActionsQuery filters corporate action lookups.
type ActionsQuery struct {
	ActionType string
	DaysAhead  int
	Limit      int
}

// CacheStats is a read-only snapshot of the bond cache's state.
type CacheStats struct {
	Size       int     `json:"size"`
	MaxSize    int     `json:"max_size"`
	Hits       uint64  `json:"hits"`
	Misses     uint64  `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
	TTLSeconds float64 `json:"ttl_seconds"`
}
