package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Bond cache counters
	BondCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bond_cache_hits_total",
			Help: "Total number of bond cache hits",
		},
	)

	BondCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bond_cache_misses_total",
			Help: "Total number of bond cache misses",
		},
	)

	BondCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bond_cache_entries",
			Help: "Current number of entries in the bond cache",
		},
	)

	// Query cache counters
	QueryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Total number of query cache hits",
		},
	)

	QueryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Total number of query cache misses",
		},
	)

	// Upstream API counters
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of BondMaster API requests by outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of BondMaster API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// RecordBondCacheHit records a hit on the bond cache.
func RecordBondCacheHit() {
	BondCacheHits.Inc()
}

// RecordBondCacheMiss records a miss on the bond cache.
func RecordBondCacheMiss() {
	BondCacheMisses.Inc()
}

// UpdateBondCacheSize updates the bond cache size gauge.
func UpdateBondCacheSize(size int) {
	BondCacheSize.Set(float64(size))
}

// RecordQueryCacheHit records a hit on the query cache.
func RecordQueryCacheHit() {
	QueryCacheHits.Inc()
}

// RecordQueryCacheMiss records a miss on the query cache.
func RecordQueryCacheMiss() {
	QueryCacheMisses.Inc()
}

// RecordUpstreamRequest records an upstream API request outcome
// ("success", "not_found", "error").
func RecordUpstreamRequest(endpoint, outcome string) {
	UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

// TimeUpstreamRequest returns a stop function observing the elapsed time of
// an upstream request.
func TimeUpstreamRequest(endpoint string) func() {
	timer := prometheus.NewTimer(UpstreamRequestDuration.WithLabelValues(endpoint))
	return func() {
		timer.ObserveDuration()
	}
}
