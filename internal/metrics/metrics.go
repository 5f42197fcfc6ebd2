// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_api_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "statdash_api_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "statdash_api_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// Upstream (INEGI BIE) Metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_upstream_requests_total",
			Help: "Total number of INEGI API requests by outcome",
		},
		[]string{"outcome"}, // "success", "http_error", "transport_error", "rate_limited", "invalid_body"
	)

	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "statdash_upstream_request_duration_seconds",
			Help:    "Duration of INEGI API requests in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "statdash_cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_cache_evictions_total",
			Help: "Total number of expired cache entries removed",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "statdash_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "statdash_circuit_breaker_consecutive_failures",
			Help: "Current consecutive failures seen by the circuit breaker",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Query Metrics
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_queries_total",
			Help: "Dashboard queries by final phase",
		},
		[]string{"outcome"}, // "success", "error", "superseded"
	)

	QueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "statdash_query_duration_seconds",
			Help:    "Duration of dashboard queries from submit to settle",
			Buckets: prometheus.DefBuckets,
		},
	)

	NormalizedObservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statdash_normalized_observations_total",
			Help: "Upstream observations seen by the normalizer",
		},
		[]string{"result"}, // "kept", "dropped"
	)

)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamRequest records one INEGI request attempt cycle.
func RecordUpstreamRequest(outcome string, duration time.Duration) {
	UpstreamRequests.WithLabelValues(outcome).Inc()
	UpstreamDuration.Observe(duration.Seconds())
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordCacheSweep records the result of a janitor pass.
func RecordCacheSweep(cacheType string, evicted, remaining int) {
	CacheEvictions.WithLabelValues(cacheType).Add(float64(evicted))
	CacheEntries.WithLabelValues(cacheType).Set(float64(remaining))
}

// RecordQuery records a settled dashboard query.
func RecordQuery(outcome string, duration time.Duration) {
	QueriesTotal.WithLabelValues(outcome).Inc()
	QueryDuration.Observe(duration.Seconds())
}

// RecordNormalized records observation counts of one normalized payload.
func RecordNormalized(kept, dropped int) {
	NormalizedObservations.WithLabelValues("kept").Add(float64(kept))
	NormalizedObservations.WithLabelValues("dropped").Add(float64(dropped))
}
