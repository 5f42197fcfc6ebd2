// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package metrics defines the Prometheus instrumentation of statdash.

Metrics are registered on the default registry through promauto and exposed
by the /metrics endpoint:

  - statdash_api_*: HTTP request count, latency and in-flight gauge
  - statdash_upstream_*: INEGI request outcomes and latency
  - statdash_cache_*: hits, misses, entries and evictions per cache_type
    ("upstream", "sessions")
  - statdash_circuit_breaker_*: state, results and transitions of the
    upstream breaker
  - statdash_queries_*, statdash_normalized_observations_total: dashboard
    query outcomes and normalizer drop rates

Callers use the Record* helpers rather than touching vectors directly.
*/
package metrics
