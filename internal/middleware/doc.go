// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package middleware provides chi-compatible HTTP middleware.

Key Components:

  - RequestID: X-Request-ID propagation and logging context
  - PrometheusMetrics: request count, latency and in-flight gauge per route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

Usage Example:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.With(middleware.Compression).Get("/api/v1/catalog/indicators", h.Indicators)
*/
package middleware
