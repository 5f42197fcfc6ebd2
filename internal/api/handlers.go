// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package api

import (
	"context"
	"time"

	"github.com/tomtom215/statdash/internal/config"
	"github.com/tomtom215/statdash/internal/query"
	"github.com/tomtom215/statdash/internal/upstream"
)

// ProxyFetcher is the cached upstream path behind the raw proxy.
type ProxyFetcher interface {
	FetchCached(ctx context.Context, indicatorID, geographyID string) ([]byte, bool, error)
	Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error)
	MaxAge() int
}

// BreakerState exposes the upstream circuit breaker to readiness checks.
type BreakerState interface {
	State() string
	Open() bool
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_proxy.go: raw INEGI proxy
//   - handlers_catalog.go: catalog listings
//   - handlers_series.go: orchestrated series queries
//   - handlers_health.go: liveness and readiness
type Handler struct {
	upstreamCfg config.UpstreamConfig
	proxy       ProxyFetcher
	series      query.Fetcher
	breaker     BreakerState
	startTime   time.Time
}

// NewHandler creates the API handler. The series endpoint reads through the
// same cache as the proxy and reports failures with the proxy's messages.
//
//	client := upstream.NewClient(cfg.Upstream)
//	breaker := upstream.NewBreakerFetcher(client, upstream.DefaultBreakerSettings())
//	cached := upstream.NewCachedFetcher(breaker, responses)
//	handler := api.NewHandler(cfg.Upstream, cached, breaker)
func NewHandler(upstreamCfg config.UpstreamConfig, proxy ProxyFetcher, breaker BreakerState) *Handler {
	return &Handler{
		upstreamCfg: upstreamCfg,
		proxy:       proxy,
		series:      upstream.NewPublicFetcher(proxy),
		breaker:     breaker,
		startTime:   time.Now(),
	}
}
