// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/statdash/internal/middleware"
)

// Router wires handlers and middleware into a Chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	dashboard     http.Handler
}

// NewRouter creates a router for handler.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// Mount serves the HTML dashboard at "/".
func (router *Router) Mount(dashboard http.Handler) {
	router.dashboard = dashboard
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Raw proxy: the path and {error} contract are consumed by external clients
	r.With(
		router.chiMiddleware.RateLimitProxy(),
		APISecurityHeaders(),
	).Get("/api/inegi", router.handler.INEGIProxy)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)

		r.Get("/catalog/indicators", router.handler.CatalogIndicators)
		r.Get("/catalog/geographies", router.handler.CatalogGeographies)
		r.Get("/catalog/chart-types", router.handler.CatalogChartTypes)
		r.Get("/catalog/categories", router.handler.CatalogCategories)
		r.Get("/series", router.handler.Series)
	})

	r.Handle("/metrics", promhttp.Handler())

	if router.dashboard != nil {
		r.With(
			router.chiMiddleware.RateLimitDashboard(),
			middleware.Compression,
		).Mount("/", router.dashboard)
	}

	return r
}
