// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/statdash/internal/catalog"
)

// The catalog is compiled in, so clients may cache it for a day.
const catalogCacheControl = "public, max-age=86400"

// CatalogIndicators lists the selectable indicators.
func (h *Handler) CatalogIndicators(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, catalog.ListIndicators(), start)
}

// CatalogGeographies lists geographies with the national aggregate first.
func (h *Handler) CatalogGeographies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, catalog.ListGeographies(), start)
}

// CatalogChartTypes lists the chart styles.
func (h *Handler) CatalogChartTypes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, catalog.ListChartStyles(), start)
}

// CatalogCategories lists indicators grouped by category.
func (h *Handler) CatalogCategories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, catalog.IndicatorsByCategory(), start)
}
