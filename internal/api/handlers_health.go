// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/statdash/internal/models"
)

// HealthLive reports that the process is up, regardless of INEGI.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady returns 503 while queries cannot succeed: no token is
// configured or the upstream circuit breaker is open.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	tokenConfigured := h.upstreamCfg.HasToken()
	breakerState := "closed"
	breakerOpen := false
	if h.breaker != nil {
		breakerState = h.breaker.State()
		breakerOpen = h.breaker.Open()
	}
	ready := tokenConfigured && !breakerOpen

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"token_configured": tokenConfigured,
			"circuit_breaker":  breakerState,
			"ready_to_serve":   ready,
			"uptime":           time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
