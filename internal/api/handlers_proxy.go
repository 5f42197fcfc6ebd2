// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/upstream"
)

type proxyRequest struct {
	Indicator string `query:"indicator" validate:"required,inegi_indicator"`
	Geography string `query:"geography" validate:"omitempty,inegi_geography"`
}

// INEGIProxy relays one indicator query to INEGI with the server's token.
//
//	200: the INEGI JSON body, unmodified, with Cache-Control max-age
//	400: {"error": "The 'indicator' parameter is required"}, or a malformed id
//	500: {"error": "..."} for a missing token or any upstream failure
func (h *Handler) INEGIProxy(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())

	if !h.upstreamCfg.HasToken() {
		log.Warn().Msg("INEGI proxy called without a configured token")
		respondProxyError(w, http.StatusInternalServerError, upstream.MessageConfig)
		return
	}

	q := r.URL.Query()
	req := proxyRequest{
		Indicator: strings.TrimSpace(q.Get("indicator")),
		Geography: strings.TrimSpace(q.Get("geography")),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondProxyError(w, http.StatusBadRequest, apiErr.Message)
		return
	}

	geography := req.Geography
	if geography == "" {
		geography = h.upstreamCfg.DefaultGeography
	}

	body, cached, err := h.proxy.FetchCached(r.Context(), req.Indicator, geography)
	if err != nil {
		status, message := upstream.Describe(err)
		log.Error().
			Str("indicator", sanitizeLogValue(req.Indicator)).
			Str("geography", sanitizeLogValue(geography)).
			Err(err).
			Msg("Error fetching INEGI data")
		respondProxyError(w, status, message)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(h.proxy.MaxAge()))
	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Debug().Err(err).Msg("Client went away during proxy write")
	}
}
