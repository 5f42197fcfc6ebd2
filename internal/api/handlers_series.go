// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/query"
	"github.com/tomtom215/statdash/internal/upstream"
)

type seriesRequest struct {
	Indicator string `query:"indicator" validate:"required,inegi_indicator"`
	Geography string `query:"geography" validate:"omitempty,inegi_geography"`
	Chart     string `query:"chart" validate:"omitempty,oneof=line bar area"`
}

// Series runs one query cycle and returns the presentation payload: points,
// labels and summary. Without a geography the national aggregate is used;
// national-only indicators ignore the geography parameter.
func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query()
	req := seriesRequest{
		Indicator: strings.TrimSpace(q.Get("indicator")),
		Geography: strings.TrimSpace(q.Get("geography")),
		Chart:     strings.TrimSpace(q.Get("chart")),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Geography != "" {
		if _, ok := catalog.LookupGeography(req.Geography); !ok {
			respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
				"The 'geography' parameter must be a catalog geography", nil)
			return
		}
	}

	ctrl := query.NewController(h.series)
	ctrl.Dispatch(query.SelectIndicator{ID: req.Indicator})
	if req.Geography != "" {
		ctrl.Dispatch(query.SelectGeography{ID: req.Geography})
	}
	if req.Chart != "" {
		ctrl.Dispatch(query.SelectChartStyle{ID: req.Chart})
	}

	state := ctrl.Submit(r.Context())
	if view, ok := query.Present(state); ok {
		respondSuccess(w, view, start)
		return
	}

	status, code := seriesFailure(state.Message)
	respondError(w, r, status, code, state.Message, nil)
}

// seriesFailure classifies the error phase message for the envelope.
func seriesFailure(message string) (int, string) {
	switch message {
	case query.NoDataMessage:
		return http.StatusNotFound, "NO_DATA"
	case upstream.MessageConfig:
		return http.StatusInternalServerError, "CONFIG_ERROR"
	case upstream.MessageTransport:
		return http.StatusBadGateway, "UPSTREAM_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
