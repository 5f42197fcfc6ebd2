// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package query

import (
	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/models"
)

// Phase is the lifecycle position of a query.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// User-facing messages for the error phase.
const (
	NoDataMessage       = "No data found for this indicator and geography combination."
	UnknownErrorMessage = "Unknown error"
)

// State is the selection and query state of one controller.
//
// Series is non-empty only in PhaseSuccess. When IndicatorID is national-only,
// GeographyID is always catalog.NationalID.
type State struct {
	IndicatorID string             `json:"indicator_id"`
	GeographyID string             `json:"geography_id"`
	ChartStyle  string             `json:"chart_style"`
	Series      []models.DataPoint `json:"series"`
	Phase       Phase              `json:"phase"`
	Message     string             `json:"message,omitempty"`
	Generation  uint64             `json:"generation"`
}

// InitialState selects the first catalog indicator at national scope.
func InitialState() State {
	return State{
		IndicatorID: catalog.ListIndicators()[0].ID,
		GeographyID: catalog.NationalID,
		ChartStyle:  catalog.DefaultChartStyle,
		Phase:       PhaseIdle,
	}
}

// NationalOnly reports whether the selected indicator locks geography to national.
func (s State) NationalOnly() bool {
	return catalog.IsNationalOnly(s.IndicatorID)
}

func (s State) clone() State {
	if s.Series != nil {
		series := make([]models.DataPoint, len(s.Series))
		copy(series, s.Series)
		s.Series = series
	}
	return s
}
