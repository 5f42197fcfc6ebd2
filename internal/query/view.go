// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package query

import (
	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/models"
	"github.com/tomtom215/statdash/internal/stats"
)

// Present builds the presentation payload of a successful state. Indicators
// outside the catalog are labeled with their id.
func Present(s State) (models.SeriesView, bool) {
	if s.Phase != PhaseSuccess || len(s.Series) == 0 {
		return models.SeriesView{}, false
	}

	view := models.SeriesView{
		IndicatorID:    s.IndicatorID,
		IndicatorLabel: s.IndicatorID,
		GeographyID:    s.GeographyID,
		GeographyLabel: s.GeographyID,
		ChartStyle:     s.ChartStyle,
		Points:         s.Series,
		Summary:        stats.Summarize(s.Series),
	}
	if ind, ok := catalog.LookupIndicator(s.IndicatorID); ok {
		view.IndicatorLabel = ind.Label
		view.Unit = ind.Unit
	}
	if geo, ok := catalog.LookupGeography(s.GeographyID); ok {
		view.GeographyLabel = geo.Label
	}
	return view, true
}
