// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package models

// DataPoint is one normalized observation of a series.
// Period is the upstream time bucket token, e.g. "2020" or "2020/01".
type DataPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// PeriodValue pairs a value with the period it was observed in.
type PeriodValue struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// Summary holds the derived statistics shown next to a chart.
// Max and Min refer to the first occurrence when values tie.
type Summary struct {
	First PeriodValue `json:"first"`
	Last  PeriodValue `json:"last"`
	Max   PeriodValue `json:"max"`
	Min   PeriodValue `json:"min"`
	Count int         `json:"count"`
}

// SeriesView is what a successful query hands to the presentation layer.
type SeriesView struct {
	IndicatorID    string      `json:"indicator_id"`
	IndicatorLabel string      `json:"indicator_label"`
	Unit           string      `json:"unit"`
	GeographyID    string      `json:"geography_id"`
	GeographyLabel string      `json:"geography_label"`
	ChartStyle     string      `json:"chart_style"`
	Points         []DataPoint `json:"points"`
	Summary        Summary     `json:"summary"`
}
