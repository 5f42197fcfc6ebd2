// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package stats derives presentation statistics from a normalized series.
package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/statdash/internal/models"
)

const sparkChars = " .:-=+*#%@"

// Summarize computes first, last, maximum and minimum over points in sequence
// order. Ties on max and min resolve to the earliest point. The zero Summary
// is returned for an empty series.
func Summarize(points []models.DataPoint) models.Summary {
	if len(points) == 0 {
		return models.Summary{}
	}

	first := points[0]
	last := points[len(points)-1]
	maxP, minP := first, first
	for _, p := range points[1:] {
		if p.Value > maxP.Value {
			maxP = p
		}
		if p.Value < minP.Value {
			minP = p
		}
	}

	return models.Summary{
		First: models.PeriodValue(first),
		Last:  models.PeriodValue(last),
		Max:   models.PeriodValue(maxP),
		Min:   models.PeriodValue(minP),
		Count: len(points),
	}
}

// FormatValue renders v with two decimals and a B, M or K suffix for large
// magnitudes.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// Values extracts the value column of a series.
func Values(points []models.DataPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

// Sparkline renders values as a single line of ASCII density characters.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
