// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package normalize converts INEGI BIE indicator payloads into ordered
// series of models.DataPoint.
//
// The payload is untrusted. Normalize walks it as an untyped tree with
// guarded accesses: a structural mismatch drops the affected observation,
// and a missing series container yields an empty series. Nothing in this
// package panics or returns an error for a well-formed JSON value.
//
// Expected shape (field names are the upstream contract):
//
//	{"Series": [{"OBSERVATIONS": [{"TIME_PERIOD": "2020/01", "OBS_VALUE": "50"}]}]}
package normalize

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/statdash/internal/models"
)

// Wire field names of the INEGI BIE JSON response.
const (
	FieldSeries       = "Series"
	FieldObservations = "OBSERVATIONS"
	FieldPeriod       = "TIME_PERIOD"
	FieldValue        = "OBS_VALUE"
)

// Report counts what happened to the observations of one payload.
type Report struct {
	Observations int // entries found in the first series
	Kept         int
	Dropped      int
}

// Normalize maps a decoded JSON value to a series sorted by period.
func Normalize(raw interface{}) []models.DataPoint {
	points, _ := NormalizeWithReport(raw)
	return points
}

// NormalizeWithReport is Normalize plus observation counts for metrics.
func NormalizeWithReport(raw interface{}) ([]models.DataPoint, Report) {
	var report Report

	observations, ok := observationList(raw)
	if !ok {
		return []models.DataPoint{}, report
	}
	report.Observations = len(observations)

	points := make([]models.DataPoint, 0, len(observations))
	for _, entry := range observations {
		p, ok := toDataPoint(entry)
		if !ok {
			report.Dropped++
			continue
		}
		points = append(points, p)
	}
	report.Kept = len(points)

	// Stable keeps repeated periods in upstream order.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Period < points[j].Period
	})

	return points, report
}

// Parse decodes a raw response body and normalizes it. The only error is a
// body that is not JSON at all.
func Parse(body []byte) ([]models.DataPoint, Report, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, Report{}, err
	}
	points, report := NormalizeWithReport(raw)
	return points, report, nil
}

// observationList resolves Series[0].OBSERVATIONS.
func observationList(raw interface{}) ([]interface{}, bool) {
	series, ok := field(raw, FieldSeries)
	if !ok {
		return nil, false
	}
	first, ok := element(series, 0)
	if !ok {
		return nil, false
	}
	obs, ok := field(first, FieldObservations)
	if !ok {
		return nil, false
	}
	list, ok := obs.([]interface{})
	return list, ok
}

func toDataPoint(entry interface{}) (models.DataPoint, bool) {
	periodRaw, ok := field(entry, FieldPeriod)
	if !ok {
		return models.DataPoint{}, false
	}
	period, ok := periodRaw.(string)
	if !ok {
		return models.DataPoint{}, false
	}

	valueRaw, ok := field(entry, FieldValue)
	if !ok {
		return models.DataPoint{}, false
	}
	token, ok := valueRaw.(string)
	if !ok || token == "" {
		return models.DataPoint{}, false
	}

	value, ok := parseValue(token)
	if !ok {
		return models.DataPoint{}, false
	}
	return models.DataPoint{Period: period, Value: value}, true
}

// parseValue reads a decimal number independent of locale. Hex floats and
// non-finite results are rejected.
func parseValue(token string) (float64, bool) {
	s := strings.TrimSpace(token)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// field returns obj[key] when obj is a JSON object holding a non-null key.
func field(obj interface{}, key string) (interface{}, bool) {
	m, ok := obj.(map[string]interface{})
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// element returns arr[i] when arr is a JSON array long enough.
func element(arr interface{}, i int) (interface{}, bool) {
	s, ok := arr.([]interface{})
	if !ok || i < 0 || i >= len(s) {
		return nil, false
	}
	if s[i] == nil {
		return nil, false
	}
	return s[i], true
}
