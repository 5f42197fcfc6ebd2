// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package query

import (
	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/models"
)

// Event is an input to Transition.
type Event interface {
	event()
}

// SelectIndicator changes the indicator. National-only indicators force the
// geography to the national aggregate in the same step.
type SelectIndicator struct{ ID string }

// SelectGeography changes the geography. Ignored for ids outside the catalog
// and for regional ids while a national-only indicator is selected.
type SelectGeography struct{ ID string }

// SelectChartStyle changes the chart style. Ignored for unknown styles.
type SelectChartStyle struct{ ID string }

// Submit starts a new query generation.
type Submit struct{}

// Completed delivers the normalized series of a finished request.
type Completed struct {
	Generation uint64
	Points     []models.DataPoint
}

// Failed delivers a transport or decode failure of a request.
type Failed struct {
	Generation uint64
	Message    string
}

func (SelectIndicator) event()  {}
func (SelectGeography) event()  {}
func (SelectChartStyle) event() {}
func (Submit) event()           {}
func (Completed) event()        {}
func (Failed) event()           {}

// Transition applies e to s and returns the new state. It has no side
// effects; issuing the request for a Submit is the caller's job.
//
// Completions carry the generation they were issued for. A completion whose
// generation is not the current one, or that arrives outside PhaseLoading,
// is stale and leaves the state untouched.
func Transition(s State, e Event) State {
	switch e := e.(type) {
	case SelectIndicator:
		if e.ID == "" {
			return s
		}
		s.IndicatorID = e.ID
		if catalog.IsNationalOnly(e.ID) {
			s.GeographyID = catalog.NationalID
		}

	case SelectGeography:
		if _, ok := catalog.LookupGeography(e.ID); !ok {
			return s
		}
		if s.NationalOnly() && e.ID != catalog.NationalID {
			return s
		}
		s.GeographyID = e.ID

	case SelectChartStyle:
		if _, ok := catalog.LookupChartStyle(e.ID); !ok {
			return s
		}
		s.ChartStyle = e.ID

	case Submit:
		s.Generation++
		s.Phase = PhaseLoading
		s.Series = nil
		s.Message = ""

	case Completed:
		if stale(s, e.Generation) {
			return s
		}
		if len(e.Points) == 0 {
			return enterError(s, NoDataMessage)
		}
		s.Phase = PhaseSuccess
		s.Message = ""
		s.Series = make([]models.DataPoint, len(e.Points))
		copy(s.Series, e.Points)

	case Failed:
		if stale(s, e.Generation) {
			return s
		}
		msg := e.Message
		if msg == "" {
			msg = UnknownErrorMessage
		}
		return enterError(s, msg)
	}
	return s
}

func stale(s State, generation uint64) bool {
	return s.Phase != PhaseLoading || generation != s.Generation
}

// enterError clears the series since the error view shows no data.
func enterError(s State, msg string) State {
	s.Phase = PhaseError
	s.Message = msg
	s.Series = nil
	return s
}
