// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/statdash/internal/catalog"
)

const validBody = `{"Series":[{"OBSERVATIONS":[` +
	`{"TIME_PERIOD":"2020","OBS_VALUE":"10"},` +
	`{"TIME_PERIOD":"2022","OBS_VALUE":"5"},` +
	`{"TIME_PERIOD":"2021","OBS_VALUE":"30"}]}]}`

func staticFetcher(body string, err error) Fetcher {
	return FetcherFunc(func(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
		return []byte(body), err
	})
}

func TestControllerSubmitSuccess(t *testing.T) {
	t.Parallel()

	var gotIndicator, gotGeography string
	fetcher := FetcherFunc(func(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
		gotIndicator, gotGeography = indicatorID, geographyID
		return []byte(validBody), nil
	})

	c := NewController(fetcher)
	c.Dispatch(SelectIndicator{ID: "444663"})
	c.Dispatch(SelectGeography{ID: "14"})

	s := c.Submit(context.Background())
	if s.Phase != PhaseSuccess {
		t.Fatalf("Phase = %q (%s), want success", s.Phase, s.Message)
	}
	if gotIndicator != "444663" || gotGeography != "14" {
		t.Errorf("fetched %s/%s, want 444663/14", gotIndicator, gotGeography)
	}

	view, ok := c.View()
	if !ok {
		t.Fatal("View() ok = false after success")
	}
	if view.IndicatorLabel != "Tasa de desocupación" || view.Unit != "Porcentaje" || view.GeographyLabel != "Jalisco" {
		t.Errorf("view labels = %q %q %q", view.IndicatorLabel, view.Unit, view.GeographyLabel)
	}
	if view.Summary.First.Value != 10 || view.Summary.Last.Value != 5 ||
		view.Summary.Max.Period != "2021" || view.Summary.Min.Period != "2022" {
		t.Errorf("summary = %+v", view.Summary)
	}
}

func TestControllerSubmitFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fetcher     Fetcher
		wantMessage string
	}{
		{
			name:        "transport error verbatim",
			fetcher:     staticFetcher("", errors.New("Could not fetch data from INEGI. Verify the indicator and geography.")),
			wantMessage: "Could not fetch data from INEGI. Verify the indicator and geography.",
		},
		{
			name:        "empty series",
			fetcher:     staticFetcher(`{"Series":[{"OBSERVATIONS":[{"TIME_PERIOD":"2020","OBS_VALUE":""}]}]}`, nil),
			wantMessage: NoDataMessage,
		},
		{
			name:        "missing container",
			fetcher:     staticFetcher(`{"ErrorInfo":"bad indicator"}`, nil),
			wantMessage: NoDataMessage,
		},
		{
			name:        "undecodable body",
			fetcher:     staticFetcher(`<html>`, nil),
			wantMessage: "Invalid response from data service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.fetcher)
			s := c.Submit(context.Background())
			if s.Phase != PhaseError {
				t.Fatalf("Phase = %q, want error", s.Phase)
			}
			if !strings.HasPrefix(s.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want prefix %q", s.Message, tt.wantMessage)
			}
			if _, ok := c.View(); ok {
				t.Error("View() ok = true in error phase")
			}
		})
	}
}

func TestControllerOverlappingSubmissions(t *testing.T) {
	t.Parallel()

	c := NewController(nil)
	older := c.Begin()
	newer := c.Begin()

	c.Complete(newer, []byte(validBody), nil)
	s := c.Complete(older, nil, errors.New("slow failure"))

	if s.Phase != PhaseSuccess || len(s.Series) != 3 {
		t.Errorf("state = %+v, want newer success retained", s)
	}
}

func TestControllerTicketSnapshotsSelection(t *testing.T) {
	t.Parallel()

	c := NewController(nil)
	c.Dispatch(SelectGeography{ID: "05"})
	ticket := c.Begin()
	c.Dispatch(SelectGeography{ID: "06"})

	if ticket.GeographyID != "05" {
		t.Errorf("ticket.GeographyID = %q, want 05", ticket.GeographyID)
	}
	if got := c.State().GeographyID; got != "06" {
		t.Errorf("GeographyID = %q, want 06", got)
	}
}

func TestControllerStateIsCopy(t *testing.T) {
	t.Parallel()

	c := NewController(staticFetcher(validBody, nil))
	c.Submit(context.Background())

	s := c.State()
	s.Series[0].Value = -1
	s.GeographyID = catalog.NationalID + "x"

	again := c.State()
	if again.Series[0].Value == -1 {
		t.Error("State() exposes internal series")
	}
}
