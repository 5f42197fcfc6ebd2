// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/metrics"
	"github.com/tomtom215/statdash/internal/models"
	"github.com/tomtom215/statdash/internal/normalize"
)

// Fetcher retrieves the raw upstream body for an indicator and geography.
// Errors are surfaced to the user verbatim, so their text should be
// human-readable.
type Fetcher interface {
	Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, indicatorID, geographyID string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
	return f(ctx, indicatorID, geographyID)
}

// Ticket identifies one submitted request and the selection it was issued for.
type Ticket struct {
	Generation  uint64
	IndicatorID string
	GeographyID string
}

// Controller owns the state of one dashboard session. It serializes state
// changes; the network call runs outside the lock so selections stay
// responsive while a request is in flight.
type Controller struct {
	mu      sync.Mutex
	state   State
	fetcher Fetcher
}

// NewController returns a controller in the initial idle state.
func NewController(fetcher Fetcher) *Controller {
	return &Controller{
		state:   InitialState(),
		fetcher: fetcher,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Dispatch applies a selection event and returns the resulting state.
func (c *Controller) Dispatch(e Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Transition(c.state, e)
	return c.state.clone()
}

// Begin moves to loading and snapshots the selection for the request.
func (c *Controller) Begin() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Transition(c.state, Submit{})
	return Ticket{
		Generation:  c.state.Generation,
		IndicatorID: c.state.IndicatorID,
		GeographyID: c.state.GeographyID,
	}
}

// Complete applies the outcome of the request identified by t. Outcomes of
// superseded tickets are discarded.
func (c *Controller) Complete(t Ticket, body []byte, fetchErr error) State {
	var e Event
	switch {
	case fetchErr != nil:
		e = Failed{Generation: t.Generation, Message: fetchErr.Error()}
	default:
		points, report, err := normalize.Parse(body)
		if err != nil {
			e = Failed{Generation: t.Generation, Message: fmt.Sprintf("Invalid response from data service: %v", err)}
			break
		}
		metrics.RecordNormalized(report.Kept, report.Dropped)
		e = Completed{Generation: t.Generation, Points: points}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Transition(c.state, e)
	return c.state.clone()
}

// Submit runs a full query cycle for the current selection and returns the
// state after the request settles. A submission overtaken by a newer one
// returns the state as it stands, which still reflects the newer request.
func (c *Controller) Submit(ctx context.Context) State {
	ticket := c.Begin()
	start := time.Now()

	body, err := c.fetcher.Fetch(ctx, ticket.IndicatorID, ticket.GeographyID)
	state := c.Complete(ticket, body, err)

	outcome := string(state.Phase)
	if state.Generation != ticket.Generation {
		outcome = "superseded"
	}
	metrics.RecordQuery(outcome, time.Since(start))

	logging.Ctx(ctx).Debug().
		Str("indicator", ticket.IndicatorID).
		Str("geography", ticket.GeographyID).
		Uint64("generation", ticket.Generation).
		Str("outcome", outcome).
		Int("points", len(state.Series)).
		Msg("Query settled")

	return state
}

// View returns the presentation payload when the last query succeeded.
func (c *Controller) View() (models.SeriesView, bool) {
	return Present(c.State())
}
