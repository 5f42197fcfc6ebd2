// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package upstream

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/metrics"
)

// BreakerName labels the INEGI circuit breaker in metrics.
const BreakerName = "inegi-api"

// BreakerSettings tunes the circuit breaker. Zero values fall back to
// DefaultBreakerSettings.
type BreakerSettings struct {
	MaxRequests uint32        // concurrent probes in half-open state
	Interval    time.Duration // window after which closed-state counts reset
	Timeout     time.Duration // open period before probing
	MinRequests uint32        // requests needed before the ratio is considered
	TripRatio   float64       // failure ratio that opens the circuit
}

// DefaultBreakerSettings opens after 60% failures over at least 10 requests
// and probes again after 2 minutes.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		MinRequests: 10,
		TripRatio:   0.6,
	}
}

// BreakerFetcher wraps a Fetcher with a circuit breaker so a failing INEGI
// endpoint is not hammered by every dashboard session.
type BreakerFetcher struct {
	next Fetcher
	cb   *gobreaker.CircuitBreaker[[]byte]
	name string
}

// NewBreakerFetcher wraps next with the given settings.
func NewBreakerFetcher(next Fetcher, s BreakerSettings) *BreakerFetcher {
	def := DefaultBreakerSettings()
	if s.MaxRequests == 0 {
		s.MaxRequests = def.MaxRequests
	}
	if s.Interval == 0 {
		s.Interval = def.Interval
	}
	if s.Timeout == 0 {
		s.Timeout = def.Timeout
	}
	if s.MinRequests == 0 {
		s.MinRequests = def.MinRequests
	}
	if s.TripRatio == 0 {
		s.TripRatio = def.TripRatio
	}

	name := BreakerName
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.TripRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
		// Missing configuration and caller cancellation say nothing about INEGI health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrTokenMissing) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &BreakerFetcher{next: next, cb: cb, name: name}
}

// Fetch calls the wrapped Fetcher unless the circuit is open.
func (b *BreakerFetcher) Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
	body, err := b.cb.Execute(func() ([]byte, error) {
		return b.next.Fetch(ctx, indicatorID, geographyID)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Ctx(ctx).Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return body, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerFetcher) State() string {
	return stateToString(b.cb.State())
}

// Open reports whether requests are currently being rejected.
func (b *BreakerFetcher) Open() bool {
	return b.cb.State() == gobreaker.StateOpen
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
