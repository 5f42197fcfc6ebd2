// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package cache

import (
	"context"
	"time"

	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/metrics"
)

// Janitor periodically sweeps a cache. It implements suture.Service.
type Janitor struct {
	store    Sweeper
	interval time.Duration
	name     string
}

// NewJanitor creates a janitor for store. name labels the cache in metrics
// ("upstream", "sessions").
func NewJanitor(name string, store Sweeper, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Janitor{store: store, interval: interval, name: name}
}

// Serve sweeps on every tick until ctx is canceled.
func (j *Janitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.SweepOnce()
		}
	}
}

// SweepOnce runs a single sweep and records it.
func (j *Janitor) SweepOnce() int {
	removed := j.store.Sweep()
	remaining := j.store.Len()
	metrics.RecordCacheSweep(j.name, removed, remaining)
	if removed > 0 {
		logging.Debug().Str("cache", j.name).Int("removed", removed).Int("remaining", remaining).Msg("Cache swept")
	}
	return removed
}

// String implements fmt.Stringer for suture logs.
func (j *Janitor) String() string {
	return "cache-janitor-" + j.name
}
