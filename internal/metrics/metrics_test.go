// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/inegi", "200"))
	RecordAPIRequest("GET", "/api/inegi", "200", 15*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/inegi", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	tests := []struct {
		name string
		hit  bool
	}{
		{"hit", true},
		{"miss", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := testutil.ToFloat64(CacheHits.WithLabelValues("upstream"))
			misses := testutil.ToFloat64(CacheMisses.WithLabelValues("upstream"))

			RecordCacheLookup("upstream", tt.hit)

			gotHits := testutil.ToFloat64(CacheHits.WithLabelValues("upstream")) - hits
			gotMisses := testutil.ToFloat64(CacheMisses.WithLabelValues("upstream")) - misses
			if tt.hit && (gotHits != 1 || gotMisses != 0) {
				t.Errorf("hit recorded as hits=%v misses=%v", gotHits, gotMisses)
			}
			if !tt.hit && (gotHits != 0 || gotMisses != 1) {
				t.Errorf("miss recorded as hits=%v misses=%v", gotHits, gotMisses)
			}
		})
	}
}

func TestRecordCacheSweep(t *testing.T) {
	before := testutil.ToFloat64(CacheEvictions.WithLabelValues("sessions"))
	RecordCacheSweep("sessions", 3, 7)

	if got := testutil.ToFloat64(CacheEvictions.WithLabelValues("sessions")) - before; got != 3 {
		t.Errorf("evictions delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(CacheEntries.WithLabelValues("sessions")); got != 7 {
		t.Errorf("entries = %v, want 7", got)
	}
}

func TestRecordNormalized(t *testing.T) {
	kept := testutil.ToFloat64(NormalizedObservations.WithLabelValues("kept"))
	dropped := testutil.ToFloat64(NormalizedObservations.WithLabelValues("dropped"))

	RecordNormalized(5, 2)

	if got := testutil.ToFloat64(NormalizedObservations.WithLabelValues("kept")) - kept; got != 5 {
		t.Errorf("kept delta = %v, want 5", got)
	}
	if got := testutil.ToFloat64(NormalizedObservations.WithLabelValues("dropped")) - dropped; got != 2 {
		t.Errorf("dropped delta = %v, want 2", got)
	}
}

func TestRecordQueryAndUpstream(t *testing.T) {
	q := testutil.ToFloat64(QueriesTotal.WithLabelValues("error"))
	RecordQuery("error", time.Second)
	if got := testutil.ToFloat64(QueriesTotal.WithLabelValues("error")) - q; got != 1 {
		t.Errorf("queries delta = %v, want 1", got)
	}

	u := testutil.ToFloat64(UpstreamRequests.WithLabelValues("http_error"))
	RecordUpstreamRequest("http_error", time.Second)
	if got := testutil.ToFloat64(UpstreamRequests.WithLabelValues("http_error")) - u; got != 1 {
		t.Errorf("upstream delta = %v, want 1", got)
	}
}
