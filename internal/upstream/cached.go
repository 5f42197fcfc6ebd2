// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package upstream

import (
	"context"

	"github.com/tomtom215/statdash/internal/cache"
	"github.com/tomtom215/statdash/internal/metrics"
)

// CacheType labels the upstream response cache in metrics.
const CacheType = "upstream"

// CachedFetcher serves repeated indicator/geography lookups from a TTL cache.
// Only successful bodies are stored.
type CachedFetcher struct {
	next  Fetcher
	store cache.Cacher
}

// NewCachedFetcher wraps next with store.
func NewCachedFetcher(next Fetcher, store cache.Cacher) *CachedFetcher {
	return &CachedFetcher{next: next, store: store}
}

// CacheKey is the cache key for one upstream lookup.
func CacheKey(indicatorID, geographyID string) string {
	return cache.GenerateKey("inegi", map[string]interface{}{
		"indicator": indicatorID,
		"geography": geographyID,
	})
}

// Fetch returns the cached body when fresh, otherwise calls next.
func (f *CachedFetcher) Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
	body, _, err := f.FetchCached(ctx, indicatorID, geographyID)
	return body, err
}

// FetchCached is Fetch that also reports whether the body came from cache.
func (f *CachedFetcher) FetchCached(ctx context.Context, indicatorID, geographyID string) ([]byte, bool, error) {
	key := CacheKey(indicatorID, geographyID)
	if v, ok := f.store.Get(key); ok {
		if body, ok := v.([]byte); ok {
			metrics.RecordCacheLookup(CacheType, true)
			return body, true, nil
		}
	}
	metrics.RecordCacheLookup(CacheType, false)

	body, err := f.next.Fetch(ctx, indicatorID, geographyID)
	if err != nil {
		return nil, false, err
	}
	f.store.Set(key, body)
	return body, false, nil
}

// MaxAge is how long, in seconds, a fetched body stays fresh.
func (f *CachedFetcher) MaxAge() int {
	return int(f.store.TTL().Seconds())
}
