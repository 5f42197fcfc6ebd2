// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package upstream fetches indicator series from the INEGI BIE API.
//
// The layers compose as Fetchers:
//
//	client := upstream.NewClient(cfg.Upstream)
//	guarded := upstream.NewBreakerFetcher(client, upstream.DefaultBreakerSettings())
//	cached := upstream.NewCachedFetcher(guarded, cache.New(cfg.Upstream.CacheTTL))
//
// Client owns the wire format and the credential. Errors it returns never
// contain the token.
package upstream
