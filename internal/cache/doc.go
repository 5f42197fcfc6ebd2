// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package cache provides the thread-safe TTL cache used for INEGI responses and
dashboard sessions.

  - Cache: map with per-entry expiration, hit/miss/eviction counters
  - Janitor: suture service that sweeps expired entries on an interval
  - GenerateKey: stable hashed keys from a namespace and parameters

Two instances exist at runtime: the upstream response cache (TTL from
upstream.cache_ttl, one hour by default) and the session store (TTL from
session.ttl). Nothing is persisted; a restart starts empty.
*/
package cache
