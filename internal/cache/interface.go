// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package cache

import "time"

// Cacher is the key-value contract used by the HTTP handlers.
type Cacher interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	SetWithTTL(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	TTL() time.Duration
}

// Sweeper is a store whose expired entries can be purged in bulk.
type Sweeper interface {
	Sweep() int
	Len() int
}

var (
	_ Cacher  = (*Cache)(nil)
	_ Sweeper = (*Cache)(nil)
)
