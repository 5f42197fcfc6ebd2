// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig
//  2. Config File: optional YAML file (CONFIG_PATH, config.yaml, /etc/statdash/config.yaml)
//  3. Environment Variables: override any setting
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Security SecurityConfig `koanf:"security"`
	Session  SessionConfig  `koanf:"session"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// UpstreamConfig holds the INEGI indicator API settings used by the proxy.
//
// Environment Variables:
//   - INEGI_TOKEN: API token appended to every upstream request (required at request time)
//   - INEGI_BASE_URL: indicator endpoint base (default: INEGI BIE jsonxml INDICATOR endpoint)
//   - INEGI_LANGUAGE: response language segment (default: es)
//   - INEGI_DEFAULT_GEOGRAPHY: geography used when a request omits it (default: 0700)
//   - UPSTREAM_TIMEOUT: per-request timeout (default: 30s)
//   - UPSTREAM_CACHE_TTL: how long successful responses are reused (default: 1h)
//   - UPSTREAM_RPS / UPSTREAM_BURST: outbound request rate (default: 5/5)
//   - UPSTREAM_MAX_RETRIES: retries on HTTP 429 (default: 3)
type UpstreamConfig struct {
	BaseURL           string        `koanf:"base_url"`
	Token             string        `koanf:"token"`
	Language          string        `koanf:"language"`
	DefaultGeography  string        `koanf:"default_geography"`
	Timeout           time.Duration `koanf:"timeout"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	MaxRetries        int           `koanf:"max_retries"`
}

// HasToken reports whether an upstream token is configured.
func (u UpstreamConfig) HasToken() bool {
	return u.Token != ""
}

// SecurityConfig holds CORS and inbound rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// SessionConfig controls dashboard browser sessions. Sessions live only in
// memory and are dropped after TTL of inactivity.
type SessionConfig struct {
	TTL          time.Duration `koanf:"ttl"`
	CookieName   string        `koanf:"cookie_name"`
	CookieSecure bool          `koanf:"cookie_secure"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
