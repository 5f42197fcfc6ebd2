// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that configuration values are usable. A missing upstream
// token is not an error here; the proxy reports it per request.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateUpstream(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateSession(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if err := positiveDuration(c.Server.Timeout, "HTTP_TIMEOUT"); err != nil {
		return err
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got: %s", c.Server.Environment)
	}
}

func (c *Config) validateUpstream() error {
	u := c.Upstream
	if err := validateHTTPURL(u.BaseURL, "INEGI_BASE_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(u.Language) == "" {
		return fmt.Errorf("INEGI_LANGUAGE is required")
	}
	if strings.TrimSpace(u.DefaultGeography) == "" {
		return fmt.Errorf("INEGI_DEFAULT_GEOGRAPHY is required")
	}
	if err := positiveDuration(u.Timeout, "UPSTREAM_TIMEOUT"); err != nil {
		return err
	}
	if err := positiveDuration(u.CacheTTL, "UPSTREAM_CACHE_TTL"); err != nil {
		return err
	}
	if u.RequestsPerSecond <= 0 {
		return fmt.Errorf("UPSTREAM_RPS must be positive, got: %v", u.RequestsPerSecond)
	}
	if u.Burst < 1 {
		return fmt.Errorf("UPSTREAM_BURST must be at least 1, got: %d", u.Burst)
	}
	if u.MaxRetries < 0 || u.MaxRetries > 10 {
		return fmt.Errorf("UPSTREAM_MAX_RETRIES must be between 0 and 10, got: %d", u.MaxRetries)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQS must be between 1 and 100000, got: %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h, got: %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateSession() error {
	if err := positiveDuration(c.Session.TTL, "SESSION_TTL"); err != nil {
		return err
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got: %s", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %s", c.Logging.Format)
	}
	return nil
}

func positiveDuration(d time.Duration, name string) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got: %v", name, d)
	}
	return nil
}

// validateHTTPURL checks that rawURL is an absolute http(s) URL without a query.
// Unlike server base URLs, the INEGI endpoint carries a path.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
