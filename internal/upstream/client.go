// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/statdash/internal/config"
	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/metrics"
)

var (
	// ErrTokenMissing is returned before any network call when no INEGI token is configured.
	ErrTokenMissing = errors.New("INEGI token is not configured")

	// ErrUpstreamStatus wraps non-200 responses from INEGI.
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrInvalidBody is returned when INEGI answers 200 with a body that is not JSON.
	ErrInvalidBody = errors.New("upstream body is not valid JSON")

	// ErrRateLimited is returned when INEGI keeps answering 429 after all retries.
	ErrRateLimited = errors.New("upstream rate limit exceeded")
)

const (
	// maxErrorBodySize limits how much of an error response is kept for diagnostics.
	maxErrorBodySize = 64 * 1024

	// maxBodySize bounds a successful response. Long BIE series are a few hundred KB.
	maxBodySize = 16 << 20

	// defaultMaxRetryDelay caps a 429 wait when no upstream timeout is configured.
	defaultMaxRetryDelay = 30 * time.Second
)

// Fetcher retrieves the raw INEGI payload for an indicator and geography.
type Fetcher interface {
	Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error)
}

// Client talks to the INEGI BIE indicator endpoint.
//
// Resilience Mechanisms:
//   - Outbound rate limiting with golang.org/x/time/rate
//   - Exponential backoff on HTTP 429, honoring Retry-After up to maxRetryDelay
//   - Context cancellation during waits
//
// The token travels in the URL path, so every error leaving Client is
// scrubbed of it.
type Client struct {
	baseURL          string
	token            string
	language         string
	defaultGeography string
	client           *http.Client
	limiter          *rate.Limiter
	maxRetries       int
	retryBaseDelay   time.Duration
	maxRetryDelay    time.Duration
}

// NewClient creates a client from the upstream configuration.
func NewClient(cfg config.UpstreamConfig) *Client {
	maxRetryDelay := cfg.Timeout
	if maxRetryDelay <= 0 {
		maxRetryDelay = defaultMaxRetryDelay
	}
	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		token:            cfg.Token,
		language:         cfg.Language,
		defaultGeography: cfg.DefaultGeography,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: time.Second,
		maxRetryDelay:  maxRetryDelay,
	}
}

// HasToken reports whether requests can be authenticated.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// DefaultGeography is the geography used when a request does not name one.
func (c *Client) DefaultGeography() string {
	return c.defaultGeography
}

// indicatorURL builds
// {base}/{indicator}/{geography}/{language}/false/false/2.0/{token}?type=json.
func (c *Client) indicatorURL(indicatorID, geographyID string) string {
	return fmt.Sprintf("%s/%s/%s/%s/false/false/2.0/%s?type=json",
		c.baseURL,
		url.PathEscape(indicatorID),
		url.PathEscape(geographyID),
		url.PathEscape(c.language),
		url.PathEscape(c.token),
	)
}

// Fetch returns the raw JSON body for the indicator. An empty geographyID
// selects the configured default.
func (c *Client) Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
	if !c.HasToken() {
		return nil, ErrTokenMissing
	}
	if geographyID == "" {
		geographyID = c.defaultGeography
	}

	start := time.Now()
	body, outcome, err := c.fetch(ctx, indicatorID, geographyID)
	metrics.RecordUpstreamRequest(outcome, time.Since(start))
	if err != nil {
		err = c.redact(err)
		logging.Ctx(ctx).Warn().
			Str("indicator", indicatorID).
			Str("geography", geographyID).
			Str("outcome", outcome).
			Err(err).
			Msg("INEGI request failed")
		return nil, err
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "transport_error", fmt.Errorf("waiting for upstream rate limiter: %w", err)
	}

	resp, err := c.doRequestWithRateLimit(ctx, c.indicatorURL(indicatorID, geographyID))
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			return nil, "rate_limited", err
		}
		return nil, "transport_error", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "http_error", fmt.Errorf("%w: HTTP %d: %s", ErrUpstreamStatus, resp.StatusCode, readBodyForError(resp.Body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, "transport_error", fmt.Errorf("failed to read response body: %w", err)
	}
	if !json.Valid(body) {
		return nil, "invalid_body", ErrInvalidBody
	}
	return body, "success", nil
}

// doRequestWithRateLimit performs a GET with automatic HTTP 429 handling.
// Backoff doubles from retryBaseDelay unless the server sends Retry-After.
// Either way a single wait never exceeds maxRetryDelay, so a handler is
// bounded even when its request context has no deadline.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		_ = resp.Body.Close()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("%w after %d retries (HTTP 429)", ErrRateLimited, c.maxRetries)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}
		delay = min(delay, c.maxRetryDelay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// readBodyForError reads at most maxErrorBodySize bytes of r for diagnostics.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return strings.TrimSpace(string(body))
}

// redactedError hides the token in the message but keeps the chain for errors.Is.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func (c *Client) redact(err error) error {
	msg := err.Error()
	clean := logging.RedactSecret(msg, c.token)
	if escaped := url.PathEscape(c.token); escaped != c.token {
		clean = logging.RedactSecret(clean, escaped)
	}
	if clean == msg {
		return err
	}
	return &redactedError{msg: clean, err: err}
}
