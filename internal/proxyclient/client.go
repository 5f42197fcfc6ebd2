// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package proxyclient consumes a Statdash proxy endpoint over HTTP:
//
//	GET <proxy>?indicator=<id>&geography=<id>
//
// 200 carries the raw INEGI body; 400 and 500 carry {"error": "..."}.
// Client satisfies query.Fetcher so a remote dashboard (the CLI) runs the
// same orchestration as the server.
package proxyclient

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

	"github.com/tomtom215/statdash/internal/models"
)

// ErrProxy is wrapped by every error returned from Fetch.
var ErrProxy = errors.New("proxy request failed")

const (
	maxErrorBodySize = 64 * 1024
	maxBodySize      = 16 << 20
)

// StatusError is a non-200 proxy answer. Its message is the proxy's
// {error} text, shown to the user as is.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string { return e.Message }
func (e *StatusError) Unwrap() error { return ErrProxy }

// Client fetches indicator payloads through a proxy endpoint.
type Client struct {
	endpoint *url.URL
	client   *http.Client
}

// New returns a client for the proxy at endpoint, e.g.
// "http://localhost:8080/api/inegi". A zero timeout leaves the transport
// defaults in charge.
func New(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid proxy URL: scheme must be http or https, got %q", u.Scheme)
	}
	return &Client{
		endpoint: u,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// URL returns the request URL for the selection.
func (c *Client) URL(indicatorID, geographyID string) string {
	u := *c.endpoint
	q := u.Query()
	q.Set("indicator", indicatorID)
	if geographyID != "" {
		q.Set("geography", geographyID)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Fetch performs one proxy request.
func (c *Client) Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(indicatorID, geographyID), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProxy, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProxy, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrProxy, err)
	}
	return body, nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var pe models.ProxyError
	if err := json.Unmarshal(raw, &pe); err == nil && strings.TrimSpace(pe.Error) != "" {
		return &StatusError{StatusCode: resp.StatusCode, Message: pe.Error}
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Proxy answered HTTP %d", resp.StatusCode),
	}
}
