// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package upstream

import (
	"context"
	"errors"
	"net/http"
)

// Client-facing messages. Upstream details stay in the server log.
const (
	MessageConfig    = "INEGI token is not configured on the server."
	MessageTransport = "Could not fetch data from INEGI. Verify the indicator and geography."
)

// Describe maps a fetch error to the status and message shown to clients.
func Describe(err error) (int, string) {
	if errors.Is(err, ErrTokenMissing) {
		return http.StatusInternalServerError, MessageConfig
	}
	return http.StatusInternalServerError, MessageTransport
}

// PublicError carries the client-facing message of a fetch failure while
// keeping the underlying error for errors.Is.
type PublicError struct {
	Status  int
	Message string
	Err     error
}

func (e *PublicError) Error() string { return e.Message }
func (e *PublicError) Unwrap() error { return e.Err }

// PublicFetcher replaces fetch errors with their client-facing messages so
// in-process consumers see exactly what a proxy client would.
type PublicFetcher struct {
	next Fetcher
}

// NewPublicFetcher wraps next.
func NewPublicFetcher(next Fetcher) *PublicFetcher {
	return &PublicFetcher{next: next}
}

// Fetch calls next and translates any error.
func (p *PublicFetcher) Fetch(ctx context.Context, indicatorID, geographyID string) ([]byte, error) {
	body, err := p.next.Fetch(ctx, indicatorID, geographyID)
	if err != nil {
		status, msg := Describe(err)
		return nil, &PublicError{Status: status, Message: msg, Err: err}
	}
	return body, nil
}
