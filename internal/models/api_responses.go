// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package models

import (
	"time"
)

// APIResponse is the envelope used by every /api/v1 endpoint.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": {"points": [...], "summary": {...}},
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z", "cached": true}
//	}
//
// The raw INEGI proxy endpoint does not use this envelope; it passes the
// upstream body through and reports failures as {"error": "..."}.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing and cache information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the structured error of an error envelope.
//
// Codes:
//   - VALIDATION_ERROR: missing or malformed query parameter
//   - CONFIG_ERROR: upstream credential not configured
//   - UPSTREAM_ERROR: INEGI unreachable or answered with a failure
//   - NO_DATA: valid response without usable observations
//   - NOT_FOUND: unknown catalog entry
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ProxyError is the body of a failed raw proxy response.
type ProxyError struct {
	Error string `json:"error"`
}
