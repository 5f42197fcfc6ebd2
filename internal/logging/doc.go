// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package logging provides the zerolog-based structured logger used by all
// statdash packages.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Err(err).Msg("Upstream request failed")
//
//	// Request-scoped: adds request_id and correlation_id
//	logging.Ctx(ctx).Debug().Str("indicator", id).Msg("Query settled")
//
// # Configuration
//
// Level, format and caller reporting come from the config package
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER). Formats are "json" for production and
// "console" for local development.
//
// # Secrets
//
// The INEGI token travels in the upstream URL path. Anything that may
// contain that URL, such as *url.Error values, must pass through
// RedactSecret before it is logged or shown to a user.
//
// # slog bridge
//
// NewSlogLogger returns a *slog.Logger writing through zerolog, used to feed
// suture supervisor events into the same log stream.
package logging
