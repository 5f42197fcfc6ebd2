// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package models defines the data structures shared across statdash.

  - DataPoint: one normalized (period, value) observation
  - Summary, PeriodValue: derived first/last/max/min statistics
  - SeriesView: the payload handed to the dashboard and the series API
  - APIResponse, Metadata, APIError: the /api/v1 response envelope
  - ProxyError: the {"error": "..."} body of the raw INEGI proxy

Models carry JSON tags only; behavior lives in the normalize, stats and
query packages.
*/
package models
