// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package query implements the dashboard's query orchestration.

A session's selection (indicator, geography, chart style) and the outcome of
its latest request live in a State. State changes go through Transition, a
pure function of (State, Event):

	idle|success|error --SelectIndicator--> same phase (national-only forces geography "00")
	any                --Submit-----------> loading (generation + 1, series cleared)
	loading            --Completed--------> success, or error when the series is empty
	loading            --Failed-----------> error with the failure message

Controller wraps a State with a mutex and performs the one side effect, the
fetch, between Begin and Complete. Every Submit increments a generation
counter and completions for older generations are ignored, so a slow
response can never overwrite a newer one.
*/
package query
