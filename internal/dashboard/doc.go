// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package dashboard serves the server-rendered HTML dashboard.

Each browser session owns one query.Controller, found through a session
cookie in an in-memory TTL store. The page is rendered from the controller's
state on every GET; selections and submissions are form POSTs that redirect
back to the page.

Routes (relative to the mount point):

	GET  /        render the page for the current session
	POST /select  apply indicator, geography and chart style selections
	POST /submit  run a query for the current selection ("Try again" too)

Sessions are never persisted and vanish when the process restarts.
*/
package dashboard
