// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package api provides the HTTP surface of Statdash on the Chi router.

Endpoints:

	GET /api/inegi?indicator=&geography=     raw INEGI proxy ({error} on failure)
	GET /api/v1/catalog/indicators           selectable indicators
	GET /api/v1/catalog/geographies          national first, then states
	GET /api/v1/catalog/chart-types          line, bar, area
	GET /api/v1/catalog/categories           indicators grouped by category
	GET /api/v1/series?indicator=&geography= normalized series with summary
	GET /api/v1/health/live                  liveness
	GET /api/v1/health/ready                 503 without token or with open breaker
	GET /metrics                             Prometheus

The proxy keeps the {"error": "..."} contract its clients consume. Every
/api/v1 endpoint answers with the models.APIResponse envelope.

Beyond a missing indicator, the proxy also answers 400 when indicator is
not 1 to 20 digits or geography is not 2 to 12 digits. Such ids never
reach INEGI, so they no longer surface as a 500 transport error.

The dashboard page is mounted at "/" through Router.Mount.
*/
package api
