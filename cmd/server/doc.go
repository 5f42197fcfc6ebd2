// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Command server runs the statdash dashboard and its INEGI proxy.

	RootSupervisor ("statdash")
	├── DataSupervisor ("data-layer")
	│   ├── cache-janitor-upstream
	│   └── cache-janitor-sessions
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog, JSON or console
 3. Upstream chain: INEGI client, circuit breaker, response cache
 4. Dashboard sessions and the HTML dashboard
 5. Chi router with the proxy, JSON API, metrics and dashboard
 6. Supervisor tree until SIGINT or SIGTERM

# Configuration

The INEGI token is read from INEGI_TOKEN. Without it the server still
starts, serves the dashboard and catalog, and answers indicator queries with
a configuration error.

	export INEGI_TOKEN=your-token
	export HTTP_PORT=8080
	./server

See internal/config for every setting.
*/
package main
