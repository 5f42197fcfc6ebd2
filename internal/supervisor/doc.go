// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package supervisor runs the long-lived parts of the server under a suture v4
tree.

	RootSupervisor ("statdash")
	├── DataSupervisor ("data-layer")
	│   ├── cache-janitor-upstream
	│   └── cache-janitor-sessions
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events are logged through sutureslog into the slog adapter of
internal/logging, so they end up in the same zerolog stream as everything
else.

Services follow the suture.Service contract: return nil to stop for good,
return an error to be restarted, and return promptly once ctx is canceled.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(cache.NewJanitor("sessions", sessions, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
