// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package services adapts blocking server lifecycles to suture.Service.
//
// HTTPServerService translates http.Server's ListenAndServe and Shutdown
// into a context-aware Serve. Cache janitors already implement Serve and are
// added to the tree directly.
package services
