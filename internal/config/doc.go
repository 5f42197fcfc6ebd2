// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

/*
Package config loads and validates Statdash configuration.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Only the environment variables listed
in envMappings are read; anything else in the environment is ignored.

# Environment Variables

Upstream (UpstreamConfig):
  - INEGI_TOKEN, INEGI_BASE_URL, INEGI_LANGUAGE, INEGI_DEFAULT_GEOGRAPHY
  - UPSTREAM_TIMEOUT, UPSTREAM_CACHE_TTL, UPSTREAM_RPS, UPSTREAM_BURST, UPSTREAM_MAX_RETRIES

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT or PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Sessions (SessionConfig):
  - SESSION_TTL, SESSION_COOKIE_NAME, SESSION_COOKIE_SECURE

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example YAML

	upstream:
	  token: "..."
	  cache_ttl: 30m
	server:
	  port: 9000
	security:
	  cors_origins: ["https://example.org"]

# Thread Safety

A loaded Config is never mutated and is safe for concurrent reads.
*/
package config
