// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv unsets every mapped variable for the duration of the test and
// points CONFIG_PATH at a file that does not exist.
func isolateEnv(t *testing.T) {
	t.Helper()
	for key := range envMappings {
		name := strings.ToUpper(key)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Chdir(t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != DefaultBaseURL {
		t.Errorf("Upstream.BaseURL = %q, want %q", cfg.Upstream.BaseURL, DefaultBaseURL)
	}
	if cfg.Upstream.DefaultGeography != "0700" {
		t.Errorf("Upstream.DefaultGeography = %q, want 0700", cfg.Upstream.DefaultGeography)
	}
	if cfg.Upstream.CacheTTL != time.Hour {
		t.Errorf("Upstream.CacheTTL = %v, want 1h", cfg.Upstream.CacheTTL)
	}
	if cfg.Upstream.HasToken() {
		t.Error("Upstream token should be empty by default")
	}
	if cfg.Session.CookieName != "statdash_session" {
		t.Errorf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"INEGI_TOKEN", "upstream.token"},
		{"UPSTREAM_RPS", "upstream.requests_per_second"},
		{"HTTP_PORT", "server.port"},
		{"PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"SESSION_TTL", "session.ttl"},
		{"log_level", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("INEGI_TOKEN", "secret-token")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("UPSTREAM_CACHE_TTL", "15m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Upstream.Token != "secret-token" {
		t.Errorf("Upstream.Token = %q", cfg.Upstream.Token)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Upstream.CacheTTL != 15*time.Minute {
		t.Errorf("Upstream.CacheTTL = %v, want 15m", cfg.Upstream.CacheTTL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Server.Addr() != "0.0.0.0:9000" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7000
upstream:
  language: en
  default_geography: "00"
logging:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 from file", cfg.Server.Port)
	}
	if cfg.Upstream.Language != "en" || cfg.Upstream.DefaultGeography != "00" {
		t.Errorf("Upstream = %+v", cfg.Upstream)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env override error", cfg.Logging.Level)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("Upstream.Timeout = %v, want default 30s", cfg.Upstream.Timeout)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad base url", map[string]string{"INEGI_BASE_URL": "ftp://inegi.example"}, "INEGI_BASE_URL"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"zero cache ttl", map[string]string{"UPSTREAM_CACHE_TTL": "0s"}, "UPSTREAM_CACHE_TTL"},
		{"bad environment", map[string]string{"ENVIRONMENT": "qa"}, "ENVIRONMENT"},
		{"rate limit out of range", map[string]string{"RATE_LIMIT_REQS": "0"}, "RATE_LIMIT_REQS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestMissingTokenIsNotAStartupError(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Upstream.HasToken() {
		t.Error("HasToken() = true, want false")
	}
}

func TestRateLimitDisabledSkipsBounds(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when rate limiting is disabled", err)
	}
}
