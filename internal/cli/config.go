// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package cli holds the pieces of the statdash command-line client: its TOML
// settings file and terminal rendering of catalogs and series.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig is the optional ~/.config/statdash/config.toml.
//
//	[query]
//	proxy = "http://localhost:8080/api/inegi"
//	geography = "09"
//	chart = "bar"
//	timeout = "20s"
type FileConfig struct {
	Query QueryConfig `toml:"query"`
}

// QueryConfig holds defaults for the query command. Nil fields are unset.
type QueryConfig struct {
	Proxy     *string   `toml:"proxy"`
	Geography *string   `toml:"geography"`
	Chart     *string   `toml:"chart"`
	Timeout   *duration `toml:"timeout"`
}

// duration decodes Go duration strings from TOML.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// TimeoutValue returns the configured timeout, if any.
func (q QueryConfig) TimeoutValue() (time.Duration, bool) {
	if q.Timeout == nil {
		return 0, false
	}
	return q.Timeout.Duration, true
}

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML settings path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigHome(), "statdash", "config.toml")
}

// LoadFileConfig reads path. A missing file yields an empty config.
func LoadFileConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
