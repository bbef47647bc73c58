// Package config loads the server configuration from a YAML file.
//
// Every field has a working default, so a missing file is not an
// error: the server runs with defaults and flags can override the
// essentials.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":8080".
	Listen string `yaml:"listen"`

	// DBPath is the SQLite database path. ":memory:" is accepted.
	DBPath string `yaml:"db_path"`

	// CORSOrigins lists allowed browser origins for the API.
	CORSOrigins []string `yaml:"cors_origins"`

	// HolidayFeeds are local feed files (JSON or ICS) imported into the
	// holiday table at startup. Import is additive and idempotent.
	HolidayFeeds []FeedConfig `yaml:"holiday_feeds"`
}

// FeedConfig describes one holiday feed file.
type FeedConfig struct {
	// Path to the feed file on disk.
	Path string `yaml:"path"`
	// Format is "json" or "ics". Empty defaults to "json".
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:      ":8080",
		DBPath:      "leave.db",
		CORSOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
	}
}

// Load reads the YAML file at path, layered over Default. A missing
// file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	if cfg.DBPath == "" {
		cfg.DBPath = Default().DBPath
	}
	for i, feed := range cfg.HolidayFeeds {
		if feed.Format == "" {
			cfg.HolidayFeeds[i].Format = "json"
		}
	}
	return cfg, nil
}
