// Package config loads the arcade configuration from a TOML file, applies
// defaults and environment overrides, and validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"arcade/internal/router"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

const (
	// FileName is the config file looked up in the data directory.
	FileName = "config.toml"

	EnvHistoryMode  = "ARCADE_HISTORY_MODE"
	EnvLogLevel     = "ARCADE_LOG_LEVEL"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
)

// Config is the root configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	Logging LoggingConfig `toml:"logging"`
	Tracing TracingConfig `toml:"tracing"`
	Session SessionConfig `toml:"session"`
}

// HistoryConfig selects the address-bar strategy.
type HistoryConfig struct {
	Mode string `toml:"mode"` // "web" or "hash"
	Base string `toml:"base"`
}

// LoggingConfig controls the log file. The terminal belongs to the UI, so
// logs never go to stdout.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
	File   string `toml:"file"`   // "" = <data dir>/arcade.log, "-" = discard
}

// TracingConfig enables OTLP export of navigation spans.
type TracingConfig struct {
	Endpoint    string `toml:"endpoint"`
	ServiceName string `toml:"service_name"`
}

// SessionConfig controls restoring the previous history at boot.
type SessionConfig struct {
	Restore *bool `toml:"restore"`
}

// RestoreEnabled reports whether the saved session should be restored.
func (s SessionConfig) RestoreEnabled() bool {
	return s.Restore == nil || *s.Restore
}

// HistoryMode returns the parsed history mode. Valid after Finalize.
func (c *Config) HistoryMode() router.HistoryMode {
	m, _ := router.ParseHistoryMode(c.History.Mode)
	return m
}

// Load reads path. A missing file is not an error: the zero Config is
// returned and Finalize fills in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates.
// dataDir anchors relative defaults such as the log file.
func (c *Config) Finalize(dataDir string) error {
	c.loadDefaults(dataDir)
	c.loadEnv()
	return c.validate()
}

func (c *Config) loadDefaults(dataDir string) {
	if c.History.Mode == "" {
		c.History.Mode = string(router.HistoryModeWeb)
	}
	if c.History.Base == "" {
		c.History.Base = "/"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(dataDir, "arcade.log")
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "arcade"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvHistoryMode); v != "" {
		c.History.Mode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvOTLPEndpoint); v != "" {
		c.Tracing.Endpoint = v
	}
	if v := os.Getenv(EnvServiceName); v != "" {
		c.Tracing.ServiceName = v
	}
}

func (c *Config) validate() error {
	if _, err := router.ParseHistoryMode(c.History.Mode); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if !strings.HasPrefix(c.History.Base, "/") {
		return fmt.Errorf("history: base %q must start with /", c.History.Base)
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Logging.Format)
	}
	return nil
}
