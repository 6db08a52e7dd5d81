// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the qllnv client.
//
// Configuration is loaded from the file named by the QLLNV_CONFIG
// environment variable or a --config flag. Unlike a server deployment, an
// interactive client must work out of the box, so a missing config file is
// not an error: every field has a usable default and the config file only
// overrides them.
//
// The file may contain environment-specific sections (development,
// production) that override base values when the environment matches.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development against a dev backend.
	Development Environment = "development"
	// Production is for real deployments.
	Production Environment = "production"
)

// Config is the client configuration.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// Server configures the HR backend connection.
	Server ServerConfig `yaml:"server"`

	// Session configures where the login session is stored.
	Session SessionConfig `yaml:"session"`

	// Log configures optional file logging for the TUI.
	Log LogConfig `yaml:"log"`

	// Per-environment overrides, applied after the base config loads.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Server  *ServerConfig  `yaml:"server,omitempty"`
	Session *SessionConfig `yaml:"session,omitempty"`
	Log     *LogConfig     `yaml:"log,omitempty"`
}

// ServerConfig configures the HR backend connection.
type ServerConfig struct {
	// BaseURL is the backend API root, including the path prefix
	// (e.g., "http://localhost:8080/api").
	BaseURL string `yaml:"base_url"`

	// Timeout is the per-request timeout as a Go duration string
	// (e.g., "30s"). Empty means the default.
	Timeout string `yaml:"timeout"`
}

// SessionConfig configures session persistence.
type SessionConfig struct {
	// File overrides the session file path. Empty means the default
	// (~/.config/qllnv/session.json, or QLLNV_SESSION_FILE).
	File string `yaml:"file"`
}

// LogConfig configures optional logging.
type LogConfig struct {
	// Output is a file path for JSON log records. Empty disables file
	// logging. The TUI never logs to the terminal it is drawing on.
	Output string `yaml:"output"`
}

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 15 * time.Second

// Default returns the default configuration. These values are a working
// base for local development; the config file overrides them.
func Default() *Config {
	return &Config{
		Environment: Development,
		Server: ServerConfig{
			BaseURL: "http://localhost:8080/api",
		},
	}
}

// Load loads configuration from the QLLNV_CONFIG environment variable.
// When the variable is unset, returns Default(); the client must start
// with zero setup.
func Load() (*Config, error) {
	configPath := os.Getenv("QLLNV_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging over
// the defaults and applying environment-specific overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.Server != nil {
		if overrides.Server.BaseURL != "" {
			c.Server.BaseURL = overrides.Server.BaseURL
		}
		if overrides.Server.Timeout != "" {
			c.Server.Timeout = overrides.Server.Timeout
		}
	}
	if overrides.Session != nil && overrides.Session.File != "" {
		c.Session.File = overrides.Session.File
	}
	if overrides.Log != nil && overrides.Log.Output != "" {
		c.Log.Output = overrides.Log.Output
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// fields for portability across machines.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Session.File = expandVars(c.Session.File, vars)
	c.Log.Output = expandVars(c.Log.Output, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// RequestTimeout returns the configured per-request timeout, falling
// back to DefaultTimeout when unset or unparsable.
func (c *Config) RequestTimeout() time.Duration {
	if c.Server.Timeout == "" {
		return DefaultTimeout
	}
	timeout, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}
	if c.Server.BaseURL == "" {
		errs = append(errs, fmt.Errorf("server.base_url is required"))
	}
	if c.Server.Timeout != "" {
		if _, err := time.ParseDuration(c.Server.Timeout); err != nil {
			errs = append(errs, fmt.Errorf("server.timeout: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
