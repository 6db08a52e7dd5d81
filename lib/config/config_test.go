// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}
	if cfg.Server.BaseURL != "http://localhost:8080/api" {
		t.Errorf("expected default base_url, got %s", cfg.Server.BaseURL)
	}
	if got := cfg.RequestTimeout(); got != DefaultTimeout {
		t.Errorf("expected default timeout, got %s", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NoEnvVarReturnsDefaults(t *testing.T) {
	origConfig := os.Getenv("QLLNV_CONFIG")
	defer os.Setenv("QLLNV_CONFIG", origConfig)
	os.Unsetenv("QLLNV_CONFIG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without QLLNV_CONFIG: %v", err)
	}
	if cfg.Server.BaseURL != Default().Server.BaseURL {
		t.Errorf("expected defaults, got base_url=%s", cfg.Server.BaseURL)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qllnv.yaml")
	content := `
environment: development
server:
  base_url: https://hr.example.com/api
  timeout: 5s
session:
  file: /tmp/qllnv-test-session.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.BaseURL != "https://hr.example.com/api" {
		t.Errorf("base_url = %s", cfg.Server.BaseURL)
	}
	if got := cfg.RequestTimeout(); got != 5*time.Second {
		t.Errorf("timeout = %s, want 5s", got)
	}
	if cfg.Session.File != "/tmp/qllnv-test-session.json" {
		t.Errorf("session.file = %s", cfg.Session.File)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qllnv.yaml")
	content := `
environment: production
server:
  base_url: http://localhost:8080/api
production:
  server:
    base_url: https://hr.internal.example.com/api
    timeout: 30s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.BaseURL != "https://hr.internal.example.com/api" {
		t.Errorf("production override not applied: base_url = %s", cfg.Server.BaseURL)
	}
	if got := cfg.RequestTimeout(); got != 30*time.Second {
		t.Errorf("production timeout not applied: %s", got)
	}
}

func TestVariableExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	path := filepath.Join(t.TempDir(), "qllnv.yaml")
	content := `
session:
  file: ${HOME}/.qllnv/session.json
log:
  output: ${QLLNV_LOG_DIR:-/tmp}/qllnv.log
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Session.File != "/home/tester/.qllnv/session.json" {
		t.Errorf("HOME not expanded: %s", cfg.Session.File)
	}
	if cfg.Log.Output != "/tmp/qllnv.log" {
		t.Errorf("default expansion failed: %s", cfg.Log.Output)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad environment", func(c *Config) { c.Environment = "staging" }, true},
		{"missing base_url", func(c *Config) { c.Server.BaseURL = "" }, true},
		{"bad timeout", func(c *Config) { c.Server.Timeout = "soon" }, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}
