// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the qllnv client configuration from YAML.
//
// The config file is optional: with no QLLNV_CONFIG variable and no
// --config flag the client runs with built-in defaults suitable for a
// local development backend. When a file is given, its values merge over
// the defaults, then the section matching the configured environment
// (development or production) is applied, then ${VAR} patterns in path
// fields are expanded.
package config
