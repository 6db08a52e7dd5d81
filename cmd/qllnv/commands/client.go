// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/tuananhletrong12-max/QLLNV-code-git/cmd/qllnv/cli"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/config"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// commandLogger returns the structured stderr logger scoped to one
// command path. Mutation commands log their outcome through it so
// scripted runs get machine-parseable confirmations.
func commandLogger(command string) *slog.Logger {
	return cli.NewCommandLogger().With("command", command)
}

// newClient loads the configuration and builds the backend client every
// command shares. The session store path comes from the config when set,
// otherwise the well-known default (~/.config/qllnv/session.json).
func newClient() (*hrapi.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sessionPath := cfg.Session.File
	if sessionPath == "" {
		sessionPath = session.FilePath()
	}
	store := session.NewStore(sessionPath)

	return hrapi.New(cfg.Server.BaseURL, cfg.RequestTimeout(), store), cfg, nil
}
