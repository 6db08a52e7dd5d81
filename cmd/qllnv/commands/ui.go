// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuananhletrong12-max/QLLNV-code-git/cmd/qllnv/cli"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrui"
)

// uiCommand launches the interactive terminal UI. This is also the
// default action when qllnv is invoked with no arguments.
func uiCommand() *cli.Command {
	return &cli.Command{
		Name:    "ui",
		Summary: "Launch the interactive terminal UI",
		Description: `Launch the interactive terminal UI.

Shows the login screen when no session is saved, then routes to the
employee self-service view or the administrator console depending on
the role the backend declared at login.`,
		Usage: "qllnv ui",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runUI()
		},
	}
}

// runUI builds the backend client and runs the TUI program. When the
// config names a log file, bubbletea's debug log goes there; the TUI
// never logs to the terminal it is drawing on.
func runUI() error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	if cfg.Log.Output != "" {
		logFile, err := tea.LogToFile(cfg.Log.Output, "qllnv")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
	}

	program := tea.NewProgram(hrui.NewModel(client),
		tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}
