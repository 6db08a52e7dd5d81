// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Command qllnv is the terminal client for the QLLNV employee salary
// management system. With no arguments it launches the interactive
// TUI; subcommands expose the same operations for scripting.
package main

import (
	"fmt"
	"os"

	"github.com/tuananhletrong12-max/QLLNV-code-git/cmd/qllnv/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError with
		// the desired exit code. Don't print a redundant "error:" line
		// for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --config is global: it applies to every subcommand, so it is
	// peeled off before dispatch.
	args := commands.ExtractConfigFlag(os.Args[1:])
	return commands.Root().Execute(args)
}
