// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassword reads a password from the terminal with echo disabled.
// The prompt goes to stderr so stdout stays clean for command output.
func promptPassword(prompt string) (string, error) {
	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", fmt.Errorf("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, prompt)
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(passwordBytes), nil
}

// readPasswordFile reads a password from a file path. Strips trailing
// newlines (common with echo/printf pipelines).
func readPasswordFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	password := strings.TrimRight(string(data), "\r\n")
	if password == "" {
		return "", fmt.Errorf("file %s is empty (after stripping trailing newlines)", path)
	}
	return password, nil
}

// readLoginPassword resolves the password for login and passwd. If
// passwordFile is empty or "-", prompts interactively. Otherwise reads
// from the file path.
func readLoginPassword(passwordFile, prompt string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		return readPasswordFile(passwordFile)
	}
	return promptPassword(prompt)
}
