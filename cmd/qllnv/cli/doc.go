// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the qllnv binary:
// a nested [Command] tree with pflag flag parsing, structured help
// output, typo suggestions for unknown commands and flags, --json
// output support, and exit-code signaling via [ExitError].
package cli
