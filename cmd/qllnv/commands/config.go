// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/config"
)

// configPath overrides the QLLNV_CONFIG lookup when the user passes
// --config. Set once before command dispatch.
var configPath string

// ExtractConfigFlag strips the global --config flag from the argument
// list before command dispatch, recording its value for loadConfig.
// Both "--config path" and "--config=path" forms are accepted; every
// other argument passes through unchanged.
func ExtractConfigFlag(args []string) []string {
	var rest []string
	for index := 0; index < len(args); index++ {
		argument := args[index]
		switch {
		case argument == "--config":
			if index+1 < len(args) {
				configPath = args[index+1]
				index++
			}
		case strings.HasPrefix(argument, "--config="):
			configPath = strings.TrimPrefix(argument, "--config=")
		default:
			rest = append(rest, argument)
		}
	}
	return rest
}

// loadConfig loads the configuration from the --config flag when given,
// otherwise from the QLLNV_CONFIG environment variable or defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}
