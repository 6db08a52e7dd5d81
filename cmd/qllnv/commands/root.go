// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete qllnv CLI command tree.
package commands

import (
	"fmt"

	"github.com/tuananhletrong12-max/QLLNV-code-git/cmd/qllnv/cli"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/version"
)

// Root builds and returns the complete qllnv CLI command tree. Invoked
// with no arguments, qllnv launches the interactive TUI.
func Root() *cli.Command {
	return &cli.Command{
		Name: "qllnv",
		Description: `QLLNV: employee salary management client.

Employee self-service (profile, salary, payment history, notifications)
and the administrator console (employees, departments, payroll,
dashboard), as a terminal UI or as scriptable subcommands.

The global --config <path> flag (or the QLLNV_CONFIG environment
variable) names the configuration file. Without either, built-in
defaults apply.`,
		Subcommands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			passwdCommand(),
			uiCommand(),
			profileCommand(),
			salaryCommand(),
			paymentsCommand(),
			notificationsCommand(),
			adminCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("qllnv %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Authenticate (saves session locally)",
				Command:     "qllnv login nguyenvana",
			},
			{
				Description: "Open the interactive UI (also the default with no arguments)",
				Command:     "qllnv ui",
			},
			{
				Description: "Show this month's salary breakdown",
				Command:     "qllnv salary",
			},
			{
				Description: "List notifications and mark everything read",
				Command:     "qllnv notifications --mark-all-read",
			},
			{
				Description: "Admin: list employees as JSON",
				Command:     "qllnv admin employees list --json",
			},
			{
				Description: "Admin: create a payroll entry",
				Command:     "qllnv admin payroll create --employee e12 --month 03 --year 2026 --base 12000000",
			},
		},
		// With no arguments the binary behaves like the interactive
		// application it primarily is.
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s\n\nRun 'qllnv --help' for usage.", args[0])
			}
			return runUI()
		},
	}
}
