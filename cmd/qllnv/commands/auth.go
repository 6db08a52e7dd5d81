// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tuananhletrong12-max/QLLNV-code-git/cmd/qllnv/cli"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// loginCommand authenticates against the HR backend and saves the
// session locally. Subsequent commands and the TUI pick the session up
// transparently, like SSH keys.
func loginCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and save the session locally",
		Description: `Log in to the HR backend and save the session locally.

After login, commands like "qllnv salary" and the TUI use the saved
session transparently, no flags needed. The session file is stored at
~/.config/qllnv/session.json (or $QLLNV_SESSION_FILE if set, or
$XDG_CONFIG_HOME/qllnv/session.json). The file is written with mode
0600 (owner-only read/write) since it contains the access token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "qllnv login <username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "qllnv login nguyenvana",
			},
			{
				Description: "Log in with password from file",
				Command:     "qllnv login nguyenvana --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVar(&passwordFile, "password-file", "",
				"path to file containing password, or - to prompt interactively (default: prompt)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("username is required\n\nUsage: qllnv login <username> [flags]")
			}
			username := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			password, err := readLoginPassword(passwordFile, "Password: ")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}

			result, err := client.Login(context.Background(), username, password)
			if err != nil {
				return err
			}

			identity := username
			if result.Employee != nil {
				identity = result.Employee.Name
			}
			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", identity, result.Role)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", client.Store().Path())
			return nil
		},
	}
}

// logoutCommand ends the session. The local session file is cleared
// even when the backend is unreachable.
func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "End the session and clear the local credentials",
		Usage:   "qllnv logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			if !client.Store().IsAuthenticated() {
				fmt.Fprintln(os.Stderr, "Not logged in.")
				return nil
			}
			if err := client.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}

// whoamiResult is the JSON shape of "qllnv whoami --json".
type whoamiResult struct {
	Role     session.Role    `json:"role"`
	Employee *hrapi.Employee `json:"employee,omitempty"`
}

// whoamiCommand prints the stored session's identity. For the user role
// it fetches the profile so the output names a person, not just a role.
func whoamiCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the logged-in identity",
		Usage:   "qllnv whoami [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			store := client.Store()
			if !store.IsAuthenticated() {
				return fmt.Errorf("not logged in (run \"qllnv login\")")
			}

			result := whoamiResult{Role: store.Role()}
			if store.Role() == session.RoleUser {
				profile, err := client.Profile(context.Background())
				if err != nil {
					return err
				}
				result.Employee = profile
			}

			if done, err := output.EmitJSON(result); done {
				return err
			}

			if result.Employee != nil {
				fmt.Printf("%s (%s) — %s, %s\n", result.Employee.Name,
					result.Employee.EmployeeCode, result.Employee.Position,
					result.Employee.Department)
			}
			fmt.Printf("role: %s\n", result.Role)
			return nil
		},
	}
}

// passwdCommand changes the password interactively. The local rules
// (length, confirmation, differs from current) run before any request.
func passwdCommand() *cli.Command {
	return &cli.Command{
		Name:    "passwd",
		Summary: "Change the account password",
		Description: `Change the logged-in account's password.

Prompts for the current password, the new password, and a confirmation.
The new password must be at least 8 characters and differ from the
current one; violations are reported before anything is sent to the
backend.`,
		Usage: "qllnv passwd",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			if !client.Store().IsAuthenticated() {
				return fmt.Errorf("not logged in (run \"qllnv login\")")
			}

			current, err := promptPassword("Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := promptPassword("New password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm new password: ")
			if err != nil {
				return err
			}

			if err := hrapi.ValidatePasswordChange(current, newPassword, confirm); err != nil {
				return err
			}
			if err := client.ChangePassword(context.Background(), current, newPassword, confirm); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Password changed.")
			return nil
		},
	}
}
