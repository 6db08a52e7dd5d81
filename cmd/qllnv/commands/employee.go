// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/tuananhletrong12-max/QLLNV-code-git/cmd/qllnv/cli"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrui"
)

// profileCommand prints the logged-in employee's profile.
func profileCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "profile",
		Summary: "Show your profile",
		Usage:   "qllnv profile [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("profile", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			profile, err := client.Profile(context.Background())
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(profile); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "Name\t%s\n", profile.Name)
			fmt.Fprintf(tw, "Code\t%s\n", profile.EmployeeCode)
			fmt.Fprintf(tw, "Email\t%s\n", profile.Email)
			fmt.Fprintf(tw, "Phone\t%s\n", profile.Phone)
			fmt.Fprintf(tw, "Date of birth\t%s\n", profile.DateOfBirth)
			fmt.Fprintf(tw, "Address\t%s\n", profile.Address)
			fmt.Fprintf(tw, "Position\t%s\n", profile.Position)
			fmt.Fprintf(tw, "Department\t%s\n", profile.Department)
			fmt.Fprintf(tw, "Start date\t%s\n", profile.StartDate)
			return tw.Flush()
		},
	}
}

// salaryCommand prints the current salary breakdown. The net line is
// always computed from the components.
func salaryCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "salary",
		Summary: "Show your current salary breakdown",
		Usage:   "qllnv salary [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("salary", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			salary, err := client.SalaryInfo(context.Background())
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(salary); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "Base salary\t%s\n", hrui.FormatVND(salary.BaseSalary))
			fmt.Fprintf(tw, "Allowances\t%s\n", hrui.FormatVND(salary.Allowances))
			fmt.Fprintf(tw, "Bonus\t%s\n", hrui.FormatVND(salary.Bonus))
			fmt.Fprintf(tw, "Deductions\t%s\n", hrui.FormatVND(salary.Deductions))
			fmt.Fprintf(tw, "Net\t%s\n", hrui.FormatVND(salary.Net()))
			return tw.Flush()
		},
	}
}

// paymentsCommand prints the payment history in the order the backend
// delivered it.
func paymentsCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "payments",
		Summary: "Show your payment history",
		Usage:   "qllnv payments [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("payments", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			records, err := client.Payments(context.Background())
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(records); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "MONTH\tNET\tPAID\tSTATUS")
			for _, record := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					hrui.FormatMonth(record.Month, record.Year),
					hrui.FormatVND(record.Net()),
					record.PaidDate,
					record.Status)
			}
			return tw.Flush()
		},
	}
}

// notificationsCommand lists notifications and optionally marks them
// read. With --exit-unread the exit code reports whether unread
// notifications exist, for scripting.
func notificationsCommand() *cli.Command {
	var (
		output     cli.JSONOutput
		markRead   string
		markAll    bool
		exitUnread bool
	)

	return &cli.Command{
		Name:    "notifications",
		Summary: "List notifications, optionally marking them read",
		Usage:   "qllnv notifications [flags]",
		Examples: []cli.Example{
			{
				Description: "List notifications",
				Command:     "qllnv notifications",
			},
			{
				Description: "Mark one notification read",
				Command:     "qllnv notifications --mark-read n42",
			},
			{
				Description: "Mark everything read",
				Command:     "qllnv notifications --mark-all-read",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("notifications", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			flags.StringVar(&markRead, "mark-read", "", "mark the notification with this id as read")
			flags.BoolVar(&markAll, "mark-all-read", false, "mark every notification as read")
			flags.BoolVar(&exitUnread, "exit-unread", false, "exit 1 when unread notifications remain")
			return flags
		},
		Run: func(args []string) error {
			if markRead != "" && markAll {
				return fmt.Errorf("--mark-read and --mark-all-read are mutually exclusive")
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if markRead != "" {
				if err := client.MarkNotificationRead(ctx, markRead); err != nil {
					return err
				}
			}
			if markAll {
				if err := client.MarkAllNotificationsRead(ctx); err != nil {
					return err
				}
			}

			notifications, err := client.Notifications(ctx)
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(notifications); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tTYPE\tREAD\tTITLE")
			for _, notification := range notifications {
				read := ""
				if notification.IsRead {
					read = "✓"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					notification.ID,
					notification.Date,
					notification.Type,
					read,
					notification.Title)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if exitUnread && hrapi.UnreadCount(notifications) > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
