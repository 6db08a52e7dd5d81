// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/tuananhletrong12-max/QLLNV-code-git/cmd/qllnv/cli"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrui"
)

// adminCommand groups the administrator operations: dashboard,
// departments, employees, and payroll. The backend enforces the admin
// role; these commands just surface its rejections.
func adminCommand() *cli.Command {
	return &cli.Command{
		Name:    "admin",
		Summary: "Administrator operations",
		Description: `Administrator operations: dashboard statistics and CRUD for
departments, employees, and payroll entries.

Requires a session with the admin role. The backend rejects these
calls for regular employee sessions.`,
		Subcommands: []*cli.Command{
			dashboardCommand(),
			departmentsCommand(),
			adminEmployeesCommand(),
			payrollCommand(),
		},
	}
}

// dashboardData aggregates the dashboard fetches for --json output.
type dashboardData struct {
	Stats                 *hrapi.DashboardStats `json:"stats"`
	SalaryByDepartment    []hrapi.ChartData     `json:"salaryByDepartment"`
	EmployeesByDepartment []hrapi.ChartData     `json:"employeesByDepartment"`
	MonthlyPayroll        []hrapi.ChartData     `json:"monthlyPayroll"`
}

// dashboardCommand fetches the headline statistics and the three chart
// series in parallel and prints a summary.
func dashboardCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Show dashboard statistics",
		Usage:   "qllnv admin dashboard [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			var data dashboardData
			group, ctx := errgroup.WithContext(context.Background())
			group.Go(func() error {
				var err error
				data.Stats, err = client.Stats(ctx)
				return err
			})
			group.Go(func() error {
				var err error
				data.SalaryByDepartment, err = client.SalaryByDepartment(ctx)
				return err
			})
			group.Go(func() error {
				var err error
				data.EmployeesByDepartment, err = client.EmployeesByDepartment(ctx)
				return err
			})
			group.Go(func() error {
				var err error
				data.MonthlyPayroll, err = client.MonthlyPayroll(ctx)
				return err
			})
			if err := group.Wait(); err != nil {
				return err
			}

			if done, err := output.EmitJSON(data); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "Employees\t%d\t%+.1f%% this month\n",
				data.Stats.TotalEmployees, data.Stats.MonthlyChange.Employees)
			fmt.Fprintf(tw, "Departments\t%d\t\n", data.Stats.TotalDepartments)
			fmt.Fprintf(tw, "Monthly payroll\t%s\t%+.1f%% this month\n",
				hrui.FormatVND(data.Stats.TotalPayroll), data.Stats.MonthlyChange.Payroll)
			fmt.Fprintf(tw, "Average salary\t%s\t\n", hrui.FormatVND(data.Stats.AverageSalary))
			if err := tw.Flush(); err != nil {
				return err
			}

			printSeries := func(title string, series []hrapi.ChartData, money bool) {
				fmt.Printf("\n%s\n", title)
				tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
				for _, point := range series {
					if money {
						fmt.Fprintf(tw, "  %s\t%s\n", point.Name, hrui.FormatVND(point.Value))
					} else {
						fmt.Fprintf(tw, "  %s\t%.0f\n", point.Name, point.Value)
					}
				}
				tw.Flush()
			}
			printSeries("Salary by department", data.SalaryByDepartment, true)
			printSeries("Employees by department", data.EmployeesByDepartment, false)
			printSeries("Payroll by month", data.MonthlyPayroll, true)
			return nil
		},
	}
}

// departmentsCommand is the department CRUD subtree.
func departmentsCommand() *cli.Command {
	return &cli.Command{
		Name:    "departments",
		Summary: "Manage departments",
		Subcommands: []*cli.Command{
			departmentsListCommand(),
			departmentsGetCommand(),
			departmentsCreateCommand(),
			departmentsUpdateCommand(),
			departmentsDeleteCommand(),
		},
	}
}

func departmentsListCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "list",
		Summary: "List all departments",
		Usage:   "qllnv admin departments list [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			departments, err := client.Departments(context.Background())
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(departments); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tCODE\tNAME\tMANAGER\tEMPLOYEES\tCREATED")
			for _, department := range departments {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
					department.ID, department.Code, department.Name,
					department.Manager, department.EmployeeCount,
					department.CreatedDate)
			}
			return tw.Flush()
		},
	}
}

func departmentsGetCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "get",
		Summary: "Show one department",
		Usage:   "qllnv admin departments get <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("get", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin departments get <id>")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			department, err := client.Department(context.Background(), id)
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(department); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "ID\t%s\n", department.ID)
			fmt.Fprintf(tw, "Code\t%s\n", department.Code)
			fmt.Fprintf(tw, "Name\t%s\n", department.Name)
			fmt.Fprintf(tw, "Manager\t%s\n", department.Manager)
			fmt.Fprintf(tw, "Employees\t%d\n", department.EmployeeCount)
			fmt.Fprintf(tw, "Description\t%s\n", department.Description)
			fmt.Fprintf(tw, "Created\t%s\n", department.CreatedDate)
			return tw.Flush()
		},
	}
}

// departmentFlags binds the mutable department fields to a flag set.
func departmentFlags(name string, request *hrapi.DepartmentRequest) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&request.Code, "code", "", "department code (e.g., IT)")
	flags.StringVar(&request.Name, "name", "", "department name")
	flags.StringVar(&request.Manager, "manager", "", "manager name")
	flags.StringVar(&request.Description, "description", "", "optional description")
	return flags
}

func departmentsCreateCommand() *cli.Command {
	var request hrapi.DepartmentRequest

	return &cli.Command{
		Name:    "create",
		Summary: "Create a department",
		Usage:   "qllnv admin departments create --code <code> --name <name> --manager <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create an IT department",
				Command:     "qllnv admin departments create --code IT --name 'Công nghệ thông tin' --manager 'Trần Bình'",
			},
		},
		Flags: func() *pflag.FlagSet { return departmentFlags("create", &request) },
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			department, err := client.CreateDepartment(context.Background(), request)
			if err != nil {
				return err
			}
			commandLogger("admin/departments").Info("created department",
				"id", department.ID, "code", department.Code)
			return nil
		},
	}
}

func departmentsUpdateCommand() *cli.Command {
	var (
		request hrapi.DepartmentRequest
		flagSet *pflag.FlagSet
	)

	return &cli.Command{
		Name:    "update",
		Summary: "Update a department",
		Description: `Update a department. Only the fields named by flags change;
everything else keeps the stored value.`,
		Usage: "qllnv admin departments update <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet = departmentFlags("update", &request)
			return flagSet
		},
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin departments update <id> [flags]")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			existing, err := client.Department(ctx, id)
			if err != nil {
				return err
			}
			merged := hrapi.DepartmentRequest{
				Code:        existing.Code,
				Name:        existing.Name,
				Manager:     existing.Manager,
				Description: existing.Description,
			}
			if flagSet.Changed("code") {
				merged.Code = request.Code
			}
			if flagSet.Changed("name") {
				merged.Name = request.Name
			}
			if flagSet.Changed("manager") {
				merged.Manager = request.Manager
			}
			if flagSet.Changed("description") {
				merged.Description = request.Description
			}

			department, err := client.UpdateDepartment(ctx, id, merged)
			if err != nil {
				return err
			}
			commandLogger("admin/departments").Info("updated department",
				"id", department.ID, "code", department.Code)
			return nil
		},
	}
}

func departmentsDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a department",
		Usage:   "qllnv admin departments delete <id>",
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin departments delete <id>")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteDepartment(context.Background(), id); err != nil {
				return err
			}
			commandLogger("admin/departments").Info("deleted department", "id", id)
			return nil
		},
	}
}

// adminEmployeesCommand is the employee CRUD subtree.
func adminEmployeesCommand() *cli.Command {
	return &cli.Command{
		Name:    "employees",
		Summary: "Manage employees",
		Subcommands: []*cli.Command{
			employeesListCommand(),
			employeesGetCommand(),
			employeesCreateCommand(),
			employeesUpdateCommand(),
			employeesDeleteCommand(),
		},
	}
}

func employeesListCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "list",
		Summary: "List all employees",
		Usage:   "qllnv admin employees list [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			employees, err := client.Employees(context.Background())
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(employees); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tCODE\tNAME\tPOSITION\tDEPARTMENT\tSALARY\tSTATUS")
			for _, employee := range employees {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					employee.ID, employee.EmployeeCode, employee.Name,
					employee.Position, employee.Department,
					hrui.FormatVND(employee.Salary), employee.Status)
			}
			return tw.Flush()
		},
	}
}

func employeesGetCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "get",
		Summary: "Show one employee",
		Usage:   "qllnv admin employees get <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("get", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin employees get <id>")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			employee, err := client.EmployeeByID(context.Background(), id)
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(employee); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "ID\t%s\n", employee.ID)
			fmt.Fprintf(tw, "Code\t%s\n", employee.EmployeeCode)
			fmt.Fprintf(tw, "Name\t%s\n", employee.Name)
			fmt.Fprintf(tw, "Email\t%s\n", employee.Email)
			fmt.Fprintf(tw, "Phone\t%s\n", employee.Phone)
			fmt.Fprintf(tw, "Position\t%s\n", employee.Position)
			fmt.Fprintf(tw, "Department\t%s\n", employee.Department)
			fmt.Fprintf(tw, "Start date\t%s\n", employee.StartDate)
			fmt.Fprintf(tw, "Salary\t%s\n", hrui.FormatVND(employee.Salary))
			fmt.Fprintf(tw, "Status\t%s\n", employee.Status)
			return tw.Flush()
		},
	}
}

// employeeFlags binds the mutable employee fields to a flag set.
func employeeFlags(name string, request *hrapi.EmployeeRequest, status *string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&request.Name, "name", "", "full name")
	flags.StringVar(&request.Email, "email", "", "email address")
	flags.StringVar(&request.Phone, "phone", "", "phone number")
	flags.StringVar(&request.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	flags.StringVar(&request.Address, "address", "", "home address")
	flags.StringVar(&request.Position, "position", "", "job title")
	flags.StringVar(&request.Department, "department", "", "department name")
	flags.StringVar(&request.DepartmentID, "department-id", "", "department id")
	flags.StringVar(&request.StartDate, "start-date", "", "employment start date (YYYY-MM-DD)")
	flags.Float64Var(&request.Salary, "salary", 0, "base salary in VND")
	flags.StringVar(status, "status", string(hrapi.EmployeeActive), "active, inactive, or onleave")
	return flags
}

func employeesCreateCommand() *cli.Command {
	var (
		request hrapi.EmployeeRequest
		status  string
	)

	return &cli.Command{
		Name:    "create",
		Summary: "Create an employee",
		Usage:   "qllnv admin employees create --name <name> --email <email> [flags]",
		Flags:   func() *pflag.FlagSet { return employeeFlags("create", &request, &status) },
		Run: func(args []string) error {
			request.Status = hrapi.EmployeeStatus(status)

			client, _, err := newClient()
			if err != nil {
				return err
			}
			employee, err := client.CreateEmployee(context.Background(), request)
			if err != nil {
				return err
			}
			commandLogger("admin/employees").Info("created employee",
				"id", employee.ID, "code", employee.EmployeeCode)
			return nil
		},
	}
}

func employeesUpdateCommand() *cli.Command {
	var (
		request hrapi.EmployeeRequest
		status  string
		flagSet *pflag.FlagSet
	)

	return &cli.Command{
		Name:    "update",
		Summary: "Update an employee",
		Description: `Update an employee. Only the fields named by flags change;
everything else keeps the stored value.`,
		Usage: "qllnv admin employees update <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet = employeeFlags("update", &request, &status)
			return flagSet
		},
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin employees update <id> [flags]")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			existing, err := client.EmployeeByID(ctx, id)
			if err != nil {
				return err
			}
			merged := hrapi.EmployeeRequest{
				Name:         existing.Name,
				Email:        existing.Email,
				Phone:        existing.Phone,
				DateOfBirth:  existing.DateOfBirth,
				Address:      existing.Address,
				Position:     existing.Position,
				Department:   existing.Department,
				DepartmentID: existing.DepartmentID,
				StartDate:    existing.StartDate,
				Salary:       existing.Salary,
				Status:       existing.Status,
			}
			if flagSet.Changed("name") {
				merged.Name = request.Name
			}
			if flagSet.Changed("email") {
				merged.Email = request.Email
			}
			if flagSet.Changed("phone") {
				merged.Phone = request.Phone
			}
			if flagSet.Changed("date-of-birth") {
				merged.DateOfBirth = request.DateOfBirth
			}
			if flagSet.Changed("address") {
				merged.Address = request.Address
			}
			if flagSet.Changed("position") {
				merged.Position = request.Position
			}
			if flagSet.Changed("department") {
				merged.Department = request.Department
			}
			if flagSet.Changed("department-id") {
				merged.DepartmentID = request.DepartmentID
			}
			if flagSet.Changed("start-date") {
				merged.StartDate = request.StartDate
			}
			if flagSet.Changed("salary") {
				merged.Salary = request.Salary
			}
			if flagSet.Changed("status") {
				merged.Status = hrapi.EmployeeStatus(status)
			}

			employee, err := client.UpdateEmployee(ctx, id, merged)
			if err != nil {
				return err
			}
			commandLogger("admin/employees").Info("updated employee",
				"id", employee.ID, "code", employee.EmployeeCode)
			return nil
		},
	}
}

func employeesDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Summary: "Delete an employee",
		Usage:   "qllnv admin employees delete <id>",
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin employees delete <id>")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteEmployee(context.Background(), id); err != nil {
				return err
			}
			commandLogger("admin/employees").Info("deleted employee", "id", id)
			return nil
		},
	}
}

// payrollCommand is the payroll CRUD subtree.
func payrollCommand() *cli.Command {
	return &cli.Command{
		Name:    "payroll",
		Summary: "Manage payroll entries",
		Subcommands: []*cli.Command{
			payrollListCommand(),
			payrollGetCommand(),
			payrollCreateCommand(),
			payrollUpdateCommand(),
			payrollDeleteCommand(),
		},
	}
}

func payrollListCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "list",
		Summary: "List all payroll entries",
		Usage:   "qllnv admin payroll list [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			entries, err := client.Payroll(context.Background())
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(entries); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tCODE\tNAME\tMONTH\tNET\tSTATUS")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					entry.ID, entry.EmployeeCode, entry.EmployeeName,
					hrui.FormatMonth(entry.Month, entry.Year),
					hrui.FormatVND(entry.Net()), entry.Status)
			}
			return tw.Flush()
		},
	}
}

func payrollGetCommand() *cli.Command {
	var output cli.JSONOutput

	return &cli.Command{
		Name:    "get",
		Summary: "Show one payroll entry",
		Usage:   "qllnv admin payroll get <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("get", pflag.ContinueOnError)
			output.AddJSONFlag(flags)
			return flags
		},
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin payroll get <id>")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			entry, err := client.PayrollEntryByID(context.Background(), id)
			if err != nil {
				return err
			}

			if done, err := output.EmitJSON(entry); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "ID\t%s\n", entry.ID)
			fmt.Fprintf(tw, "Employee\t%s (%s)\n", entry.EmployeeName, entry.EmployeeCode)
			fmt.Fprintf(tw, "Department\t%s\n", entry.Department)
			fmt.Fprintf(tw, "Month\t%s\n", hrui.FormatMonth(entry.Month, entry.Year))
			fmt.Fprintf(tw, "Base salary\t%s\n", hrui.FormatVND(entry.BaseSalary))
			fmt.Fprintf(tw, "Allowances\t%s\n", hrui.FormatVND(entry.Allowances))
			fmt.Fprintf(tw, "Bonus\t%s\n", hrui.FormatVND(entry.Bonus))
			fmt.Fprintf(tw, "Deductions\t%s\n", hrui.FormatVND(entry.Deductions))
			fmt.Fprintf(tw, "Net\t%s\n", hrui.FormatVND(entry.Net()))
			fmt.Fprintf(tw, "Status\t%s\n", entry.Status)
			fmt.Fprintf(tw, "Created\t%s\n", entry.CreatedDate)
			fmt.Fprintf(tw, "Paid\t%s\n", entry.PaidDate)
			return tw.Flush()
		},
	}
}

// payrollFlags binds the mutable payroll fields to a flag set. The
// employee snapshot fields (name, code, department) are derived by the
// create command and carried as-is by update; they are not flags.
func payrollFlags(name string, request *hrapi.PayrollRequest, status *string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&request.Month, "month", "", "pay month (e.g., 03)")
	flags.IntVar(&request.Year, "year", 0, "pay year (e.g., 2026)")
	flags.Float64Var(&request.BaseSalary, "base", 0, "base salary in VND")
	flags.Float64Var(&request.Allowances, "allowances", 0, "allowances in VND")
	flags.Float64Var(&request.Bonus, "bonus", 0, "bonus in VND")
	flags.Float64Var(&request.Deductions, "deductions", 0, "deductions in VND")
	flags.StringVar(status, "status", string(hrapi.PayrollDraft), "draft, approved, or paid")
	return flags
}

func payrollCreateCommand() *cli.Command {
	var (
		request hrapi.PayrollRequest
		status  string
	)

	return &cli.Command{
		Name:    "create",
		Summary: "Create a payroll entry",
		Description: `Create a payroll entry for one employee and month.

The employee's name, code, and department are captured from the
employee record at creation time and stay frozen on the entry. The net
salary is computed from base + allowances + bonus - deductions.`,
		Usage: "qllnv admin payroll create --employee <id> --month <mm> --year <yyyy> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := payrollFlags("create", &request, &status)
			flags.StringVar(&request.EmployeeID, "employee", "", "employee id")
			return flags
		},
		Run: func(args []string) error {
			request.Status = hrapi.PayrollStatus(status)

			client, _, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			// Snapshot the employee identity onto the entry.
			if request.EmployeeID != "" {
				employee, err := client.EmployeeByID(ctx, request.EmployeeID)
				if err != nil {
					return err
				}
				request.EmployeeName = employee.Name
				request.EmployeeCode = employee.EmployeeCode
				request.Department = employee.Department
			}

			entry, err := client.CreatePayrollEntry(ctx, request)
			if err != nil {
				return err
			}
			commandLogger("admin/payroll").Info("created payroll entry",
				"id", entry.ID,
				"month", hrui.FormatMonth(entry.Month, entry.Year),
				"net", hrui.FormatVND(entry.Net()))
			return nil
		},
	}
}

func payrollUpdateCommand() *cli.Command {
	var (
		request hrapi.PayrollRequest
		status  string
		flagSet *pflag.FlagSet
	)

	return &cli.Command{
		Name:    "update",
		Summary: "Update a payroll entry",
		Description: `Update a payroll entry's amounts, month, or status.

Only the fields named by flags change; everything else keeps the stored
value. The employee snapshot (name, code, department) is carried over
from the existing entry unchanged; it never tracks later edits to the
employee record. The net salary is recomputed from the updated
components.`,
		Usage: "qllnv admin payroll update <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet = payrollFlags("update", &request, &status)
			return flagSet
		},
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin payroll update <id> [flags]")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			// Start from the stored entry, then overlay the flags the
			// caller actually set. The employee snapshot always carries
			// over as-is.
			existing, err := client.PayrollEntryByID(ctx, id)
			if err != nil {
				return err
			}
			merged := hrapi.PayrollRequest{
				EmployeeID:   existing.EmployeeID,
				EmployeeName: existing.EmployeeName,
				EmployeeCode: existing.EmployeeCode,
				Department:   existing.Department,
				Month:        existing.Month,
				Year:         existing.Year,
				BaseSalary:   existing.BaseSalary,
				Allowances:   existing.Allowances,
				Bonus:        existing.Bonus,
				Deductions:   existing.Deductions,
				Status:       existing.Status,
			}
			if flagSet.Changed("month") {
				merged.Month = request.Month
			}
			if flagSet.Changed("year") {
				merged.Year = request.Year
			}
			if flagSet.Changed("base") {
				merged.BaseSalary = request.BaseSalary
			}
			if flagSet.Changed("allowances") {
				merged.Allowances = request.Allowances
			}
			if flagSet.Changed("bonus") {
				merged.Bonus = request.Bonus
			}
			if flagSet.Changed("deductions") {
				merged.Deductions = request.Deductions
			}
			if flagSet.Changed("status") {
				merged.Status = hrapi.PayrollStatus(status)
			}

			entry, err := client.UpdatePayrollEntry(ctx, id, merged)
			if err != nil {
				return err
			}
			commandLogger("admin/payroll").Info("updated payroll entry",
				"id", entry.ID, "net", hrui.FormatVND(entry.Net()))
			return nil
		},
	}
}

func payrollDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a payroll entry",
		Usage:   "qllnv admin payroll delete <id>",
		Run: func(args []string) error {
			id, err := singleIDArgument(args, "qllnv admin payroll delete <id>")
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeletePayrollEntry(context.Background(), id); err != nil {
				return err
			}
			commandLogger("admin/payroll").Info("deleted payroll entry", "id", id)
			return nil
		},
	}
}

// singleIDArgument extracts the one required positional id argument.
func singleIDArgument(args []string, usage string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("id is required\n\nUsage: %s", usage)
	}
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected argument: %s", args[1])
	}
	return args[0], nil
}
