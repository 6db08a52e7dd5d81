// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// Every fetch result carries the generation counter captured when the
// command was issued. Update compares it with the model's current
// generation and drops mismatches: a response that raced a logout or a
// re-login must not land in the new phase's view.

// sessionLoadedMsg delivers the startup session file read.
type sessionLoadedMsg struct {
	authenticated bool
	role          session.Role
}

// loginResultMsg delivers the outcome of a login attempt.
type loginResultMsg struct {
	generation int
	result     *hrapi.LoginResult
	err        error
}

// logoutFinishedMsg signals the logout call (best-effort server side,
// unconditional local clear) has completed.
type logoutFinishedMsg struct{}

type profileLoadedMsg struct {
	generation int
	profile    *hrapi.Employee
	err        error
}

type salaryLoadedMsg struct {
	generation int
	salary     *hrapi.Salary
	err        error
}

type paymentsLoadedMsg struct {
	generation int
	payments   []hrapi.PaymentRecord
	err        error
}

type notificationsLoadedMsg struct {
	generation    int
	notifications []hrapi.Notification
	err           error
}

type passwordChangedMsg struct {
	generation int
	err        error
}

// markReadResultMsg confirms or rejects an optimistic single-flip.
type markReadResultMsg struct {
	generation     int
	notificationID string
	err            error
}

// markAllReadResultMsg confirms or rejects an optimistic mark-all.
type markAllReadResultMsg struct {
	generation int
	err        error
}

type statsLoadedMsg struct {
	generation int
	stats      *hrapi.DashboardStats
	err        error
}

// chartKind identifies which dashboard series a chartLoadedMsg carries.
type chartKind int

const (
	chartSalaryByDepartment chartKind = iota
	chartEmployeesByDepartment
	chartMonthlyPayroll
)

type chartLoadedMsg struct {
	generation int
	kind       chartKind
	series     []hrapi.ChartData
	err        error
}

// employeesLoadedMsg carries the paired employees+departments load for
// the admin employees tab. The two datasets always arrive together so
// the table can resolve department names.
type employeesLoadedMsg struct {
	generation  int
	employees   []hrapi.AdminEmployee
	departments []hrapi.Department
	err         error
}

type departmentsLoadedMsg struct {
	generation  int
	departments []hrapi.Department
	err         error
}

type payrollLoadedMsg struct {
	generation int
	entries    []hrapi.PayrollEntry
	err        error
}

// mutationDoneMsg delivers the outcome of an admin create/update/delete.
// On success the owning tab re-fetches its list.
type mutationDoneMsg struct {
	generation int
	tab        adminTab
	recordID   string
	removed    bool
	err        error
}

// noticeFadeMsg clears the status-bar notice after a delay.
type noticeFadeMsg struct{}

// heatTickMsg drives the row-glow decay animation.
type heatTickMsg struct{}

// noticeFadeDelay is how long status-bar notices stay visible.
const noticeFadeDelay = 4 * time.Second

func noticeFadeCmd() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

func heatTickCmd() tea.Cmd {
	return tea.Tick(heatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

const heatTickInterval = 100 * time.Millisecond

// loadSessionCmd reads the session file once at startup.
func loadSessionCmd(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		return sessionLoadedMsg{
			authenticated: store.IsAuthenticated(),
			role:          store.Role(),
		}
	}
}

func (model Model) loginCmd(username, password string) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		result, err := client.Login(context.Background(), username, password)
		return loginResultMsg{generation: generation, result: result, err: err}
	}
}

func (model Model) logoutCmd() tea.Cmd {
	client := model.client
	return func() tea.Msg {
		// Errors are already confined to the local session file; the
		// transport side is best-effort inside Logout itself.
		client.Logout(context.Background())
		return logoutFinishedMsg{}
	}
}

func (model Model) fetchProfileCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		profile, err := client.Profile(context.Background())
		return profileLoadedMsg{generation: generation, profile: profile, err: err}
	}
}

func (model Model) fetchSalaryCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		salary, err := client.SalaryInfo(context.Background())
		return salaryLoadedMsg{generation: generation, salary: salary, err: err}
	}
}

func (model Model) fetchPaymentsCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		payments, err := client.Payments(context.Background())
		return paymentsLoadedMsg{generation: generation, payments: payments, err: err}
	}
}

func (model Model) fetchNotificationsCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		notifications, err := client.Notifications(context.Background())
		return notificationsLoadedMsg{generation: generation, notifications: notifications, err: err}
	}
}

func (model Model) changePasswordCmd(current, newPassword, confirm string) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		err := client.ChangePassword(context.Background(), current, newPassword, confirm)
		return passwordChangedMsg{generation: generation, err: err}
	}
}

func (model Model) markReadCmd(notificationID string) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		err := client.MarkNotificationRead(context.Background(), notificationID)
		return markReadResultMsg{generation: generation, notificationID: notificationID, err: err}
	}
}

func (model Model) markAllReadCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		err := client.MarkAllNotificationsRead(context.Background())
		return markAllReadResultMsg{generation: generation, err: err}
	}
}

func (model Model) fetchStatsCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		stats, err := client.Stats(context.Background())
		return statsLoadedMsg{generation: generation, stats: stats, err: err}
	}
}

func (model Model) fetchChartCmd(kind chartKind) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		var series []hrapi.ChartData
		var err error
		switch kind {
		case chartSalaryByDepartment:
			series, err = client.SalaryByDepartment(context.Background())
		case chartEmployeesByDepartment:
			series, err = client.EmployeesByDepartment(context.Background())
		case chartMonthlyPayroll:
			series, err = client.MonthlyPayroll(context.Background())
		}
		return chartLoadedMsg{generation: generation, kind: kind, series: series, err: err}
	}
}

// fetchEmployeesCmd loads employees and departments together. The
// employees table needs department names for its rows and the employee
// form needs the department list for its picker, so the two datasets
// load as a unit: one command, one message, one error.
func (model Model) fetchEmployeesCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		employees, err := client.Employees(context.Background())
		if err != nil {
			return employeesLoadedMsg{generation: generation, err: err}
		}
		departments, err := client.Departments(context.Background())
		if err != nil {
			return employeesLoadedMsg{generation: generation, err: err}
		}
		return employeesLoadedMsg{
			generation:  generation,
			employees:   employees,
			departments: departments,
		}
	}
}

func (model Model) fetchDepartmentsCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		departments, err := client.Departments(context.Background())
		return departmentsLoadedMsg{generation: generation, departments: departments, err: err}
	}
}

func (model Model) fetchPayrollCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		entries, err := client.Payroll(context.Background())
		return payrollLoadedMsg{generation: generation, entries: entries, err: err}
	}
}
