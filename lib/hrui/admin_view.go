// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// viewAdmin renders the admin console: tab bar, active tab body, status
// bar, and any overlay (form or delete confirmation) spliced on top.
func (model Model) viewAdmin() string {
	header := model.renderTabBar(adminTabLabels, int(model.admin.tab), "admin")

	var body string
	help := "1-4 tabs · r refresh · C-l log out · q quit"
	switch model.admin.tab {
	case adminTabDashboard:
		body = model.viewDashboard()
	case adminTabEmployees:
		body = model.viewEmployeesTab()
		help = "n new · e edit · x delete · / filter · r refresh"
	case adminTabDepartments:
		body = model.viewDepartmentsTab()
		help = "n new · e edit · x delete · / filter · r refresh"
	case adminTabPayroll:
		body = model.viewPayrollTab()
		help = "n new · e edit · x delete · / filter · r refresh"
	}

	content := lipgloss.NewStyle().
		Width(model.width).
		Height(model.height - 2).
		Render(body)

	view := header + "\n" + content + "\n" + model.renderStatusBar(help)

	if model.admin.form != nil {
		lines, anchorX, anchorY := model.admin.form.View(model.theme, model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
		if dropdown := model.admin.form.dropdown; dropdown != nil {
			// Anchors are recorded for mouse hit-testing against the
			// rendered frame.
			dropdown.AnchorX, dropdown.AnchorY = model.admin.form.dropdownPosition(anchorX, anchorY)
			view = tui.SpliceOverlay(view, dropdown.Render(model.theme), dropdown.AnchorX, dropdown.AnchorY)
		}
	}
	if model.admin.confirm != nil {
		lines, anchorX, anchorY := model.admin.confirm.View(model.theme, model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	return view
}

// viewDashboard renders the headline counters and the three chart
// series.
func (model Model) viewDashboard() string {
	admin := &model.admin

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 2).
		MarginRight(1)
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.SeverityError)
	changeUp := lipgloss.NewStyle().Foreground(model.theme.StatusPaid)
	changeDown := lipgloss.NewStyle().Foreground(model.theme.SeverityError)

	var cards string
	switch {
	case admin.statsErr != "":
		cards = " " + errorStyle.Render(admin.statsErr)
	case admin.stats == nil:
		cards = " Loading…"
	default:
		stats := admin.stats
		change := func(delta float64) string {
			text := fmt.Sprintf("%+.1f%% this month", delta)
			if delta < 0 {
				return changeDown.Render(text)
			}
			return changeUp.Render(text)
		}
		cards = lipgloss.JoinHorizontal(lipgloss.Top,
			" ",
			cardStyle.Render(titleStyle.Render("Employees")+"\n"+
				valueStyle.Render(statValue(stats.TotalEmployees))+"\n"+
				change(stats.MonthlyChange.Employees)),
			cardStyle.Render(titleStyle.Render("Departments")+"\n"+
				valueStyle.Render(statValue(stats.TotalDepartments))),
			cardStyle.Render(titleStyle.Render("Monthly payroll")+"\n"+
				valueStyle.Render(FormatVND(stats.TotalPayroll))+"\n"+
				change(stats.MonthlyChange.Payroll)),
			cardStyle.Render(titleStyle.Render("Average salary")+"\n"+
				valueStyle.Render(FormatVND(stats.AverageSalary))),
		)
	}

	chartWidth := model.width/2 - 4
	chart := func(kind chartKind, title string, money bool) string {
		if admin.chartErrs[kind] != "" {
			return lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground).Render(title) +
				"\n  " + errorStyle.Render(admin.chartErrs[kind])
		}
		return renderBarChart(model.theme, title, admin.charts[kind], chartWidth, money)
	}

	topCharts := lipgloss.JoinHorizontal(lipgloss.Top,
		" ",
		lipgloss.NewStyle().Width(model.width/2-2).Render(
			chart(chartSalaryByDepartment, "Salary by department", true)),
		lipgloss.NewStyle().Width(model.width/2-2).Render(
			chart(chartEmployeesByDepartment, "Employees by department", false)),
	)
	bottomChart := lipgloss.JoinHorizontal(lipgloss.Top, " ",
		chart(chartMonthlyPayroll, "Payroll by month", true))

	return "\n" + cards + "\n\n" + topCharts + "\n\n" + bottomChart
}

// rowStyleFor picks the style for a table row: selection wins, then
// heat glow, then the default.
func (model Model) rowStyleFor(recordID string, selected bool) lipgloss.Style {
	if selected {
		return lipgloss.NewStyle().
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.SelectedBackground)
	}
	if model.admin.heat.Heat(recordID, time.Now()) > 0 {
		background := model.theme.HotAccentPut
		if model.admin.heat.Kind(recordID) == tui.HeatRemove {
			background = model.theme.HotAccentRemove
		}
		return lipgloss.NewStyle().
			Foreground(model.theme.NormalText).
			Background(background)
	}
	return lipgloss.NewStyle().Foreground(model.theme.NormalText)
}

// renderAdminTable assembles a filter bar, header, visible rows, and
// scrollbar for one CRUD tab.
func (model Model) renderAdminTable(header string, rowIDs []string, rows []string, errText string, loadedEmpty string) string {
	if errText != "" {
		return "\n " + lipgloss.NewStyle().
			Foreground(model.theme.SeverityError).
			Render(errText)
	}

	filterBar := model.admin.filter.View(model.theme, model.width)
	if filterBar == "" {
		filterBar = " "
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	lines := []string{filterBar, headerStyle.Render(header)}

	if len(rows) == 0 {
		lines = append(lines, " "+lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(loadedEmpty))
		return strings.Join(lines, "\n")
	}

	pageSize := model.adminPageSize()
	offset := model.admin.scroll
	end := offset + pageSize
	if end > len(rows) {
		end = len(rows)
	}

	for index := offset; index < end; index++ {
		style := model.rowStyleFor(rowIDs[index], index == model.admin.cursor)
		lines = append(lines, style.Render(rows[index]))
	}

	table := strings.Join(lines, "\n")
	if len(rows) > pageSize {
		scrollbar := tui.RenderScrollbar(model.theme, pageSize,
			len(rows), pageSize, offset, true)
		table = lipgloss.JoinHorizontal(lipgloss.Top, table, " ", scrollbar)
	}
	return table
}

func (model Model) viewEmployeesTab() string {
	records := model.admin.filteredEmployees()

	format := " %-8s %-22s %-26s %-16s %-16s %14s  %-8s"
	header := fmt.Sprintf(format, "Code", "Name", "Email", "Position", "Department", "Salary", "Status")

	rowIDs := make([]string, len(records))
	rows := make([]string, len(records))
	for index, record := range records {
		department := record.Department
		if department == "" {
			department = model.admin.departmentName(record.DepartmentID)
		}
		rowIDs[index] = record.ID
		rows[index] = fmt.Sprintf(format,
			record.EmployeeCode,
			truncate(record.Name, 22),
			truncate(record.Email, 26),
			truncate(record.Position, 16),
			truncate(department, 16),
			FormatVND(record.Salary),
			string(record.Status))
	}

	empty := "No employees."
	if !model.admin.loaded[adminTabEmployees] || (model.admin.employees == nil && model.admin.employeesErr == "") {
		empty = "Loading…"
	}
	return model.renderAdminTable(header, rowIDs, rows, model.admin.employeesErr, empty)
}

func (model Model) viewDepartmentsTab() string {
	records := model.admin.filteredDepartments()

	format := " %-8s %-28s %-22s %10s  %-12s"
	header := fmt.Sprintf(format, "Code", "Name", "Manager", "Employees", "Created")

	rowIDs := make([]string, len(records))
	rows := make([]string, len(records))
	for index, record := range records {
		rowIDs[index] = record.ID
		rows[index] = fmt.Sprintf(format,
			record.Code,
			truncate(record.Name, 28),
			truncate(record.Manager, 22),
			statValue(record.EmployeeCount),
			record.CreatedDate)
	}

	empty := "No departments."
	if model.admin.departmentList == nil && model.admin.departmentsErr == "" {
		empty = "Loading…"
	}
	return model.renderAdminTable(header, rowIDs, rows, model.admin.departmentsErr, empty)
}

func (model Model) viewPayrollTab() string {
	records := model.admin.filteredPayroll()

	format := " %-8s %-20s %-8s %14s %12s %12s %12s %15s  %-9s"
	header := fmt.Sprintf(format,
		"Code", "Name", "Month", "Base", "Allowances", "Bonus", "Deductions", "Net", "Status")

	rowIDs := make([]string, len(records))
	rows := make([]string, len(records))
	for index, record := range records {
		rowIDs[index] = record.ID
		rows[index] = fmt.Sprintf(format,
			record.EmployeeCode,
			truncate(record.EmployeeName, 20),
			FormatMonth(record.Month, record.Year),
			FormatVND(record.BaseSalary),
			FormatVND(record.Allowances),
			FormatVND(record.Bonus),
			FormatVND(record.Deductions),
			FormatVND(record.Net()),
			string(record.Status))
	}

	empty := "No payroll entries."
	if model.admin.payroll == nil && model.admin.payrollErr == "" {
		empty = "Loading…"
	}
	return model.renderAdminTable(header, rowIDs, rows, model.admin.payrollErr, empty)
}

// truncate shortens a display string to at most width characters.
func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + "…"
}
