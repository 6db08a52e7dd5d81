// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// adminTab identifies the active admin console screen.
type adminTab int

const (
	adminTabDashboard adminTab = iota
	adminTabEmployees
	adminTabDepartments
	adminTabPayroll
)

var adminTabLabels = []string{"Dashboard", "Employees", "Departments", "Payroll"}

// adminModel holds the admin console state. Tabs load lazily: nothing
// is fetched until a tab is first displayed, and each tab's data loads
// exactly once unless refreshed or invalidated by a mutation.
type adminModel struct {
	tab    adminTab
	loaded [4]bool

	stats     *hrapi.DashboardStats
	statsErr  string
	charts    [3][]hrapi.ChartData
	chartErrs [3]string

	// employees and departments load together: the table resolves
	// department names and the employee form needs the picker options.
	employees    []hrapi.AdminEmployee
	departments  []hrapi.Department
	employeesErr string

	departmentList []hrapi.Department
	departmentsErr string

	payroll    []hrapi.PayrollEntry
	payrollErr string

	filter filterModel
	cursor int
	scroll int

	form    *recordForm
	confirm *deleteConfirm

	// heat glows recently-mutated rows: amber for create/update, red
	// for the brief moment a deleted row is still on screen.
	heat        *tui.HeatTracker
	tickRunning bool
}

func newAdminModel() adminModel {
	return adminModel{heat: tui.NewHeatTracker()}
}

// openAdminTab switches tabs, resetting cursor and filter, and issues
// the tab's first load if it has not happened yet.
func (model Model) openAdminTab(tab adminTab) (tea.Model, tea.Cmd) {
	model.admin.tab = tab
	model.admin.cursor = 0
	model.admin.scroll = 0
	model.admin.filter.Clear()

	if model.admin.loaded[tab] {
		return model, nil
	}
	model.admin.loaded[tab] = true
	return model, model.fetchAdminTabCmd(tab)
}

// fetchAdminTabCmd returns the load command(s) for a tab. The dashboard
// fetches its four datasets in parallel.
func (model Model) fetchAdminTabCmd(tab adminTab) tea.Cmd {
	switch tab {
	case adminTabDashboard:
		return tea.Batch(
			model.fetchStatsCmd(),
			model.fetchChartCmd(chartSalaryByDepartment),
			model.fetchChartCmd(chartEmployeesByDepartment),
			model.fetchChartCmd(chartMonthlyPayroll),
		)
	case adminTabEmployees:
		return model.fetchEmployeesCmd()
	case adminTabDepartments:
		return model.fetchDepartmentsCmd()
	case adminTabPayroll:
		return model.fetchPayrollCmd()
	}
	return nil
}

// updateAdmin handles fetch and mutation results for the admin phase.
func (model Model) updateAdmin(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case statsLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.admin.statsErr = message.err.Error()
			return model, model.setNotice("stats: " + message.err.Error())
		}
		model.admin.stats = message.stats
		model.admin.statsErr = ""
		return model, nil

	case chartLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.admin.chartErrs[message.kind] = message.err.Error()
			return model, model.setNotice("dashboard: " + message.err.Error())
		}
		model.admin.charts[message.kind] = message.series
		model.admin.chartErrs[message.kind] = ""
		return model, nil

	case employeesLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.admin.employeesErr = message.err.Error()
			return model, model.setNotice("employees: " + message.err.Error())
		}
		model.admin.employees = message.employees
		model.admin.departments = message.departments
		model.admin.employeesErr = ""
		model.admin.clampCursor(len(model.admin.filteredEmployees()))
		return model, nil

	case departmentsLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.admin.departmentsErr = message.err.Error()
			return model, model.setNotice("departments: " + message.err.Error())
		}
		model.admin.departmentList = message.departments
		model.admin.departmentsErr = ""
		model.admin.clampCursor(len(model.admin.filteredDepartments()))
		return model, nil

	case payrollLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.admin.payrollErr = message.err.Error()
			return model, model.setNotice("payroll: " + message.err.Error())
		}
		model.admin.payroll = message.entries
		model.admin.payrollErr = ""
		model.admin.clampCursor(len(model.admin.filteredPayroll()))
		return model, nil

	case mutationDoneMsg:
		return model.handleMutationDone(message)

	case heatTickMsg:
		if model.admin.heat.HasHot(time.Now()) {
			return model, heatTickCmd()
		}
		model.admin.tickRunning = false
		return model, nil
	}
	return model, nil
}

// handleMutationDone closes overlays on success and re-fetches the
// owning tab's list; failures land in the open form (verbatim backend
// message) or the status bar.
func (model Model) handleMutationDone(message mutationDoneMsg) (tea.Model, tea.Cmd) {
	if message.generation != model.generation {
		return model, nil
	}

	if message.err != nil {
		if model.admin.form != nil && model.admin.form.tab == message.tab {
			model.admin.form.submitting = false
			model.admin.form.errorText = message.err.Error()
			return model, nil
		}
		return model, model.setNotice(message.err.Error())
	}

	if model.admin.form != nil && model.admin.form.tab == message.tab {
		model.admin.form = nil
	}
	if model.admin.confirm != nil && model.admin.confirm.tab == message.tab {
		model.admin.confirm = nil
	}

	kind := tui.HeatPut
	if message.removed {
		kind = tui.HeatRemove
	}
	if message.recordID != "" {
		model.admin.heat.Ignite(message.recordID, kind, time.Now())
	}
	var commands []tea.Cmd
	if !model.admin.tickRunning {
		model.admin.tickRunning = true
		commands = append(commands, heatTickCmd())
	}

	// Department changes invalidate the employees tab's paired
	// department list; it reloads on next display.
	if message.tab == adminTabDepartments {
		model.admin.loaded[adminTabEmployees] = false
	}

	commands = append(commands, model.fetchAdminTabCmd(message.tab))
	return model, tea.Batch(commands...)
}

// handleAdminKey routes keyboard input within the admin phase. Overlay
// focus wins: an open form or confirmation captures everything.
func (model Model) handleAdminKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.admin.form != nil {
		// Escape closes the open dropdown before it closes the form.
		if message.Type == tea.KeyEsc && model.admin.form.dropdown == nil {
			model.admin.form = nil
			return model, nil
		}
		if model.admin.form.Update(message) {
			return model.submitAdminForm()
		}
		return model, nil
	}

	if model.admin.confirm != nil {
		switch {
		case message.Type == tea.KeyEnter || message.String() == "y":
			confirm := model.admin.confirm
			return model, model.deleteRecordCmd(confirm.tab, confirm.recordID)
		case message.Type == tea.KeyEsc || message.String() == "n":
			model.admin.confirm = nil
		}
		return model, nil
	}

	if model.admin.filter.Active {
		switch message.Type {
		case tea.KeyEsc:
			model.admin.filter.Clear()
		case tea.KeyEnter:
			model.admin.filter.Active = false
		case tea.KeyBackspace:
			model.admin.filter.HandleBackspace()
			model.admin.cursor = 0
			model.admin.scroll = 0
		case tea.KeyRunes, tea.KeySpace:
			for _, character := range message.Runes {
				model.admin.filter.HandleRune(character)
			}
			if message.Type == tea.KeySpace {
				model.admin.filter.HandleRune(' ')
			}
			model.admin.cursor = 0
			model.admin.scroll = 0
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Tab1):
		return model.openAdminTab(adminTabDashboard)
	case key.Matches(message, model.keys.Tab2):
		return model.openAdminTab(adminTabEmployees)
	case key.Matches(message, model.keys.Tab3):
		return model.openAdminTab(adminTabDepartments)
	case key.Matches(message, model.keys.Tab4):
		return model.openAdminTab(adminTabPayroll)
	case key.Matches(message, model.keys.NextTab):
		return model.openAdminTab((model.admin.tab + 1) % 4)

	case key.Matches(message, model.keys.Refresh):
		return model, model.fetchAdminTabCmd(model.admin.tab)

	case key.Matches(message, model.keys.FilterActivate):
		if model.admin.tab != adminTabDashboard {
			model.admin.filter.Active = true
		}
		return model, nil

	case key.Matches(message, model.keys.FilterClear):
		model.admin.filter.Clear()
		return model, nil

	case key.Matches(message, model.keys.Up):
		model.admin.moveCursor(-1, model.adminRowCount())
	case key.Matches(message, model.keys.Down):
		model.admin.moveCursor(1, model.adminRowCount())
	case key.Matches(message, model.keys.PageUp):
		model.admin.moveCursor(-model.adminPageSize(), model.adminRowCount())
	case key.Matches(message, model.keys.PageDown):
		model.admin.moveCursor(model.adminPageSize(), model.adminRowCount())
	case key.Matches(message, model.keys.Home):
		model.admin.cursor = 0
	case key.Matches(message, model.keys.End):
		model.admin.cursor = clamp(model.adminRowCount()-1, 0, 1<<30)

	case key.Matches(message, model.keys.Create):
		model.openCreateForm()
	case key.Matches(message, model.keys.Edit):
		model.openEditForm()
	case key.Matches(message, model.keys.Delete):
		model.openDeleteConfirm()
	}

	model.admin.scroll = scrollFor(model.admin.cursor, model.admin.scroll, model.adminPageSize())
	return model, nil
}

// handleAdminMouse hit-tests clicks against the open dropdown. A click
// on an option selects it; a click anywhere else dismisses the menu.
func (model Model) handleAdminMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	form := model.admin.form
	if form == nil || form.dropdown == nil {
		return model, nil
	}
	if message.Action != tea.MouseActionPress || message.Button != tea.MouseButtonLeft {
		return model, nil
	}
	if !form.dropdown.Contains(message.X, message.Y) {
		form.dropdown = nil
		return model, nil
	}
	if index := form.dropdown.OptionAtY(message.Y); index >= 0 {
		form.applyDropdown(index)
	}
	return model, nil
}

func (admin *adminModel) moveCursor(delta, rowCount int) {
	admin.cursor = clamp(admin.cursor+delta, 0, rowCount-1)
}

func (admin *adminModel) clampCursor(rowCount int) {
	admin.cursor = clamp(admin.cursor, 0, rowCount-1)
}

// adminRowCount is the filtered row count of the active CRUD tab.
func (model Model) adminRowCount() int {
	switch model.admin.tab {
	case adminTabEmployees:
		return len(model.admin.filteredEmployees())
	case adminTabDepartments:
		return len(model.admin.filteredDepartments())
	case adminTabPayroll:
		return len(model.admin.filteredPayroll())
	}
	return 0
}

// adminPageSize is the number of table rows that fit on screen: height
// minus tab bar, filter line, column header, and status bar.
func (model Model) adminPageSize() int {
	size := model.height - 5
	if size < 1 {
		return 1
	}
	return size
}

// filteredEmployees applies the filter across the employee table's
// visible fields.
func (admin *adminModel) filteredEmployees() []hrapi.AdminEmployee {
	if admin.filter.Input == "" {
		return admin.employees
	}
	var result []hrapi.AdminEmployee
	for _, employee := range admin.employees {
		if admin.filter.Matches(employee.EmployeeCode, employee.Name, employee.Email,
			employee.Position, employee.Department, string(employee.Status)) {
			result = append(result, employee)
		}
	}
	return result
}

func (admin *adminModel) filteredDepartments() []hrapi.Department {
	if admin.filter.Input == "" {
		return admin.departmentList
	}
	var result []hrapi.Department
	for _, department := range admin.departmentList {
		if admin.filter.Matches(department.Code, department.Name, department.Manager) {
			result = append(result, department)
		}
	}
	return result
}

func (admin *adminModel) filteredPayroll() []hrapi.PayrollEntry {
	if admin.filter.Input == "" {
		return admin.payroll
	}
	var result []hrapi.PayrollEntry
	for _, entry := range admin.payroll {
		if admin.filter.Matches(entry.EmployeeCode, entry.EmployeeName, entry.Department,
			FormatMonth(entry.Month, entry.Year), string(entry.Status)) {
			result = append(result, entry)
		}
	}
	return result
}

// departmentName resolves a department ID against the paired list.
func (admin *adminModel) departmentName(id string) string {
	for _, department := range admin.departments {
		if department.ID == id {
			return department.Name
		}
	}
	return ""
}

// openCreateForm opens an empty form for the active CRUD tab.
func (model *Model) openCreateForm() {
	switch model.admin.tab {
	case adminTabEmployees:
		model.admin.form = newEmployeeForm(nil, model.admin.departments)
	case adminTabDepartments:
		model.admin.form = newDepartmentForm(nil)
	case adminTabPayroll:
		model.admin.form = newPayrollForm(nil, model.admin.employees)
	}
}

// openEditForm opens a form pre-filled with the record under the cursor.
func (model *Model) openEditForm() {
	switch model.admin.tab {
	case adminTabEmployees:
		rows := model.admin.filteredEmployees()
		if model.admin.cursor < len(rows) {
			record := rows[model.admin.cursor]
			model.admin.form = newEmployeeForm(&record, model.admin.departments)
		}
	case adminTabDepartments:
		rows := model.admin.filteredDepartments()
		if model.admin.cursor < len(rows) {
			record := rows[model.admin.cursor]
			model.admin.form = newDepartmentForm(&record)
		}
	case adminTabPayroll:
		rows := model.admin.filteredPayroll()
		if model.admin.cursor < len(rows) {
			record := rows[model.admin.cursor]
			model.admin.form = newPayrollForm(&record, nil)
		}
	}
}

// openDeleteConfirm opens the confirmation overlay for the record under
// the cursor.
func (model *Model) openDeleteConfirm() {
	switch model.admin.tab {
	case adminTabEmployees:
		rows := model.admin.filteredEmployees()
		if model.admin.cursor < len(rows) {
			record := rows[model.admin.cursor]
			model.admin.confirm = &deleteConfirm{
				tab:      adminTabEmployees,
				recordID: record.ID,
				label:    "employee " + record.EmployeeCode + " " + record.Name,
			}
		}
	case adminTabDepartments:
		rows := model.admin.filteredDepartments()
		if model.admin.cursor < len(rows) {
			record := rows[model.admin.cursor]
			model.admin.confirm = &deleteConfirm{
				tab:      adminTabDepartments,
				recordID: record.ID,
				label:    "department " + record.Code + " " + record.Name,
			}
		}
	case adminTabPayroll:
		rows := model.admin.filteredPayroll()
		if model.admin.cursor < len(rows) {
			record := rows[model.admin.cursor]
			model.admin.confirm = &deleteConfirm{
				tab:      adminTabPayroll,
				recordID: record.ID,
				label:    "payroll " + record.EmployeeCode + " " + FormatMonth(record.Month, record.Year),
			}
		}
	}
}

// submitAdminForm turns the open form into a typed request and issues
// the save command. Validation failures stay in the form; nothing
// reaches the network.
func (model Model) submitAdminForm() (tea.Model, tea.Cmd) {
	form := model.admin.form
	switch form.tab {
	case adminTabDepartments:
		request := hrapi.DepartmentRequest{
			Code:        form.value("code"),
			Name:        form.value("name"),
			Manager:     form.value("manager"),
			Description: form.value("description"),
		}
		if err := request.Validate(); err != nil {
			form.errorText = err.Error()
			return model, nil
		}
		form.submitting = true
		form.errorText = ""
		return model, model.saveDepartmentCmd(form.recordID, request)

	case adminTabEmployees:
		salary, err := form.floatValue("salary")
		if err != nil {
			form.errorText = err.Error()
			return model, nil
		}
		departmentID := form.value("departmentId")
		request := hrapi.EmployeeRequest{
			Name:         form.value("name"),
			Email:        form.value("email"),
			Phone:        form.value("phone"),
			DateOfBirth:  form.value("dateOfBirth"),
			Address:      form.value("address"),
			Position:     form.value("position"),
			Department:   model.admin.departmentName(departmentID),
			DepartmentID: departmentID,
			StartDate:    form.value("startDate"),
			Salary:       salary,
			Status:       hrapi.EmployeeStatus(form.value("status")),
		}
		if err := request.Validate(); err != nil {
			form.errorText = err.Error()
			return model, nil
		}
		form.submitting = true
		form.errorText = ""
		return model, model.saveEmployeeCmd(form.recordID, request)

	case adminTabPayroll:
		request, err := model.buildPayrollRequest(form)
		if err != nil {
			form.errorText = err.Error()
			return model, nil
		}
		if err := request.Validate(); err != nil {
			form.errorText = err.Error()
			return model, nil
		}
		form.submitting = true
		form.errorText = ""
		return model, model.savePayrollCmd(form.recordID, request)
	}
	return model, nil
}

// buildPayrollRequest assembles a payroll request. On create the
// employee snapshot comes from the selected employee; on edit the
// snapshot carried by the form passes through unchanged.
func (model Model) buildPayrollRequest(form *recordForm) (hrapi.PayrollRequest, error) {
	var request hrapi.PayrollRequest

	year, err := form.floatValue("year")
	if err != nil {
		return request, err
	}
	base, err := form.floatValue("baseSalary")
	if err != nil {
		return request, err
	}
	allowances, err := form.floatValue("allowances")
	if err != nil {
		return request, err
	}
	bonus, err := form.floatValue("bonus")
	if err != nil {
		return request, err
	}
	deductions, err := form.floatValue("deductions")
	if err != nil {
		return request, err
	}

	request = hrapi.PayrollRequest{
		Month:      form.value("month"),
		Year:       int(year),
		BaseSalary: base,
		Allowances: allowances,
		Bonus:      bonus,
		Deductions: deductions,
		Status:     hrapi.PayrollStatus(form.value("status")),
	}

	if form.recordID == "" {
		employeeID := form.value("employeeId")
		for _, employee := range model.admin.employees {
			if employee.ID == employeeID {
				request.EmployeeID = employee.ID
				request.EmployeeName = employee.Name
				request.EmployeeCode = employee.EmployeeCode
				request.Department = employee.Department
				break
			}
		}
	} else {
		request.EmployeeID = form.value("employeeId")
		if request.EmployeeID == "" {
			// Edit forms have no employee field; the entry keeps its ID.
			for _, entry := range model.admin.payroll {
				if entry.ID == form.recordID {
					request.EmployeeID = entry.EmployeeID
					break
				}
			}
		}
		request.EmployeeName = form.snapshotName
		request.EmployeeCode = form.snapshotCode
		request.Department = form.snapshotDepartment
	}
	return request, nil
}

func (model Model) saveDepartmentCmd(id string, request hrapi.DepartmentRequest) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		var recordID string
		var err error
		if id == "" {
			var created *hrapi.Department
			created, err = client.CreateDepartment(context.Background(), request)
			if created != nil {
				recordID = created.ID
			}
		} else {
			recordID = id
			_, err = client.UpdateDepartment(context.Background(), id, request)
		}
		return mutationDoneMsg{generation: generation, tab: adminTabDepartments, recordID: recordID, err: err}
	}
}

func (model Model) saveEmployeeCmd(id string, request hrapi.EmployeeRequest) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		var recordID string
		var err error
		if id == "" {
			var created *hrapi.AdminEmployee
			created, err = client.CreateEmployee(context.Background(), request)
			if created != nil {
				recordID = created.ID
			}
		} else {
			recordID = id
			_, err = client.UpdateEmployee(context.Background(), id, request)
		}
		return mutationDoneMsg{generation: generation, tab: adminTabEmployees, recordID: recordID, err: err}
	}
}

func (model Model) savePayrollCmd(id string, request hrapi.PayrollRequest) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		var recordID string
		var err error
		if id == "" {
			var created *hrapi.PayrollEntry
			created, err = client.CreatePayrollEntry(context.Background(), request)
			if created != nil {
				recordID = created.ID
			}
		} else {
			recordID = id
			_, err = client.UpdatePayrollEntry(context.Background(), id, request)
		}
		return mutationDoneMsg{generation: generation, tab: adminTabPayroll, recordID: recordID, err: err}
	}
}

func (model Model) deleteRecordCmd(tab adminTab, id string) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		var err error
		switch tab {
		case adminTabEmployees:
			err = client.DeleteEmployee(context.Background(), id)
		case adminTabDepartments:
			err = client.DeleteDepartment(context.Background(), id)
		case adminTabPayroll:
			err = client.DeletePayrollEntry(context.Background(), id)
		}
		return mutationDoneMsg{generation: generation, tab: tab, recordID: id, removed: true, err: err}
	}
}

// statValue formats a dashboard counter for display.
func statValue(value int) string {
	return strconv.Itoa(value)
}
