// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// fieldKind distinguishes form field widgets.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldSelect
)

// formLabelWidth is the label column width inside form overlays. The
// dropdown anchor calculation depends on it matching the rendered
// layout.
const formLabelWidth = 16

// formField is one labeled entry in a record form: a text input, a
// numeric input, or an option selector cycled with left/right.
type formField struct {
	key   string
	label string
	kind  fieldKind

	input textinput.Model

	options     []tui.DropdownOption
	optionIndex int
}

// recordForm is the create/edit overlay for the admin CRUD tabs. The
// same structure serves departments, employees, and payroll; the
// builders below decide the field set.
type recordForm struct {
	title    string
	tab      adminTab
	recordID string // Empty for create.

	fields     []formField
	focusIndex int

	// dropdown is the open option menu for the focused select field,
	// nil when closed. While open it captures all form input.
	dropdown *tui.DropdownOverlay

	errorText  string
	submitting bool

	// netPreview is true for payroll forms: a live line shows
	// base+allowances+bonus−deductions as the amounts are typed.
	netPreview bool

	// Payroll edit keeps the employee snapshot taken at creation.
	// These pass through Update untouched; the form never re-derives
	// them from the current employee record.
	snapshotName       string
	snapshotCode       string
	snapshotDepartment string
}

func textField(key, label, value, placeholder string) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 128
	input.SetValue(value)
	return formField{key: key, label: label, kind: fieldText, input: input}
}

func numberField(key, label string, value float64) formField {
	input := textinput.New()
	input.Placeholder = "0"
	input.CharLimit = 15
	if value != 0 {
		input.SetValue(strconv.FormatFloat(value, 'f', -1, 64))
	}
	return formField{key: key, label: label, kind: fieldNumber, input: input}
}

func selectField(key, label string, options []tui.DropdownOption, selected string) formField {
	index := 0
	for optionIndex, option := range options {
		if option.Value == selected {
			index = optionIndex
			break
		}
	}
	return formField{key: key, label: label, kind: fieldSelect, options: options, optionIndex: index}
}

// newDepartmentForm builds the create or edit form for a department.
func newDepartmentForm(existing *hrapi.Department) *recordForm {
	form := &recordForm{title: "New department", tab: adminTabDepartments}
	var code, name, manager, description string
	if existing != nil {
		form.title = "Edit department " + existing.Code
		form.recordID = existing.ID
		code, name, manager, description = existing.Code, existing.Name, existing.Manager, existing.Description
	}
	form.fields = []formField{
		textField("code", "Code", code, "IT"),
		textField("name", "Name", name, "Information Technology"),
		textField("manager", "Manager", manager, ""),
		textField("description", "Description", description, ""),
	}
	form.focusField(0)
	return form
}

var employeeStatusOptions = []tui.DropdownOption{
	{Label: "active", Value: string(hrapi.EmployeeActive)},
	{Label: "inactive", Value: string(hrapi.EmployeeInactive)},
	{Label: "on leave", Value: string(hrapi.EmployeeOnLeave)},
}

var payrollStatusOptions = []tui.DropdownOption{
	{Label: "draft", Value: string(hrapi.PayrollDraft)},
	{Label: "approved", Value: string(hrapi.PayrollApproved)},
	{Label: "paid", Value: string(hrapi.PayrollPaid)},
}

// newEmployeeForm builds the create or edit form for an employee. The
// department selector lists the current departments; its value is the
// department ID.
func newEmployeeForm(existing *hrapi.AdminEmployee, departments []hrapi.Department) *recordForm {
	departmentOptions := make([]tui.DropdownOption, 0, len(departments))
	for _, department := range departments {
		departmentOptions = append(departmentOptions, tui.DropdownOption{
			Label: department.Name,
			Value: department.ID,
		})
	}

	form := &recordForm{title: "New employee", tab: adminTabEmployees}
	var record hrapi.AdminEmployee
	if existing != nil {
		form.title = "Edit employee " + existing.EmployeeCode
		form.recordID = existing.ID
		record = *existing
	} else {
		record.Status = hrapi.EmployeeActive
	}
	form.fields = []formField{
		textField("name", "Name", record.Name, ""),
		textField("email", "Email", record.Email, "name@example.com"),
		textField("phone", "Phone", record.Phone, ""),
		textField("dateOfBirth", "Date of birth", record.DateOfBirth, "YYYY-MM-DD"),
		textField("address", "Address", record.Address, ""),
		textField("position", "Position", record.Position, ""),
		selectField("departmentId", "Department", departmentOptions, record.DepartmentID),
		textField("startDate", "Start date", record.StartDate, "YYYY-MM-DD"),
		numberField("salary", "Salary (VND)", record.Salary),
		selectField("status", "Status", employeeStatusOptions, string(record.Status)),
	}
	form.focusField(0)
	return form
}

// newPayrollForm builds the create or edit form for a payroll entry.
// Create shows an employee selector; edit keeps the entry's employee
// snapshot and offers only the month, amounts, and status.
func newPayrollForm(existing *hrapi.PayrollEntry, employees []hrapi.AdminEmployee) *recordForm {
	form := &recordForm{title: "New payroll entry", tab: adminTabPayroll, netPreview: true}

	var record hrapi.PayrollEntry
	if existing != nil {
		form.title = "Edit payroll " + existing.EmployeeCode + " " + FormatMonth(existing.Month, existing.Year)
		form.recordID = existing.ID
		form.snapshotName = existing.EmployeeName
		form.snapshotCode = existing.EmployeeCode
		form.snapshotDepartment = existing.Department
		record = *existing
	} else {
		record.Status = hrapi.PayrollDraft
	}

	if existing == nil {
		employeeOptions := make([]tui.DropdownOption, 0, len(employees))
		for _, employee := range employees {
			employeeOptions = append(employeeOptions, tui.DropdownOption{
				Label: employee.EmployeeCode + " " + employee.Name,
				Value: employee.ID,
			})
		}
		form.fields = append(form.fields,
			selectField("employeeId", "Employee", employeeOptions, ""))
	}
	form.fields = append(form.fields,
		textField("month", "Month", record.Month, "01-12"),
		numberField("year", "Year", float64(record.Year)),
		numberField("baseSalary", "Base salary", record.BaseSalary),
		numberField("allowances", "Allowances", record.Allowances),
		numberField("bonus", "Bonus", record.Bonus),
		numberField("deductions", "Deductions", record.Deductions),
		selectField("status", "Status", payrollStatusOptions, string(record.Status)),
	)
	form.focusField(0)
	return form
}

// Update processes a key message. Returns submit=true when the user
// pressed enter on the last field (or ctrl+s anywhere).
func (form *recordForm) Update(message tea.KeyMsg) (submit bool) {
	if form.submitting {
		return false
	}

	if form.dropdown != nil {
		switch message.Type {
		case tea.KeyUp:
			form.dropdown.MoveUp()
		case tea.KeyDown, tea.KeyTab:
			form.dropdown.MoveDown()
		case tea.KeyEnter, tea.KeySpace:
			form.applyDropdown(form.dropdown.Cursor)
		case tea.KeyEsc:
			form.dropdown = nil
		}
		return false
	}

	switch message.Type {
	case tea.KeyTab, tea.KeyDown:
		form.focusField((form.focusIndex + 1) % len(form.fields))
		return false

	case tea.KeyShiftTab, tea.KeyUp:
		form.focusField((form.focusIndex + len(form.fields) - 1) % len(form.fields))
		return false

	case tea.KeyLeft, tea.KeyRight:
		field := &form.fields[form.focusIndex]
		if field.kind == fieldSelect && len(field.options) > 0 {
			if message.Type == tea.KeyRight {
				field.optionIndex = (field.optionIndex + 1) % len(field.options)
			} else {
				field.optionIndex = (field.optionIndex + len(field.options) - 1) % len(field.options)
			}
			return false
		}

	case tea.KeySpace:
		field := &form.fields[form.focusIndex]
		if field.kind == fieldSelect && len(field.options) > 0 {
			form.openDropdown()
			return false
		}

	case tea.KeyEnter:
		if form.focusIndex < len(form.fields)-1 {
			form.focusField(form.focusIndex + 1)
			return false
		}
		return true

	case tea.KeyCtrlS:
		return true
	}

	field := &form.fields[form.focusIndex]
	if field.kind == fieldSelect {
		return false
	}
	if field.kind == fieldNumber && message.Type == tea.KeyRunes {
		for _, character := range message.Runes {
			if (character < '0' || character > '9') && character != '.' {
				return false
			}
		}
	}
	field.input, _ = field.input.Update(message)
	return false
}

// openDropdown opens the option menu for the focused select field,
// with the cursor on the current selection.
func (form *recordForm) openDropdown() {
	field := &form.fields[form.focusIndex]
	if field.kind != fieldSelect || len(field.options) == 0 {
		return
	}
	form.dropdown = &tui.DropdownOverlay{
		Options: field.options,
		Cursor:  field.optionIndex,
		Field:   field.key,
		ItemID:  form.recordID,
	}
}

// applyDropdown commits the option at index to the field the dropdown
// was opened for and closes it.
func (form *recordForm) applyDropdown(index int) {
	if form.dropdown == nil || index < 0 || index >= len(form.dropdown.Options) {
		return
	}
	for fieldIndex := range form.fields {
		field := &form.fields[fieldIndex]
		if field.key == form.dropdown.Field {
			field.optionIndex = index
			break
		}
	}
	form.dropdown = nil
}

func (form *recordForm) focusField(index int) {
	form.focusIndex = index
	for fieldIndex := range form.fields {
		if fieldIndex == index && form.fields[fieldIndex].kind != fieldSelect {
			form.fields[fieldIndex].input.Focus()
		} else {
			form.fields[fieldIndex].input.Blur()
		}
	}
}

// value returns the current value of the field with the given key:
// trimmed text, raw number text, or the selected option's wire value.
func (form *recordForm) value(key string) string {
	for index := range form.fields {
		field := &form.fields[index]
		if field.key != key {
			continue
		}
		if field.kind == fieldSelect {
			if len(field.options) == 0 {
				return ""
			}
			return field.options[field.optionIndex].Value
		}
		return strings.TrimSpace(field.input.Value())
	}
	return ""
}

// floatValue parses the field as a number; empty means zero.
func (form *recordForm) floatValue(key string) (float64, error) {
	text := form.value(key)
	if text == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number", key)
	}
	return value, nil
}

// net computes the live payroll preview from the current amount fields.
// Unparseable fields count as zero so the preview never blocks typing.
func (form *recordForm) net() float64 {
	base, _ := form.floatValue("baseSalary")
	allowances, _ := form.floatValue("allowances")
	bonus, _ := form.floatValue("bonus")
	deductions, _ := form.floatValue("deductions")
	return base + allowances + bonus - deductions
}

// View renders the form as a bordered overlay box and returns its lines
// for splicing, plus the anchor for centering on the screen.
func (form *recordForm) View(theme tui.Theme, screenWidth, screenHeight int) ([]string, int, int) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(formLabelWidth)
	selectStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	focusedSelect := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)
	errorStyle := lipgloss.NewStyle().Foreground(theme.SeverityError)
	helpStyle := lipgloss.NewStyle().Foreground(theme.HelpText)
	netStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.StatusPaid)

	var body strings.Builder
	body.WriteString(titleStyle.Render(form.title))
	body.WriteString("\n\n")

	for index := range form.fields {
		field := &form.fields[index]
		body.WriteString(labelStyle.Render(field.label))
		if field.kind == fieldSelect {
			label := "—"
			if len(field.options) > 0 {
				label = field.options[field.optionIndex].Label
			}
			rendered := selectStyle.Render("‹ " + label + " ›")
			if index == form.focusIndex {
				rendered = focusedSelect.Render("‹ " + label + " ›")
			}
			body.WriteString(rendered)
		} else {
			body.WriteString(field.input.View())
		}
		body.WriteString("\n")
	}

	if form.netPreview {
		body.WriteString("\n")
		body.WriteString(labelStyle.Render("Net salary"))
		body.WriteString(netStyle.Render(FormatVND(form.net())))
		body.WriteString("\n")
	}

	if form.errorText != "" {
		body.WriteString("\n")
		body.WriteString(errorStyle.Render(form.errorText))
		body.WriteString("\n")
	}
	if form.submitting {
		body.WriteString("\n")
		body.WriteString(helpStyle.Render("Saving…"))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(helpStyle.Render("Tab next · ←/→ or Space options · Enter save · Esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Background(theme.OverlayBackground).
		Padding(1, 2).
		Render(body.String())

	lines := strings.Split(box, "\n")
	boxWidth := 0
	if len(lines) > 0 {
		boxWidth = ansi.StringWidth(lines[0])
	}
	anchorX := (screenWidth - boxWidth) / 2
	anchorY := (screenHeight - len(lines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return lines, anchorX, anchorY
}

// dropdownPosition computes the screen anchor for the open dropdown
// from the form box anchor: just below the focused select field,
// aligned with its value column. The rows above the first field are
// the box border, the vertical padding, the title, and a blank line.
func (form *recordForm) dropdownPosition(anchorX, anchorY int) (int, int) {
	x := anchorX + 3 + formLabelWidth
	y := anchorY + 4 + form.focusIndex + 1
	return x, y
}

// deleteConfirm is the destructive-action overlay. Enter or y confirms,
// esc or n cancels.
type deleteConfirm struct {
	tab      adminTab
	recordID string
	label    string
}

// View renders the confirmation box lines and centering anchor.
func (confirm *deleteConfirm) View(theme tui.Theme, screenWidth, screenHeight int) ([]string, int, int) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.SeverityError)
	textStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	helpStyle := lipgloss.NewStyle().Foreground(theme.HelpText)

	body := titleStyle.Render("Delete "+confirm.label+"?") + "\n\n" +
		textStyle.Render("This cannot be undone.") + "\n\n" +
		helpStyle.Render("y/Enter delete · n/Esc cancel")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.SeverityError).
		Background(theme.OverlayBackground).
		Padding(1, 2).
		Render(body)

	lines := strings.Split(box, "\n")
	boxWidth := 0
	if len(lines) > 0 {
		boxWidth = ansi.StringWidth(lines[0])
	}
	anchorX := (screenWidth - boxWidth) / 2
	anchorY := (screenHeight - len(lines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return lines, anchorX, anchorY
}
