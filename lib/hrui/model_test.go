// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// newTestModel builds a Model over a client that never sees traffic:
// the tests inject result messages directly instead of executing the
// returned commands.
func newTestModel(t *testing.T) Model {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := hrapi.NewForTesting(http.DefaultTransport, store)
	model := NewModel(client)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func apply(t *testing.T, model Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, command := model.Update(message)
	return updated.(Model), command
}

func keyPress(key string) tea.KeyMsg {
	if len(key) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{}
}

func TestSessionLoadedWithoutAuthShowsLogin(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: false})
	if model.phase != phaseLogin {
		t.Errorf("phase = %d, want phaseLogin", model.phase)
	}
}

func TestSessionLoadedUserEntersUserPhaseWithParallelFetches(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, command := apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleUser})
	if model.phase != phaseUser {
		t.Fatalf("phase = %d, want phaseUser", model.phase)
	}
	if command == nil {
		t.Error("entering the user phase issued no fetch commands")
	}
}

func TestSessionLoadedAdminEntersAdminPhase(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, command := apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleAdmin})
	if model.phase != phaseAdmin {
		t.Fatalf("phase = %d, want phaseAdmin", model.phase)
	}
	if command == nil {
		t.Error("dashboard issued no load command on first display")
	}
	if !model.admin.loaded[adminTabDashboard] {
		t.Error("dashboard not marked loaded")
	}
}

func TestLoginSuccessBumpsGenerationAndRoutesByRole(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: false})

	model, _ = apply(t, model, loginResultMsg{
		generation: model.generation,
		result:     &hrapi.LoginResult{Token: "token", Role: session.RoleAdmin},
	})
	if model.phase != phaseAdmin {
		t.Errorf("phase = %d, want phaseAdmin", model.phase)
	}
	if model.generation != 1 {
		t.Errorf("generation = %d, want 1", model.generation)
	}
}

func TestLoginFailureStaysOnLoginForm(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: false})

	model, _ = apply(t, model, loginResultMsg{
		generation: model.generation,
		err:        errors.New("invalid credentials"),
	})
	if model.phase != phaseLogin {
		t.Errorf("phase = %d, want phaseLogin", model.phase)
	}
	if model.login.errorText != "invalid credentials" {
		t.Errorf("errorText = %q, want the backend message verbatim", model.login.errorText)
	}
}

func TestStaleFetchResultDiscarded(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleUser})

	// A payments response from before a logout/login cycle must not
	// land in the current view.
	staleGeneration := model.generation
	model.generation++
	model, _ = apply(t, model, paymentsLoadedMsg{
		generation: staleGeneration,
		payments:   []hrapi.PaymentRecord{{ID: "p1"}},
	})
	if model.user.paymentsLoaded || len(model.user.payments) != 0 {
		t.Error("stale payments result was applied")
	}
}

func TestPartialLoadFailureKeepsSiblingData(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleUser})

	model, _ = apply(t, model, profileLoadedMsg{
		generation: model.generation,
		profile:    &hrapi.Employee{ID: "e1", Name: "Nguyen Van A"},
	})
	model, _ = apply(t, model, salaryLoadedMsg{
		generation: model.generation,
		err:        errors.New("salary service unavailable"),
	})

	if model.user.profile == nil || model.user.profile.Name != "Nguyen Van A" {
		t.Error("profile data lost after a sibling fetch failed")
	}
	if model.user.salaryErr == "" {
		t.Error("salary error not recorded")
	}
	if model.notice == "" {
		t.Error("no status-bar notice for the failed slice")
	}
}

func TestOptimisticMarkReadRevertsOnFailure(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleUser})
	model, _ = apply(t, model, notificationsLoadedMsg{
		generation: model.generation,
		notifications: []hrapi.Notification{
			{ID: "n1", Title: "Payslip ready", IsRead: false},
		},
	})

	model.user.tab = userTabNotifications
	model, command := apply(t, model, keyPress("enter"))
	if command == nil {
		t.Fatal("mark-read issued no command")
	}
	if !model.user.notifications[0].IsRead {
		t.Fatal("notification not optimistically flipped")
	}

	// Backend rejects: the flip reverts.
	model, _ = apply(t, model, markReadResultMsg{
		generation:     model.generation,
		notificationID: "n1",
		err:            errors.New("boom"),
	})
	if model.user.notifications[0].IsRead {
		t.Error("flip not reverted after backend rejection")
	}
	if hrapi.UnreadCount(model.user.notifications) != 1 {
		t.Error("unread count out of sync after revert")
	}
}

func TestOptimisticMarkReadConfirmed(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleUser})
	model, _ = apply(t, model, notificationsLoadedMsg{
		generation:    model.generation,
		notifications: []hrapi.Notification{{ID: "n1", IsRead: false}},
	})

	model.user.tab = userTabNotifications
	model, _ = apply(t, model, keyPress("enter"))
	model, _ = apply(t, model, markReadResultMsg{
		generation:     model.generation,
		notificationID: "n1",
	})
	if !model.user.notifications[0].IsRead {
		t.Error("confirmed flip was lost")
	}
	if len(model.user.pendingReads) != 0 {
		t.Error("pendingReads not cleaned up")
	}
}

func TestMarkAllReadRevertsOnFailure(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleUser})
	model, _ = apply(t, model, notificationsLoadedMsg{
		generation: model.generation,
		notifications: []hrapi.Notification{
			{ID: "n1", IsRead: false},
			{ID: "n2", IsRead: true},
			{ID: "n3", IsRead: false},
		},
	})

	model.user.tab = userTabNotifications
	model, command := apply(t, model, keyPress("a"))
	if command == nil {
		t.Fatal("mark-all issued no command")
	}
	if hrapi.UnreadCount(model.user.notifications) != 0 {
		t.Fatal("not all notifications optimistically flipped")
	}

	model, _ = apply(t, model, markAllReadResultMsg{
		generation: model.generation,
		err:        errors.New("boom"),
	})
	if hrapi.UnreadCount(model.user.notifications) != 2 {
		t.Errorf("unread = %d after revert, want the original 2", hrapi.UnreadCount(model.user.notifications))
	}
	if !model.user.notifications[1].IsRead {
		t.Error("already-read notification flipped during revert")
	}
}

func TestLogoutReturnsToLoginAndBumpsGeneration(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleUser})
	generationBefore := model.generation

	model, command := apply(t, model, tea.KeyMsg{Type: tea.KeyCtrlL})
	if model.phase != phaseLogin {
		t.Errorf("phase = %d, want phaseLogin", model.phase)
	}
	if model.generation != generationBefore+1 {
		t.Errorf("generation = %d, want %d", model.generation, generationBefore+1)
	}
	if command == nil {
		t.Error("logout issued no command")
	}
}

func TestAdminTabsLoadLazilyExactlyOnce(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleAdmin})

	// First visit to employees: one paired load.
	model, command := apply(t, model, keyPress("2"))
	if command == nil {
		t.Fatal("first employees display issued no load")
	}
	// Leaving and returning must not re-fetch.
	model, _ = apply(t, model, keyPress("1"))
	model, command = apply(t, model, keyPress("2"))
	if command != nil {
		t.Error("second employees display re-fetched")
	}
}

func TestEmployeesLoadPairsDepartments(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleAdmin})
	model, _ = apply(t, model, keyPress("2"))

	model, _ = apply(t, model, employeesLoadedMsg{
		generation: model.generation,
		employees: []hrapi.AdminEmployee{
			{Employee: hrapi.Employee{ID: "e1", Name: "A"}, DepartmentID: "d1", Status: hrapi.EmployeeActive},
		},
		departments: []hrapi.Department{{ID: "d1", Name: "IT"}},
	})
	if len(model.admin.employees) != 1 || len(model.admin.departments) != 1 {
		t.Fatal("paired employees+departments load not applied")
	}
	if model.admin.departmentName("d1") != "IT" {
		t.Error("department name not resolvable")
	}
}

func TestDepartmentMutationInvalidatesEmployeesTab(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleAdmin})
	model, _ = apply(t, model, keyPress("2")) // load employees
	model, _ = apply(t, model, keyPress("3")) // load departments

	model, command := apply(t, model, mutationDoneMsg{
		generation: model.generation,
		tab:        adminTabDepartments,
		recordID:   "d9",
	})
	if command == nil {
		t.Error("successful mutation did not re-fetch the tab list")
	}
	if model.admin.loaded[adminTabEmployees] {
		t.Error("employees pairing not invalidated by a department change")
	}
}

func TestMutationFailureSurfacesInOpenForm(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleAdmin})
	model, _ = apply(t, model, keyPress("3"))
	model, _ = apply(t, model, departmentsLoadedMsg{generation: model.generation})

	model, _ = apply(t, model, keyPress("n"))
	if model.admin.form == nil {
		t.Fatal("create form did not open")
	}
	model.admin.form.submitting = true

	model, _ = apply(t, model, mutationDoneMsg{
		generation: model.generation,
		tab:        adminTabDepartments,
		err:        errors.New("department code already exists"),
	})
	if model.admin.form == nil {
		t.Fatal("form closed despite the failure")
	}
	if model.admin.form.errorText != "department code already exists" {
		t.Errorf("form error = %q, want the backend message verbatim", model.admin.form.errorText)
	}
	if model.admin.form.submitting {
		t.Error("form still marked submitting after failure")
	}
}

func TestFilterNarrowsEmployees(t *testing.T) {
	t.Parallel()

	admin := newAdminModel()
	admin.employees = []hrapi.AdminEmployee{
		{Employee: hrapi.Employee{ID: "e1", Name: "Nguyen Van A", Position: "Engineer"}},
		{Employee: hrapi.Employee{ID: "e2", Name: "Tran Thi B", Position: "Accountant"}},
	}

	admin.filter.Input = "engineer"
	filtered := admin.filteredEmployees()
	if len(filtered) != 1 || filtered[0].ID != "e1" {
		t.Errorf("filtered = %+v, want only e1", filtered)
	}

	admin.filter.Input = ""
	if len(admin.filteredEmployees()) != 2 {
		t.Error("empty filter must match everything")
	}
}

func TestPayrollFormNetPreviewMatchesFormula(t *testing.T) {
	t.Parallel()

	form := newPayrollForm(nil, nil)
	setFormValue(t, form, "baseSalary", "10000000")
	setFormValue(t, form, "allowances", "500000")
	setFormValue(t, form, "bonus", "1000000")
	setFormValue(t, form, "deductions", "800000")

	if got, want := form.net(), 10_700_000.0; got != want {
		t.Errorf("net() = %v, want %v", got, want)
	}
}

func TestPayrollEditKeepsSnapshot(t *testing.T) {
	t.Parallel()

	entry := hrapi.PayrollEntry{
		ID:           "pr1",
		EmployeeID:   "e1",
		EmployeeName: "Nguyen Van A",
		EmployeeCode: "NV001",
		Department:   "IT",
		Month:        "03",
		Year:         2026,
		BaseSalary:   12_000_000,
		Status:       hrapi.PayrollDraft,
	}
	form := newPayrollForm(&entry, nil)
	if form.snapshotName != "Nguyen Van A" || form.snapshotCode != "NV001" || form.snapshotDepartment != "IT" {
		t.Error("edit form lost the employee snapshot")
	}
	// No employee selector on edit: the snapshot is not re-derivable.
	if form.value("employeeId") != "" {
		t.Error("edit form exposes an employee selector")
	}
}

// openEmployeeFormOnStatus brings the model to the admin employees tab
// with an open create form focused on the status selector.
func openEmployeeFormOnStatus(t *testing.T) Model {
	t.Helper()

	model := newTestModel(t)
	model, _ = apply(t, model, sessionLoadedMsg{authenticated: true, role: session.RoleAdmin})
	model, _ = apply(t, model, keyPress("2"))
	model, _ = apply(t, model, employeesLoadedMsg{
		generation: model.generation,
		employees: []hrapi.AdminEmployee{
			{Employee: hrapi.Employee{ID: "e1", Name: "Nguyen Van A"}, DepartmentID: "d1"},
		},
		departments: []hrapi.Department{{ID: "d1", Name: "IT"}},
	})
	model, _ = apply(t, model, keyPress("n"))
	if model.admin.form == nil {
		t.Fatal("create form did not open")
	}
	focusNamedField(t, model.admin.form, "status")
	return model
}

// focusNamedField moves form focus to the field with the given key.
func focusNamedField(t *testing.T, form *recordForm, key string) {
	t.Helper()
	for index := range form.fields {
		if form.fields[index].key == key {
			form.focusField(index)
			return
		}
	}
	t.Fatalf("form has no field %q", key)
}

func TestSelectFieldDropdownPicksOption(t *testing.T) {
	t.Parallel()

	model := openEmployeeFormOnStatus(t)

	model, _ = apply(t, model, keyPress("space"))
	if model.admin.form.dropdown == nil {
		t.Fatal("space on a select field did not open the option menu")
	}
	model, _ = apply(t, model, keyPress("down"))
	model, _ = apply(t, model, keyPress("enter"))

	if model.admin.form.dropdown != nil {
		t.Error("option menu still open after selection")
	}
	if got := model.admin.form.value("status"); got != "inactive" {
		t.Errorf("status = %q after selecting the second option, want %q", got, "inactive")
	}
}

func TestDropdownEscClosesMenuBeforeForm(t *testing.T) {
	t.Parallel()

	model := openEmployeeFormOnStatus(t)
	model, _ = apply(t, model, keyPress("space"))

	model, _ = apply(t, model, keyPress("esc"))
	if model.admin.form == nil {
		t.Fatal("escape with an open option menu closed the whole form")
	}
	if model.admin.form.dropdown != nil {
		t.Error("escape did not close the option menu")
	}

	model, _ = apply(t, model, keyPress("esc"))
	if model.admin.form != nil {
		t.Error("second escape did not close the form")
	}
}

func TestDropdownMouseClickSelects(t *testing.T) {
	t.Parallel()

	model := openEmployeeFormOnStatus(t)
	model, _ = apply(t, model, keyPress("space"))

	// Rendering records the menu's screen anchor for hit-testing.
	_ = model.View()
	dropdown := model.admin.form.dropdown

	model, _ = apply(t, model, tea.MouseMsg{
		X:      dropdown.AnchorX + 1,
		Y:      dropdown.AnchorY + 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if model.admin.form.dropdown != nil {
		t.Error("option menu still open after a click on an option")
	}
	if got := model.admin.form.value("status"); got != "onleave" {
		t.Errorf("status = %q after clicking the third option, want %q", got, "onleave")
	}

	// A click outside the menu dismisses it without changing the field.
	model, _ = apply(t, model, keyPress("space"))
	_ = model.View()
	dropdown = model.admin.form.dropdown
	model, _ = apply(t, model, tea.MouseMsg{
		X:      dropdown.AnchorX - 2,
		Y:      dropdown.AnchorY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if model.admin.form.dropdown != nil {
		t.Error("option menu still open after a click outside it")
	}
	if got := model.admin.form.value("status"); got != "onleave" {
		t.Errorf("status = %q after dismissing the menu, want unchanged %q", got, "onleave")
	}
}

func TestFormatVND(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{12450000, "12.450.000 ₫"},
		{-800000, "-800.000 ₫"},
	}
	for _, test := range tests {
		if got := FormatVND(test.amount); got != test.want {
			t.Errorf("FormatVND(%v) = %q, want %q", test.amount, got, test.want)
		}
	}
}

// setFormValue sets a named text field directly.
func setFormValue(t *testing.T, form *recordForm, key, value string) {
	t.Helper()
	for index := range form.fields {
		if form.fields[index].key == key {
			form.fields[index].input.SetValue(value)
			return
		}
	}
	t.Fatalf("form has no field %q", key)
}
