// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// userTab identifies the active employee self-service screen.
type userTab int

const (
	userTabOverview userTab = iota
	userTabPayments
	userTabNotifications
	userTabPassword
)

var userTabLabels = []string{"Overview", "Payments", "Notifications", "Password"}

// userModel holds the employee self-service state. Each dataset has its
// own slice and error text: a failed fetch degrades only its own
// section while the rest of the screen stays live.
type userModel struct {
	tab userTab

	profile    *hrapi.Employee
	profileErr string

	salary    *hrapi.Salary
	salaryErr string

	payments       []hrapi.PaymentRecord
	paymentsErr    string
	paymentsLoaded bool
	paymentsCursor int
	paymentsScroll int

	notifications       []hrapi.Notification
	notificationsErr    string
	notificationsLoaded bool
	notificationsCursor int
	notificationsScroll int

	// pendingReads maps notification IDs with an optimistic flip in
	// flight to the IsRead value to restore if the backend rejects it.
	pendingReads map[string]bool

	// pendingAll is non-nil while a mark-all-read call is in flight:
	// a snapshot of every notification's prior read flag.
	pendingAll map[string]bool

	password passwordForm
}

func newUserModel() userModel {
	return userModel{
		pendingReads: make(map[string]bool),
		password:     newPasswordForm(),
	}
}

// updateUser handles fetch and mutation results for the user phase.
func (model Model) updateUser(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case profileLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.user.profileErr = message.err.Error()
			return model, model.setNotice("profile: " + message.err.Error())
		}
		model.user.profile = message.profile
		model.user.profileErr = ""
		return model, nil

	case salaryLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.user.salaryErr = message.err.Error()
			return model, model.setNotice("salary: " + message.err.Error())
		}
		model.user.salary = message.salary
		model.user.salaryErr = ""
		return model, nil

	case paymentsLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.user.paymentsLoaded = true
		if message.err != nil {
			model.user.paymentsErr = message.err.Error()
			return model, model.setNotice("payments: " + message.err.Error())
		}
		model.user.payments = message.payments
		model.user.paymentsErr = ""
		model.user.clampPaymentsCursor()
		return model, nil

	case notificationsLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.user.notificationsLoaded = true
		if message.err != nil {
			model.user.notificationsErr = message.err.Error()
			return model, model.setNotice("notifications: " + message.err.Error())
		}
		model.user.notifications = message.notifications
		model.user.notificationsErr = ""
		model.user.clampNotificationsCursor()
		return model, nil

	case markReadResultMsg:
		if message.generation != model.generation {
			return model, nil
		}
		previous, pending := model.user.pendingReads[message.notificationID]
		delete(model.user.pendingReads, message.notificationID)
		if message.err == nil || !pending {
			return model, nil
		}
		// The backend rejected the flip: revert the optimistic change.
		for index := range model.user.notifications {
			if model.user.notifications[index].ID == message.notificationID {
				model.user.notifications[index].IsRead = previous
				break
			}
		}
		return model, model.setNotice("mark read: " + message.err.Error())

	case markAllReadResultMsg:
		if message.generation != model.generation {
			return model, nil
		}
		snapshot := model.user.pendingAll
		model.user.pendingAll = nil
		if message.err == nil || snapshot == nil {
			return model, nil
		}
		for index := range model.user.notifications {
			if previous, ok := snapshot[model.user.notifications[index].ID]; ok {
				model.user.notifications[index].IsRead = previous
			}
		}
		return model, model.setNotice("mark all read: " + message.err.Error())

	case passwordChangedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.user.password = model.user.password.fail(message.err.Error())
			return model, nil
		}
		model.user.password = model.user.password.succeed()
		return model, nil
	}
	return model, nil
}

// handleUserKey routes keyboard input within the user phase.
func (model Model) handleUserKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The password tab is a text-entry screen: everything except escape
	// routes to the form so digits and letters type normally.
	if model.user.tab == userTabPassword {
		if message.Type == tea.KeyEsc {
			model.user.tab = userTabOverview
			model.user.password = newPasswordForm()
			return model, nil
		}
		form, submit := model.user.password.Update(message)
		model.user.password = form
		if submit {
			return model, model.changePasswordCmd(
				form.Current(), form.New(), form.Confirm())
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Tab1):
		model.user.tab = userTabOverview
	case key.Matches(message, model.keys.Tab2):
		model.user.tab = userTabPayments
	case key.Matches(message, model.keys.Tab3):
		model.user.tab = userTabNotifications
	case key.Matches(message, model.keys.Tab4):
		model.user.tab = userTabPassword
		model.user.password = newPasswordForm()
	case key.Matches(message, model.keys.NextTab):
		model.user.tab = (model.user.tab + 1) % 4
		if model.user.tab == userTabPassword {
			model.user.password = newPasswordForm()
		}

	case key.Matches(message, model.keys.Refresh):
		switch model.user.tab {
		case userTabPayments:
			return model, model.fetchPaymentsCmd()
		case userTabNotifications:
			return model, model.fetchNotificationsCmd()
		default:
			return model, tea.Batch(model.fetchProfileCmd(), model.fetchSalaryCmd())
		}

	case key.Matches(message, model.keys.Up):
		model.user.moveCursor(-1)
	case key.Matches(message, model.keys.Down):
		model.user.moveCursor(1)
	case key.Matches(message, model.keys.PageUp):
		model.user.moveCursor(-model.userPageSize())
	case key.Matches(message, model.keys.PageDown):
		model.user.moveCursor(model.userPageSize())
	case key.Matches(message, model.keys.Home):
		model.user.moveCursorTo(0)
	case key.Matches(message, model.keys.End):
		model.user.moveCursorTo(1 << 30)

	case key.Matches(message, model.keys.MarkAllRead):
		if model.user.tab == userTabNotifications {
			return model.markAllNotifications()
		}

	case key.Matches(message, model.keys.MarkRead):
		if model.user.tab == userTabNotifications {
			return model.markCursorNotification()
		}
	}

	model.user.clampScroll(model.userPageSize())
	return model, nil
}

// markCursorNotification optimistically flips the notification under
// the cursor and issues the backend call. The prior value is kept so a
// rejection can revert the flip.
func (model Model) markCursorNotification() (tea.Model, tea.Cmd) {
	cursor := model.user.notificationsCursor
	if cursor < 0 || cursor >= len(model.user.notifications) {
		return model, nil
	}
	notification := &model.user.notifications[cursor]
	if notification.IsRead {
		return model, nil
	}
	model.user.pendingReads[notification.ID] = notification.IsRead
	notification.IsRead = true
	return model, model.markReadCmd(notification.ID)
}

// markAllNotifications optimistically flips every unread notification
// and issues one backend call, keeping a snapshot for revert.
func (model Model) markAllNotifications() (tea.Model, tea.Cmd) {
	if hrapi.UnreadCount(model.user.notifications) == 0 || model.user.pendingAll != nil {
		return model, nil
	}
	snapshot := make(map[string]bool, len(model.user.notifications))
	for index := range model.user.notifications {
		snapshot[model.user.notifications[index].ID] = model.user.notifications[index].IsRead
		model.user.notifications[index].IsRead = true
	}
	model.user.pendingAll = snapshot
	return model, model.markAllReadCmd()
}

// moveCursor moves the active tab's cursor by delta rows.
func (user *userModel) moveCursor(delta int) {
	switch user.tab {
	case userTabPayments:
		user.paymentsCursor = clamp(user.paymentsCursor+delta, 0, len(user.payments)-1)
	case userTabNotifications:
		user.notificationsCursor = clamp(user.notificationsCursor+delta, 0, len(user.notifications)-1)
	}
}

func (user *userModel) moveCursorTo(position int) {
	switch user.tab {
	case userTabPayments:
		user.paymentsCursor = clamp(position, 0, len(user.payments)-1)
	case userTabNotifications:
		user.notificationsCursor = clamp(position, 0, len(user.notifications)-1)
	}
}

func (user *userModel) clampPaymentsCursor() {
	user.paymentsCursor = clamp(user.paymentsCursor, 0, len(user.payments)-1)
}

func (user *userModel) clampNotificationsCursor() {
	user.notificationsCursor = clamp(user.notificationsCursor, 0, len(user.notifications)-1)
}

// clampScroll keeps the cursor inside the visible window for the
// active tab.
func (user *userModel) clampScroll(pageSize int) {
	switch user.tab {
	case userTabPayments:
		user.paymentsScroll = scrollFor(user.paymentsCursor, user.paymentsScroll, pageSize)
	case userTabNotifications:
		user.notificationsScroll = scrollFor(user.notificationsCursor, user.notificationsScroll, pageSize)
	}
}

// scrollFor adjusts a scroll offset so the cursor stays visible within
// a window of pageSize rows.
func scrollFor(cursor, offset, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+pageSize {
		return cursor - pageSize + 1
	}
	return offset
}

func clamp(value, low, high int) int {
	if high < low {
		return low
	}
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// userPageSize is the number of content rows available to lists in the
// user phase: total height minus tab bar, column header, and status bar.
func (model Model) userPageSize() int {
	size := model.height - 4
	if size < 1 {
		return 1
	}
	return size
}

// viewUser renders the employee self-service phase.
func (model Model) viewUser() string {
	identity := ""
	if model.user.profile != nil {
		identity = model.user.profile.Name
	}

	labels := make([]string, len(userTabLabels))
	copy(labels, userTabLabels)
	if unread := hrapi.UnreadCount(model.user.notifications); unread > 0 {
		labels[userTabNotifications] = fmt.Sprintf("Notifications (%d)", unread)
	}

	header := model.renderTabBar(labels, int(model.user.tab), identity)

	var body string
	help := "1-4 tabs · r refresh · C-l log out · q quit"
	switch model.user.tab {
	case userTabOverview:
		body = model.viewOverview()
	case userTabPayments:
		body = model.viewPayments()
		help = "j/k move · r refresh · C-l log out · q quit"
	case userTabNotifications:
		body = model.viewNotifications()
		help = "j/k move · Enter mark read · a mark all · C-l log out"
	case userTabPassword:
		body = model.user.password.View(model.theme, model.width)
		help = "Tab next field · Enter submit · Esc back"
	}

	content := lipgloss.NewStyle().
		Width(model.width).
		Height(model.height - 2).
		Render(body)

	return header + "\n" + content + "\n" + model.renderStatusBar(help)
}

// viewOverview renders the profile and salary cards side by side.
func (model Model) viewOverview() string {
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.SeverityError)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		MarginRight(2)

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	var profileCard string
	switch {
	case model.user.profileErr != "":
		profileCard = cardStyle.Render(titleStyle.Render("Profile") + "\n" +
			errorStyle.Render(model.user.profileErr))
	case model.user.profile == nil:
		profileCard = cardStyle.Render(titleStyle.Render("Profile") + "\nLoading…")
	default:
		profile := model.user.profile
		profileCard = cardStyle.Render(strings.Join([]string{
			titleStyle.Render("Profile"),
			row("Code", profile.EmployeeCode),
			row("Name", profile.Name),
			row("Email", profile.Email),
			row("Phone", profile.Phone),
			row("Date of birth", profile.DateOfBirth),
			row("Address", profile.Address),
			row("Position", profile.Position),
			row("Department", profile.Department),
			row("Start date", profile.StartDate),
		}, "\n"))
	}

	var salaryCard string
	switch {
	case model.user.salaryErr != "":
		salaryCard = cardStyle.Render(titleStyle.Render("Salary") + "\n" +
			errorStyle.Render(model.user.salaryErr))
	case model.user.salary == nil:
		salaryCard = cardStyle.Render(titleStyle.Render("Salary") + "\nLoading…")
	default:
		salary := model.user.salary
		netStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.StatusPaid)
		salaryCard = cardStyle.Render(strings.Join([]string{
			titleStyle.Render("Salary"),
			row("Base", FormatVND(salary.BaseSalary)),
			row("Allowances", FormatVND(salary.Allowances)),
			row("Bonus", FormatVND(salary.Bonus)),
			row("Deductions", FormatVND(salary.Deductions)),
			labelStyle.Render("Net") + netStyle.Render(FormatVND(salary.Net())),
		}, "\n"))
	}

	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, " ", profileCard, salaryCard)
}

// viewPayments renders the payment history table in server order.
func (model Model) viewPayments() string {
	if model.user.paymentsErr != "" {
		return "\n " + lipgloss.NewStyle().
			Foreground(model.theme.SeverityError).
			Render(model.user.paymentsErr)
	}
	if !model.user.paymentsLoaded {
		return "\n Loading…"
	}
	if len(model.user.payments) == 0 {
		return "\n " + lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("No payments recorded.")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	rowStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground)

	format := " %-8s %14s %14s %14s %14s %15s  %-10s %s"
	header := headerStyle.Render(fmt.Sprintf(format,
		"Month", "Base", "Allowances", "Bonus", "Deductions", "Net", "Status", "Paid"))

	pageSize := model.userPageSize()
	offset := model.user.paymentsScroll
	end := offset + pageSize
	if end > len(model.user.payments) {
		end = len(model.user.payments)
	}

	lines := []string{header}
	for index := offset; index < end; index++ {
		payment := model.user.payments[index]
		line := fmt.Sprintf(format,
			FormatMonth(payment.Month, payment.Year),
			FormatVND(payment.BaseSalary),
			FormatVND(payment.Allowances),
			FormatVND(payment.Bonus),
			FormatVND(payment.Deductions),
			FormatVND(payment.Net()),
			string(payment.Status),
			payment.PaidDate)
		if index == model.user.paymentsCursor {
			lines = append(lines, selectedStyle.Render(line))
		} else {
			lines = append(lines, rowStyle.Render(line))
		}
	}

	table := strings.Join(lines, "\n")
	if len(model.user.payments) > pageSize {
		scrollbar := tui.RenderScrollbar(model.theme, pageSize,
			len(model.user.payments), pageSize, offset, true)
		table = lipgloss.JoinHorizontal(lipgloss.Top, table, " ", scrollbar)
	}
	return table
}

// viewNotifications renders the notification list with unread rows in
// bold and a severity-colored marker per row.
func (model Model) viewNotifications() string {
	if model.user.notificationsErr != "" {
		return "\n " + lipgloss.NewStyle().
			Foreground(model.theme.SeverityError).
			Render(model.user.notificationsErr)
	}
	if !model.user.notificationsLoaded {
		return "\n Loading…"
	}
	if len(model.user.notifications) == 0 {
		return "\n " + lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("No notifications.")
	}

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	selectedStyle := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground)

	pageSize := model.userPageSize()
	offset := model.user.notificationsScroll
	end := offset + pageSize
	if end > len(model.user.notifications) {
		end = len(model.user.notifications)
	}

	var lines []string
	for index := offset; index < end; index++ {
		notification := model.user.notifications[index]
		marker := lipgloss.NewStyle().
			Foreground(model.theme.SeverityColor(string(notification.Type))).
			Render("●")

		titleStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
		if !notification.IsRead {
			titleStyle = titleStyle.Bold(true)
		}

		excerpt := ""
		if parts := tui.ExtractExcerpt(notification.Message, model.width-20, 1); len(parts) > 0 {
			excerpt = parts[0]
		}

		line := " " + marker + " " +
			titleStyle.Render(notification.Title) + "  " +
			faint.Render(excerpt) + "  " +
			faint.Render(notification.Date)
		if index == model.user.notificationsCursor {
			line = selectedStyle.Render(" ● " + notification.Title + "  " + excerpt + "  " + notification.Date)
		}
		lines = append(lines, line)
	}

	list := strings.Join(lines, "\n")
	if len(model.user.notifications) > pageSize {
		scrollbar := tui.RenderScrollbar(model.theme, pageSize,
			len(model.user.notifications), pageSize, offset, true)
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, " ", scrollbar)
	}
	return list
}
