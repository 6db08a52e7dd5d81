// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// phase is the root state of the interface. Transitions:
//
//	phaseLoadingSession → phaseLogin | phaseUser | phaseAdmin
//	phaseLogin          → phaseUser | phaseAdmin   (by login role)
//	phaseUser/phaseAdmin → phaseLogin              (logout, the only exit)
type phase int

const (
	phaseLoadingSession phase = iota
	phaseLogin
	phaseUser
	phaseAdmin
)

// Model is the top-level bubbletea model for the HR terminal interface.
type Model struct {
	client *hrapi.Client
	theme  tui.Theme
	keys   KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	phase phase

	// generation counts login/logout transitions. Fetch results whose
	// generation differs from this are stale and dropped.
	generation int

	// notice is a transient status-bar message (partial load failures,
	// mutation errors). Cleared by noticeFadeMsg.
	notice string

	login loginForm
	user  userModel
	admin adminModel
}

// NewModel creates a Model over the given backend client. The session
// store referenced by the client decides the starting phase.
func NewModel(client *hrapi.Client) Model {
	return Model{
		client: client,
		theme:  tui.DefaultTheme,
		keys:   DefaultKeyMap,
		login:  newLoginForm(),
		user:   newUserModel(),
		admin:  newAdminModel(),
	}
}

// Init implements tea.Model. Reads the session file once; the result
// decides whether to show login or jump straight to a role phase.
func (model Model) Init() tea.Cmd {
	return tea.Batch(loadSessionCmd(model.client.Store()), textinput.Blink)
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case sessionLoadedMsg:
		if !message.authenticated {
			model.phase = phaseLogin
			return model, nil
		}
		if message.role == session.RoleAdmin {
			return model.enterAdmin()
		}
		return model.enterUser()

	case loginResultMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			model.login = model.login.fail(message.err.Error())
			return model, nil
		}
		model.generation++
		if message.result.Role == session.RoleAdmin {
			return model.enterAdmin()
		}
		model.user = newUserModel()
		model.user.profile = message.result.Employee
		return model.enterUser()

	case logoutFinishedMsg:
		return model, nil

	case noticeFadeMsg:
		model.notice = ""
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		if model.phase == phaseAdmin {
			return model.handleAdminMouse(message)
		}
		return model, nil
	}

	// Everything else is a fetch or mutation result for one of the
	// authenticated phases.
	switch model.phase {
	case phaseUser:
		return model.updateUser(message)
	case phaseAdmin:
		return model.updateAdmin(message)
	}
	return model, nil
}

// handleKey routes keyboard input by phase.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, regardless of phase or focus.
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}

	switch model.phase {
	case phaseLoadingSession:
		return model, nil

	case phaseLogin:
		form, submitted := model.login.Update(message)
		model.login = form
		if submitted {
			return model, model.loginCmd(form.Username(), form.Password())
		}
		return model, nil

	case phaseUser:
		if key.Matches(message, model.keys.Logout) {
			return model.logout()
		}
		return model.handleUserKey(message)

	case phaseAdmin:
		if key.Matches(message, model.keys.Logout) {
			return model.logout()
		}
		return model.handleAdminKey(message)
	}
	return model, nil
}

// logout bumps the generation (orphaning every in-flight fetch), resets
// the authenticated sub-models, and issues the logout command. The
// local session clear always succeeds; the server call inside is
// best-effort.
func (model Model) logout() (tea.Model, tea.Cmd) {
	model.generation++
	model.phase = phaseLogin
	model.login = newLoginForm()
	model.user = newUserModel()
	model.admin = newAdminModel()
	model.notice = ""
	return model, model.logoutCmd()
}

// enterUser switches to the employee self-service phase and launches
// the four initial fetches in parallel. Each lands in its own slice;
// a failure degrades only its own section.
func (model Model) enterUser() (tea.Model, tea.Cmd) {
	model.phase = phaseUser
	model.user.paymentsLoaded = false
	model.user.notificationsLoaded = false
	return model, tea.Batch(
		model.fetchProfileCmd(),
		model.fetchSalaryCmd(),
		model.fetchPaymentsCmd(),
		model.fetchNotificationsCmd(),
	)
}

// enterAdmin switches to the admin console. Nothing is fetched up
// front; each tab loads lazily on first display.
func (model Model) enterAdmin() (tea.Model, tea.Cmd) {
	model.phase = phaseAdmin
	model.admin = newAdminModel()
	return model.openAdminTab(adminTabDashboard)
}

// setNotice records a transient status-bar message and schedules its
// removal.
func (model *Model) setNotice(text string) tea.Cmd {
	model.notice = text
	return noticeFadeCmd()
}

// View implements tea.Model. The render boundary is an exhaustive
// switch over the phase: there is no way to draw a screen for a phase
// the model is not in.
func (model Model) View() string {
	if !model.ready {
		return ""
	}

	switch model.phase {
	case phaseLoadingSession:
		return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Loading session…"))
	case phaseLogin:
		return model.login.View(model.theme, model.width, model.height)
	case phaseUser:
		return model.viewUser()
	case phaseAdmin:
		return model.viewAdmin()
	}
	return ""
}

// renderTabBar draws the header line: application name, tab labels with
// the active one highlighted, and the right-aligned identity hint.
func (model Model) renderTabBar(labels []string, active int, identity string) string {
	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Padding(0, 1)
	identityStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	var parts []string
	parts = append(parts, nameStyle.Render(" QLLNV "))
	for index, label := range labels {
		if index == active {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	right := identityStyle.Render(identity + " ")
	gap := model.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderStatusBar draws the bottom line: transient notice (if any) on
// the left, key help on the right.
func (model Model) renderStatusBar(help string) string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	noticeStyle := lipgloss.NewStyle().Foreground(model.theme.SeverityWarning)

	left := ""
	if model.notice != "" {
		left = noticeStyle.Render(" " + model.notice)
	}
	right := helpStyle.Render(help + " ")
	gap := model.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		if left != "" {
			return left
		}
		return right
	}
	return left + strings.Repeat(" ", gap) + right
}
