// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// loginForm is the credential entry screen shown while no session
// exists. Tab/shift+tab move between the two fields, enter submits.
type loginForm struct {
	username textinput.Model
	password textinput.Model

	// focusIndex is 0 for username, 1 for password.
	focusIndex int

	// submitting is true while a login command is in flight; input is
	// ignored until the result message arrives.
	submitting bool

	// errorText holds the last login failure, shown under the fields.
	errorText string
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{username: username, password: password}
}

// Update processes a key message. It returns the updated form and, when
// the user submitted with both fields filled, submit=true with the
// entered credentials.
func (form loginForm) Update(message tea.KeyMsg) (loginForm, bool) {
	if form.submitting {
		return form, false
	}

	switch message.Type {
	case tea.KeyTab, tea.KeyDown:
		form.setFocus((form.focusIndex + 1) % 2)
		return form, false

	case tea.KeyShiftTab, tea.KeyUp:
		form.setFocus((form.focusIndex + 1) % 2)
		return form, false

	case tea.KeyEnter:
		if form.focusIndex == 0 {
			form.setFocus(1)
			return form, false
		}
		if form.Username() == "" || form.Password() == "" {
			form.errorText = "username and password are required"
			return form, false
		}
		form.submitting = true
		form.errorText = ""
		return form, true
	}

	var command tea.Cmd
	if form.focusIndex == 0 {
		form.username, command = form.username.Update(message)
	} else {
		form.password, command = form.password.Update(message)
	}
	_ = command // textinput blink commands are not needed here
	return form, false
}

func (form *loginForm) setFocus(index int) {
	form.focusIndex = index
	if index == 0 {
		form.username.Focus()
		form.password.Blur()
	} else {
		form.username.Blur()
		form.password.Focus()
	}
}

// Username returns the trimmed username field value.
func (form loginForm) Username() string {
	return strings.TrimSpace(form.username.Value())
}

// Password returns the password field value verbatim.
func (form loginForm) Password() string {
	return form.password.Value()
}

// fail records a login failure and re-enables input.
func (form loginForm) fail(message string) loginForm {
	form.submitting = false
	form.errorText = message
	form.password.SetValue("")
	form.setFocus(1)
	return form
}

// View renders the login box centered on the screen.
func (form loginForm) View(theme tui.Theme, width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText)
	errorStyle := lipgloss.NewStyle().
		Foreground(theme.SeverityError)
	helpStyle := lipgloss.NewStyle().
		Foreground(theme.HelpText)

	var body strings.Builder
	body.WriteString(titleStyle.Render("QLLNV · Sign in"))
	body.WriteString("\n\n")
	body.WriteString(labelStyle.Render("Username"))
	body.WriteString("\n")
	body.WriteString(form.username.View())
	body.WriteString("\n\n")
	body.WriteString(labelStyle.Render("Password"))
	body.WriteString("\n")
	body.WriteString(form.password.View())
	body.WriteString("\n")

	if form.errorText != "" {
		body.WriteString("\n")
		body.WriteString(errorStyle.Render(form.errorText))
		body.WriteString("\n")
	}
	if form.submitting {
		body.WriteString("\n")
		body.WriteString(labelStyle.Render("Signing in…"))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(helpStyle.Render("Enter submit · Tab next field · Ctrl+C quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(1, 3).
		Render(body.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
