// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// passwordForm is the change-password screen: current, new, and confirm
// fields with local rule validation before any network call.
type passwordForm struct {
	fields     [3]textinput.Model
	focusIndex int
	submitting bool
	errorText  string
	// successText is shown after a confirmed change; the fields reset.
	successText string
}

func newPasswordForm() passwordForm {
	var form passwordForm
	placeholders := [3]string{"current password", "new password (min 8 characters)", "confirm new password"}
	for index := range form.fields {
		input := textinput.New()
		input.Placeholder = placeholders[index]
		input.CharLimit = 128
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
		form.fields[index] = input
	}
	form.fields[0].Focus()
	return form
}

func (form passwordForm) Current() string { return form.fields[0].Value() }
func (form passwordForm) New() string     { return form.fields[1].Value() }
func (form passwordForm) Confirm() string { return form.fields[2].Value() }

// Update processes a key message. Returns the updated form and, when
// the local rules pass on submit, submit=true. Rule violations stay in
// the form without generating any command.
func (form passwordForm) Update(message tea.KeyMsg) (passwordForm, bool) {
	if form.submitting {
		return form, false
	}

	switch message.Type {
	case tea.KeyTab, tea.KeyDown:
		form.setFocus((form.focusIndex + 1) % 3)
		return form, false

	case tea.KeyShiftTab, tea.KeyUp:
		form.setFocus((form.focusIndex + 2) % 3)
		return form, false

	case tea.KeyEnter:
		if form.focusIndex < 2 {
			form.setFocus(form.focusIndex + 1)
			return form, false
		}
		if err := hrapi.ValidatePasswordChange(form.Current(), form.New(), form.Confirm()); err != nil {
			form.errorText = err.Error()
			form.successText = ""
			return form, false
		}
		form.submitting = true
		form.errorText = ""
		form.successText = ""
		return form, true
	}

	var command tea.Cmd
	form.fields[form.focusIndex], command = form.fields[form.focusIndex].Update(message)
	_ = command
	return form, false
}

func (form *passwordForm) setFocus(index int) {
	form.focusIndex = index
	for fieldIndex := range form.fields {
		if fieldIndex == index {
			form.fields[fieldIndex].Focus()
		} else {
			form.fields[fieldIndex].Blur()
		}
	}
}

// fail records a backend rejection and re-enables input. The current
// password field resets; the backend message shows verbatim.
func (form passwordForm) fail(message string) passwordForm {
	form.submitting = false
	form.errorText = message
	form.fields[0].SetValue("")
	form.setFocus(0)
	return form
}

// succeed resets the form and shows a confirmation line.
func (form passwordForm) succeed() passwordForm {
	fresh := newPasswordForm()
	fresh.successText = "Password changed."
	return fresh
}

// View renders the password form.
func (form passwordForm) View(theme tui.Theme, width int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	errorStyle := lipgloss.NewStyle().Foreground(theme.SeverityError)
	successStyle := lipgloss.NewStyle().Foreground(theme.SeveritySuccess)

	labels := [3]string{"Current password", "New password", "Confirm new password"}

	var body strings.Builder
	body.WriteString(titleStyle.Render("Change password"))
	body.WriteString("\n\n")
	for index := range form.fields {
		body.WriteString(labelStyle.Render(labels[index]))
		body.WriteString("\n")
		body.WriteString(form.fields[index].View())
		body.WriteString("\n\n")
	}

	if form.errorText != "" {
		body.WriteString(errorStyle.Render(form.errorText))
		body.WriteString("\n")
	}
	if form.successText != "" {
		body.WriteString(successStyle.Render(form.successText))
		body.WriteString("\n")
	}
	if form.submitting {
		body.WriteString(labelStyle.Render("Submitting…"))
		body.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(1, 3).
		Render(body.String())

	return "\n" + lipgloss.NewStyle().MarginLeft(1).MaxWidth(width).Render(box)
}
