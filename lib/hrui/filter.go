// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// filterModel narrows the admin tables with case-insensitive substring
// matching across each row's visible fields. The filter is client-side
// only: the tab chooses the dataset, the filter narrows it without a
// round-trip.
type filterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// Matches returns true if any of the fields contains the query. An
// empty filter matches everything.
func (filter *filterModel) Matches(fields ...string) bool {
	if filter.Input == "" {
		return true
	}
	query := strings.ToLower(filter.Input)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// HandleRune appends a character typed while the filter is active.
func (filter *filterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the filter input.
func (filter *filterModel) HandleBackspace() {
	if len(filter.Input) == 0 {
		return
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
}

// Clear resets the filter input and deactivates it.
func (filter *filterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text dimmed. When
// inactive and empty, returns "" (hidden).
func (filter *filterModel) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}
