// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui"
)

// renderBarChart draws a horizontal bar chart for one dashboard series.
// Bars scale linearly against the largest value; a zero-max series
// renders labels with empty bars rather than dividing by zero. When
// money is true, values format as VND, otherwise as plain integers.
func renderBarChart(theme tui.Theme, title string, series []hrapi.ChartData, width int, money bool) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	valueStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	barStyle := lipgloss.NewStyle().Foreground(theme.AccentColor)

	if len(series) == 0 {
		return titleStyle.Render(title) + "\n" +
			valueStyle.Render("  no data")
	}

	labelWidth := 0
	maxValue := 0.0
	for _, point := range series {
		if len(point.Name) > labelWidth {
			labelWidth = len(point.Name)
		}
		if point.Value > maxValue {
			maxValue = point.Value
		}
	}
	if labelWidth > 20 {
		labelWidth = 20
	}

	// Budget: label + space + bar + space + value.
	valueWidth := 12
	if money {
		valueWidth = 16
	}
	barBudget := width - labelWidth - valueWidth - 4
	if barBudget < 4 {
		barBudget = 4
	}

	lines := []string{titleStyle.Render(title)}
	for _, point := range series {
		name := point.Name
		if len(name) > labelWidth {
			name = name[:labelWidth-1] + "…"
		}

		barLength := 0
		if maxValue > 0 {
			barLength = int(point.Value / maxValue * float64(barBudget))
		}
		if point.Value > 0 && barLength == 0 {
			barLength = 1
		}

		value := fmt.Sprintf("%.0f", point.Value)
		if money {
			value = FormatVND(point.Value)
		}

		// Pad the raw name before styling: escape sequences must not
		// count toward the column width.
		paddedName := fmt.Sprintf("%-*s", labelWidth, name)
		lines = append(lines, "  "+
			labelStyle.Render(paddedName)+" "+
			barStyle.Render(strings.Repeat("█", barLength))+" "+
			valueStyle.Render(value))
	}
	return strings.Join(lines, "\n")
}
