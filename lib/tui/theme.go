// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and visual properties for the HR
// console's terminal UI. All colors use lipgloss ANSI 256-color codes
// for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and semantic categories that recur across screens: record statuses
// (paid, pending, draft, active, inactive) and notification severities
// (info, warning, success, error).
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Record status colors. Paid doubles as active/approved (the
	// "settled, good" states), Pending as processing/draft/onleave
	// (the "in flight" states), Inactive for terminal dim states.
	StatusPaid       lipgloss.Color
	StatusPending    lipgloss.Color
	StatusProcessing lipgloss.Color
	StatusInactive   lipgloss.Color

	// Notification severity colors.
	SeverityInfo    lipgloss.Color
	SeverityWarning lipgloss.Color
	SeveritySuccess lipgloss.Color
	SeverityError   lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color // Focused elements and chart bars.

	// Animation accents: background tint for recently-changed rows.
	// HotAccentPut is used for created/updated records; HotAccentRemove
	// for records that left the view.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Overlay boxes (forms, confirmations, dropdowns).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// StatusColor returns the color for a record status string. Recognizes
// the payment, payroll, and employee status vocabularies; unknown
// values render faint.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case "paid", "active", "approved":
		return theme.StatusPaid
	case "pending", "draft", "onleave":
		return theme.StatusPending
	case "processing":
		return theme.StatusProcessing
	case "inactive":
		return theme.StatusInactive
	default:
		return theme.FaintText
	}
}

// SeverityColor returns the color for a notification type. Unknown
// types render as info.
func (theme Theme) SeverityColor(notificationType string) lipgloss.Color {
	switch notificationType {
	case "warning":
		return theme.SeverityWarning
	case "success":
		return theme.SeveritySuccess
	case "error":
		return theme.SeverityError
	default:
		return theme.SeverityInfo
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusPaid:       lipgloss.Color("114"), // green
	StatusPending:    lipgloss.Color("220"), // yellow/amber
	StatusProcessing: lipgloss.Color("75"),  // blue
	StatusInactive:   lipgloss.Color("245"), // gray

	SeverityInfo:    lipgloss.Color("75"),  // blue
	SeverityWarning: lipgloss.Color("208"), // orange
	SeveritySuccess: lipgloss.Color("114"), // green
	SeverityError:   lipgloss.Color("196"), // red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	AccentColor:      lipgloss.Color("75"), // blue

	HotAccentPut:    lipgloss.Color("58"), // dark amber background tint
	HotAccentRemove: lipgloss.Color("52"), // dark red background tint

	OverlayForeground: lipgloss.Color("252"), // same as NormalText
	OverlayBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
