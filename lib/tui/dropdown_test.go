// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func statusOptions() []DropdownOption {
	return []DropdownOption{
		{Label: "draft", Value: "draft"},
		{Label: "approved", Value: "approved"},
		{Label: "paid", Value: "paid"},
	}
}

func TestDropdownOverlay_CursorWraps(t *testing.T) {
	t.Parallel()

	dropdown := &DropdownOverlay{Options: statusOptions()}

	dropdown.MoveUp()
	if dropdown.Cursor != 2 {
		t.Errorf("MoveUp from 0: cursor = %d, want 2", dropdown.Cursor)
	}
	dropdown.MoveDown()
	if dropdown.Cursor != 0 {
		t.Errorf("MoveDown from last: cursor = %d, want 0", dropdown.Cursor)
	}
	dropdown.MoveDown()
	if got := dropdown.Selected().Value; got != "approved" {
		t.Errorf("Selected() = %q, want %q", got, "approved")
	}
}

func TestDropdownOverlay_ContainsAndOptionAtY(t *testing.T) {
	t.Parallel()

	dropdown := &DropdownOverlay{
		Options: statusOptions(),
		AnchorX: 10,
		AnchorY: 5,
	}
	width := dropdown.Width()

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 10, 5, true},
		{"last row", 10, 7, true},
		{"right edge inside", 10 + width - 1, 5, true},
		{"right edge outside", 10 + width, 5, false},
		{"left of anchor", 9, 5, false},
		{"above anchor", 10, 4, false},
		{"below last row", 10, 8, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := dropdown.Contains(test.x, test.y); got != test.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", test.x, test.y, got, test.want)
			}
		})
	}

	if got := dropdown.OptionAtY(5); got != 0 {
		t.Errorf("OptionAtY(5) = %d, want 0", got)
	}
	if got := dropdown.OptionAtY(7); got != 2 {
		t.Errorf("OptionAtY(7) = %d, want 2", got)
	}
	if got := dropdown.OptionAtY(8); got != -1 {
		t.Errorf("OptionAtY(8) = %d, want -1", got)
	}
	if got := dropdown.OptionAtY(4); got != -1 {
		t.Errorf("OptionAtY(4) = %d, want -1", got)
	}
}

func TestDropdownOverlay_RenderUniformWidth(t *testing.T) {
	t.Parallel()

	dropdown := &DropdownOverlay{
		Options: []DropdownOption{
			{Label: "active", Value: "active"},
			{Label: "on leave", Value: "onleave"},
			{Label: "inactive", Value: "inactive"},
		},
		Cursor: 1,
	}

	lines := dropdown.Render(DefaultTheme)
	if len(lines) != len(dropdown.Options) {
		t.Fatalf("Render produced %d lines, want %d", len(lines), len(dropdown.Options))
	}
	want := dropdown.Width()
	for index, line := range lines {
		if got := ansi.StringWidth(line); got != want {
			t.Errorf("line %d visible width = %d, want %d", index, got, want)
		}
	}
}
