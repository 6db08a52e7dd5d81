// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"payments", "paymnets", 2},
		{"salary", "salry", 1},
		{"passwd", "paswd", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"→"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "login"},
		{Name: "logout"},
		{Name: "salary"},
		{Name: "payments"},
		{Name: "notifications"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"salry", "salary"},              // missing letter
		{"paymnets", "payments"},         // transposition
		{"loginn", "login"},              // extra letter
		{"lgout", "logout"},              // missing letter
		{"zzzzzzzzz", ""},                // nothing close
		{"notifcation", "notifications"}, // two edits away
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("password-file", "", "")
		flagSet.String("mark-read", "", "")
		flagSet.Bool("mark-all-read", false, "")
		flagSet.Bool("json", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "close typo with double dash",
			args: []string{"--pasword-file"},
			want: "--password-file",
		},
		{
			name: "close typo with single dash",
			args: []string{"-jsno"},
			want: "--json",
		},
		{
			name: "typo with value",
			args: []string{"--mark-raed=n42"},
			want: "--mark-read",
		},
		{
			name: "defined flag yields no suggestion",
			args: []string{"--json"},
			want: "",
		},
		{
			name: "nothing close",
			args: []string{"--zzzzzzzzzz"},
			want: "",
		},
		{
			name: "positional args ignored",
			args: []string{"n42"},
			want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, makeFlagSet())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
