// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestSetAndRead(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	if err := store.Set("tok-abc123", RoleUser); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := store.Token(); got != "tok-abc123" {
		t.Errorf("Token() = %q, want tok-abc123", got)
	}
	if got := store.Role(); got != RoleUser {
		t.Errorf("Role() = %q, want user", got)
	}
	if !store.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after Set")
	}
	if store.IsAdmin() {
		t.Error("IsAdmin() = true for user role")
	}
}

func TestAdminRole(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	if err := store.Set("tok-admin", RoleAdmin); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !store.IsAdmin() {
		t.Error("IsAdmin() = false for admin role")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	if err := store.Set("tok", RoleAdmin); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if store.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after Clear")
	}
	if got := store.Token(); got != "" {
		t.Errorf("Token() = %q after Clear, want empty", got)
	}
	if got := store.Role(); got != "" {
		t.Errorf("Role() = %q after Clear, want empty", got)
	}

	// Clearing twice is a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestMissingFileMeansLoggedOut(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	if store.IsAuthenticated() {
		t.Error("IsAuthenticated() = true with no session file")
	}
	if store.IsAdmin() {
		t.Error("IsAdmin() = true with no session file")
	}
}

func TestCorruptFileMeansLoggedOut(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if store.IsAuthenticated() {
		t.Error("IsAuthenticated() = true for corrupt session file")
	}
}

func TestSetRejectsEmptyToken(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	if err := store.Set("", RoleUser); err == nil {
		t.Error("Set with empty token should fail")
	}
}

func TestSetRejectsUnknownRole(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	if err := store.Set("tok", Role("superuser")); err == nil {
		t.Error("Set with unknown role should fail")
	}
}

func TestFileMode(t *testing.T) {
	t.Parallel()
	store := testStore(t)

	if err := store.Set("tok", RoleUser); err != nil {
		t.Fatalf("Set: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("session file mode = %o, want 0600", mode)
	}
}
