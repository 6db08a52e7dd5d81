// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package session persists the operator's authentication state between
// invocations. The session is a single JSON file holding the bearer token
// and the role the backend declared at login. Analogous to SSH keys:
// log in once via "qllnv login", then every command and the TUI pick the
// session up transparently.
//
// Reads always go to the file; there is no in-memory copy to drift out
// of sync. The auth flow is the only writer.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Role is the access level the backend declared for the session.
type Role string

const (
	// RoleAdmin grants access to the administrator console.
	RoleAdmin Role = "admin"
	// RoleUser grants access to employee self-service only.
	RoleUser Role = "user"
)

// Store reads and writes the session file at a fixed path. The path is
// bound at construction so tests can point the store at a throwaway
// directory instead of the operator's real config.
type Store struct {
	path string
}

// state is the on-disk session format.
type state struct {
	// Token is the bearer credential sent with every authenticated
	// request. Opaque to the client.
	Token string `json:"token"`

	// Role is the role the backend declared at login.
	Role Role `json:"role"`
}

// FilePath returns the default session file path. Checks the
// QLLNV_SESSION_FILE environment variable first, then falls back to
// ~/.config/qllnv/session.json (honoring XDG_CONFIG_HOME).
func FilePath() string {
	if envPath := os.Getenv("QLLNV_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback; this should rarely happen.
			return filepath.Join("/tmp", "qllnv-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "qllnv", "session.json")
}

// NewStore creates a Store bound to the given file path. Pass
// FilePath() for the operator's real session.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store is bound to.
func (store *Store) Path() string {
	return store.path
}

// Set writes the token and role together. The file is written with mode
// 0600 (owner-only read/write) since it contains the access token; the
// parent directory is created with mode 0700 if missing.
func (store *Store) Set(token string, role Role) error {
	if token == "" {
		return fmt.Errorf("session: refusing to store an empty token")
	}
	if role != RoleAdmin && role != RoleUser {
		return fmt.Errorf("session: unknown role %q", role)
	}

	data, err := json.MarshalIndent(state{Token: token, Role: role}, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshaling: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("session: creating directory %s: %w", directory, err)
	}
	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("session: writing %s: %w", store.path, err)
	}
	return nil
}

// Clear removes the session file. Token and role disappear together;
// there is no state where one survives the other. A missing file is not
// an error: clearing an already-cleared session is a no-op.
func (store *Store) Clear() error {
	err := os.Remove(store.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: removing %s: %w", store.path, err)
	}
	return nil
}

// load reads the session file. A missing or unreadable file yields the
// zero state: the caller is simply not authenticated.
func (store *Store) load() state {
	data, err := os.ReadFile(store.path)
	if err != nil {
		return state{}
	}
	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		// Corrupt session file: treat as logged out rather than
		// failing every command until the operator deletes it by hand.
		return state{}
	}
	return s
}

// Token returns the stored bearer token, or "" when not authenticated.
func (store *Store) Token() string {
	return store.load().Token
}

// Role returns the stored role, or "" when not authenticated.
func (store *Store) Role() Role {
	return store.load().Role
}

// IsAuthenticated reports whether a token is stored.
func (store *Store) IsAuthenticated() bool {
	return store.load().Token != ""
}

// IsAdmin reports whether the stored session carries the admin role.
func (store *Store) IsAdmin() bool {
	s := store.load()
	return s.Token != "" && s.Role == RoleAdmin
}
