// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

import (
	"context"
	"net/http"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// LoginResult is the normalized outcome of a successful login.
type LoginResult struct {
	Token string
	Role  session.Role

	// Employee is the caller's own profile when the backend includes it
	// (it does for the user role; admins have no employee record).
	Employee *Employee
}

// loginData is the wire payload of POST /auth/login.
type loginData struct {
	Token    string       `json:"token"`
	Role     session.Role `json:"role"`
	Employee *Employee    `json:"employee,omitempty"`
}

// Login exchanges credentials for a session. On success the token and
// role are persisted to the session store before returning, so a
// subsequent IsAuthenticated() is already true.
func (client *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" {
		return nil, Validationf("login: username is required")
	}
	if password == "" {
		return nil, Validationf("login: password is required")
	}

	body := map[string]string{"username": username, "password": password}
	data, err := call[loginData](client, ctx, "login", http.MethodPost, "/auth/login", body, false)
	if err != nil {
		return nil, err
	}

	if data.Token == "" {
		return nil, &ServerError{Op: "login", Message: "backend returned no token"}
	}
	role := data.Role
	if role != session.RoleAdmin && role != session.RoleUser {
		return nil, &ServerError{Op: "login", Message: "backend returned unknown role " + string(role)}
	}

	if err := client.store.Set(data.Token, role); err != nil {
		return nil, err
	}

	return &LoginResult{Token: data.Token, Role: role, Employee: data.Employee}, nil
}

// Logout ends the session. The local session is cleared unconditionally:
// the server-side call is best-effort and a network failure never blocks
// logging out. Returns an error only when clearing the local session
// file itself fails.
func (client *Client) Logout(ctx context.Context) error {
	if client.store.Token() != "" {
		// Best-effort server notification. The response, whether success,
		// rejection, or transport failure, does not matter.
		response, err := client.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, true)
		if err == nil {
			response.Body.Close()
		}
	}
	return client.store.Clear()
}

// ValidatePasswordChange applies the local password rules. It returns a
// ValidationError describing the first violated rule, or nil. No network
// traffic is involved; ChangePassword calls this before the request.
func ValidatePasswordChange(current, newPassword, confirm string) error {
	if current == "" {
		return Validationf("current password is required")
	}
	if len(newPassword) < 8 {
		return Validationf("new password must be at least 8 characters")
	}
	if newPassword != confirm {
		return Validationf("password confirmation does not match")
	}
	if newPassword == current {
		return Validationf("new password must differ from the current password")
	}
	return nil
}

// ChangePassword validates locally, then asks the backend to change the
// password. A backend rejection surfaces its message verbatim.
func (client *Client) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if err := ValidatePasswordChange(current, newPassword, confirm); err != nil {
		return err
	}
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     newPassword,
	}
	return callNoResult(client, ctx, "change password", http.MethodPost, "/auth/change-password", body)
}
