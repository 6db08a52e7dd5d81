// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package hrui implements the interactive terminal interface for the
// HR system. Built on bubbletea (Elm architecture), it is a thin
// presentation layer over the REST backend: all records live on the
// server and reach the screens through the typed client in
// [github.com/tuananhletrong12-max/QLLNV-code-git/lib/hrapi].
//
// The root [Model] is a small state machine. It starts by reading the
// session file, then lands on the login form, the employee self-service
// screens, or the admin console depending on the stored role. Logout
// from either authenticated phase returns to login; there is no other
// exit.
//
// Every fetch command carries the generation counter current when it
// was issued. Login and logout bump the counter, so responses that
// arrive after a phase change are recognized as stale and dropped
// instead of corrupting the new phase's view.
//
// Generic widgets (theme palette, overlay splicing, dropdowns,
// scrollbars, change animation) live in
// [github.com/tuananhletrong12-max/QLLNV-code-git/lib/tui].
package hrui
