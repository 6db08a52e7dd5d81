// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the HR console. Built on bubbletea (Elm architecture), these
// components handle common patterns like dropdown overlays, modal
// splicing, scrollbars, change animation, and ANSI-aware text
// manipulation.
//
// The screens in lib/hrui import this package for consistent look and
// behavior: same theme, same keyboard conventions, same overlay
// mechanics. Each screen owns its own data source, layout, and
// domain-specific rendering.
package tui
