// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for the typedconf CLI.
//
// Styles are bound to a lipgloss renderer per output stream so that piping
// stdout never leaks escape codes into a converted document.

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of styles used by every command.
type Styles struct {
	// Success is used for OK statuses. Green (#42)
	Success lipgloss.Style
	// Error is used for failures. Red (#196)
	Error lipgloss.Style
	// Label is used for field labels. Light gray (#245)
	Label lipgloss.Style
	// Path is used for file paths. Light gray italic
	Path lipgloss.Style
	// Dim is used for secondary information. Dim gray (#242)
	Dim lipgloss.Style
}

// newStyles builds styles rendered for w.
func newStyles(w io.Writer, colors bool) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(colors))

	return Styles{
		Success: r.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("245")),
		Path: r.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),
		Dim: r.NewStyle().
			Foreground(lipgloss.Color("242")),
	}
}

// renderStatus renders a status tag: [OK] or [FAIL].
func (s Styles) renderStatus(ok bool) string {
	if ok {
		return s.Success.Render("[OK]")
	}
	return s.Error.Render("[FAIL]")
}
