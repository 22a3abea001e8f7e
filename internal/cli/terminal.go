// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the typedconf CLI.
//
// Colours are used only when the destination is a terminal, unless the
// settings or environment say otherwise:
// - NO_COLOR (any non-empty value) disables colours (https://no-color.org/)
// - FORCE_COLOR (any non-empty value) enables them

package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/typedconf/internal/config"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorsEnabled decides whether output written to w should be coloured.
func colorsEnabled(w io.Writer, out config.OutputConfig, noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return out.ColorEnabled(isTerminal(w))
}

// colorProfile returns the termenv profile for the colour decision.
func colorProfile(enabled bool) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	return termenv.ANSI256
}
