// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/typedconf"
	"github.com/jeranaias/typedconf/internal/config"
)

// newExampleCommand prints the settings file reference in both formats.
func newExampleCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example settings file as JSON and TOML",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.colors {
				return typedconf.WriteExample[config.Config](app.Stdout)
			}
			return app.writeHighlightedExample()
		},
	}
}

// writeHighlightedExample prints the same blocks as WriteExample with each
// document syntax highlighted.
func (a *App) writeHighlightedExample() error {
	jsonDoc, tomlDoc, err := typedconf.ExampleDocuments[config.Config]()
	if err != nil {
		return err
	}

	style := a.settings.Output.HighlightStyle
	var b strings.Builder
	b.WriteString("JSON example:\n")
	b.WriteString(highlight(string(jsonDoc), typedconf.FormatJSON, style))
	b.WriteString("\nTOML example:\n")
	b.WriteString(highlight(string(tomlDoc), typedconf.FormatTOML, style))

	_, err = io.WriteString(a.Stdout, b.String())
	return err
}
