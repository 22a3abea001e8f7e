// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// check.go - Check command implementation.
//
// Command: check <file>
// Short:   Verify that a configuration file parses
//
// Examples:
//   typedconf check config.toml
//   typedconf check service.conf --format toml
//   typedconf check config.json --json

package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jeranaias/typedconf"
)

// CheckResult is the --json payload of the check command.
type CheckResult struct {
	Path   string   `json:"path"`
	Format string   `json:"format"`
	Keys   []string `json:"keys"`
}

func newCheckCommand(app *App) *cobra.Command {
	var format typedconf.Format

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Verify that a TOML or JSON file parses",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runCheck(args[0], format)
		},
	}
	cmd.Flags().Var(&format, "format", "force the format (toml or json) instead of using the extension")
	return cmd
}

func (a *App) runCheck(path string, hint typedconf.Format) error {
	loader := typedconf.NewLoader[map[string]any](typedconf.WithLogger(a.logger))

	doc, err := loader.Load(path, hint)
	if err != nil {
		return err
	}

	result := CheckResult{
		Path:   path,
		Format: typedconf.DetectFormat(path, hint).String(),
		Keys:   topLevelKeys(doc),
	}
	return a.printResult("check", result, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s is valid %s\n",
			a.styles.renderStatus(true),
			a.styles.Path.Render(path),
			a.styles.Dim.Render(fmt.Sprintf("(%s, %d top-level keys)", result.Format, len(result.Keys))))
	})
}

func topLevelKeys(doc map[string]any) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
