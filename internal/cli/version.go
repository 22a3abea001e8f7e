// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo is the --json payload of the version command.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:   Version,
				GitCommit: GitCommit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			return app.printResult("version", info, func(w io.Writer) {
				fmt.Fprintf(w, "typedconf %s\n", info.Version)
				fmt.Fprintf(w, "  %s %s\n", app.styles.Label.Render("Commit:"), info.GitCommit)
				fmt.Fprintf(w, "  %s %s\n", app.styles.Label.Render("Built:"), info.BuildDate)
				fmt.Fprintf(w, "  %s %s\n", app.styles.Label.Render("Go:"), info.GoVersion)
				fmt.Fprintf(w, "  %s %s\n", app.styles.Label.Render("Platform:"), info.Platform)
			})
		},
	}
}
