// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Root command and shared state for the typedconf CLI.
//
// Command: typedconf <command> [flags]
//
// Global flags:
//   --settings <path>   Settings file (default ~/.typedconf/settings.toml)
//   --log-level <lvl>   Override the configured log level
//   --no-color          Disable coloured output

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jeranaias/typedconf/internal/config"
	xlog "github.com/jeranaias/typedconf/internal/log"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App holds what every command needs. It is populated by the root
// command's pre-run hook.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	settingsPath string
	logLevel     string
	noColor      bool
	jsonMode     bool

	settings *config.Config
	logger   zerolog.Logger
	colors   bool
	styles   Styles
	styled   bool
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	app := &App{Stdout: stdout, Stderr: stderr, logger: zerolog.Nop()}
	root := NewRootCommand(app)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			err = &UsageError{Err: err}
		}
		app.displayError(cmd, err)
	}
	return ExitCodeFor(err)
}

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "typedconf",
		Short:         "Check and convert TOML and JSON configuration files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&app.settingsPath, "settings", "", "settings file (default ~/.typedconf/settings.toml)")
	flags.StringVar(&app.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&app.noColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&app.jsonMode, "json", false, "print a JSON response instead of text")

	root.AddCommand(
		newCheckCommand(app),
		newConvertCommand(app),
		newExampleCommand(app),
		newVersionCommand(app),
	)
	return root
}

// setup loads settings and configures logging and styles.
func (a *App) setup() error {
	settings, err := config.Load(a.settingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	a.settings = settings

	level := settings.Log.Level
	if a.logLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(a.logLevel)); err != nil {
			return &UsageError{Err: fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)}
		}
		level = strings.ToLower(a.logLevel)
	}
	xlog.Configure(xlog.Config{
		Level:   level,
		Output:  a.Stderr,
		Pretty:  settings.Log.Pretty,
		NoColor: a.noColor,
	})
	a.logger = xlog.WithComponent("cli")

	a.colors = colorsEnabled(a.Stdout, settings.Output, a.noColor)
	a.styles = newStyles(a.Stdout, a.colors)
	a.styled = true
	return nil
}

// exactArgs wraps cobra.ExactArgs so argument errors map to ExitUsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// displayError renders err once, as JSON or as a styled line on stderr.
func (a *App) displayError(cmd *cobra.Command, err error) {
	name := "typedconf"
	if cmd != nil {
		name = cmd.Name()
	}
	if a.jsonMode {
		_ = NewJSONErrorResponse(name, err).Write(a.Stdout)
		return
	}

	styles := a.styles
	if !a.styled {
		styles = newStyles(a.Stderr, false)
	}
	fmt.Fprintf(a.Stderr, "%s %s\n", styles.Error.Render("[ERROR]"), err.Error())
}

// printResult writes data as a JSON response in --json mode, otherwise runs text.
func (a *App) printResult(command string, data any, text func(w io.Writer)) error {
	if a.jsonMode {
		return NewJSONResponse(command, data).Write(a.Stdout)
	}
	text(a.Stdout)
	return nil
}
