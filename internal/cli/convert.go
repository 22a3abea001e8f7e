// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert.go - Convert command implementation.
//
// Command: convert <file>
// Short:   Re-encode a configuration file as TOML or JSON
//
// Flags:
//   --to <format>       Target format (default: the other one)
//   --format <format>   Source format, overriding the extension
//   -o, --output <path> Write to a file instead of stdout
//
// Examples:
//   typedconf convert config.toml
//   typedconf convert config.json --to toml -o config.toml

package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/jeranaias/typedconf"
	"github.com/jeranaias/typedconf/internal/util"
)

// ConvertResult is the --json payload of the convert command.
type ConvertResult struct {
	Source string `json:"source"`
	From   string `json:"from"`
	To     string `json:"to"`
	Output string `json:"output,omitempty"`
	Bytes  int    `json:"bytes"`
}

type convertOptions struct {
	from   typedconf.Format
	to     typedconf.Format
	output string
}

func newConvertCommand(app *App) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode a configuration file as TOML or JSON",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runConvert(args[0], opts)
		},
	}
	cmd.Flags().Var(&opts.from, "format", "source format (toml or json), overriding the extension")
	cmd.Flags().Var(&opts.to, "to", "target format (default: the other format)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func (a *App) runConvert(path string, opts convertOptions) error {
	loader := typedconf.NewLoader[map[string]any](typedconf.WithLogger(a.logger))

	doc, err := loader.Load(path, opts.from)
	if err != nil {
		return err
	}

	from := typedconf.DetectFormat(path, opts.from)
	to := opts.to
	if to == typedconf.FormatNone {
		to = oppositeFormat(from)
	}

	out, err := typedconf.Marshal(normalizeNumbers(doc), to)
	if err != nil {
		return err
	}

	result := ConvertResult{
		Source: path,
		From:   from.String(),
		To:     to.String(),
		Output: opts.output,
		Bytes:  len(out),
	}

	if opts.output != "" {
		if err := util.AtomicWriteFile(opts.output, out, 0o644); err != nil {
			return NewCommandError("convert", "write", opts.output, err)
		}
		a.logger.Info().Str("output", opts.output).Stringer("to", to).Msg("converted config written")
		return a.printResult("convert", result, func(w io.Writer) {
			fmt.Fprintf(w, "%s %s -> %s\n",
				a.styles.renderStatus(true),
				a.styles.Path.Render(path),
				a.styles.Path.Render(opts.output))
		})
	}

	if a.jsonMode {
		return NewJSONResponse("convert", result).Write(a.Stdout)
	}
	text := string(out)
	if a.colors {
		text = highlight(text, to, a.settings.Output.HighlightStyle)
	}
	_, err = io.WriteString(a.Stdout, text)
	return err
}

func oppositeFormat(f typedconf.Format) typedconf.Format {
	if f == typedconf.FormatJSON {
		return typedconf.FormatTOML
	}
	return typedconf.FormatJSON
}

// normalizeNumbers turns integral float64 values from JSON decoding into
// int64 so they are written as TOML integers rather than floats.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, elem := range t {
			t[k] = normalizeNumbers(elem)
		}
		return t
	case []any:
		for i, elem := range t {
			t[i] = normalizeNumbers(elem)
		}
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	default:
		return v
	}
}
