// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config holds the settings of the typedconf command-line tool.
//
// The settings file is itself loaded with typedconf, so it may be TOML or
// JSON; the extension decides.
//
// # Key Types
//
//   - Config: tool settings (logging, output colour)
//   - LogConfig: log level and console formatting
//   - OutputConfig: colour mode and syntax highlighting style
//
// # Configuration Location
//
// Settings are read from (first match wins):
//   - the --settings flag
//   - ~/.typedconf/settings.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	colour := cfg.Output.ColorEnabled(isTTY)
package config
