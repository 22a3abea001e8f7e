// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the typedconf command-line tool.
//
// # Key Types
//
//   - App: output streams, settings and logger shared by all commands
//   - JSONResponse: machine-readable envelope for --json output
//   - UsageError, CommandError: error types mapped to exit codes
//
// # Commands
//
//   - check: load a TOML or JSON file and report whether it parses
//   - convert: re-encode a file from TOML to JSON or back
//   - example: print example settings documents
//   - version: print build information
//
// # Usage
//
//	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
package cli
