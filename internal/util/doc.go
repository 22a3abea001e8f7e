// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file helpers for the typedconf command-line tool.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writing (temp file, fsync, rename)
//   - AtomicWriteFileWithDir: the same, with explicit parent directory permissions
//
// # Usage
//
//	// Write a converted configuration without ever leaving a partial file
//	err := util.AtomicWriteFile("config.toml", data, 0644)
package util
