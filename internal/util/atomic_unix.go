// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package util

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// replaceFile writes data next to absPath and renames it into place.
func replaceFile(absPath string, data []byte, perm os.FileMode) error {
	pending, err := renameio.NewPendingFile(absPath, renameio.WithStaticPermissions(perm))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// No-op once the file has been committed.
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	// fsync + rename
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", absPath, err)
	}
	return nil
}
