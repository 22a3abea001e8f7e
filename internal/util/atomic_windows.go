// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// replaceFile writes data to a temp file beside absPath, syncs and closes it,
// then renames it over absPath. Windows has no renameio; os.Rename replaces
// an existing file there but the directory entry is not fsynced.
func replaceFile(absPath string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(absPath), ".tmp-"+filepath.Base(absPath)+"-")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := f.Name()

	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync data to disk: %w", err)
	}
	// Must be closed before the rename on Windows.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := os.Rename(tempPath, absPath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", absPath, err)
	}
	committed = true
	return nil
}
