// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Format is a supported configuration text encoding.
type Format int

const (
	// FormatNone means no format: either no hint was given or the extension
	// is not recognised.
	FormatNone Format = iota
	// FormatTOML is TOML (.toml).
	FormatTOML
	// FormatJSON is JSON (.json).
	FormatJSON
)

var extensionFormats = map[string]Format{
	"toml": FormatTOML,
	"json": FormatJSON,
}

// FormatFromExtension maps a file extension (without the leading dot) to a
// Format, ignoring ASCII case. Anything other than toml or json yields
// FormatNone, including non-ASCII look-alikes such as "jſon".
func FormatFromExtension(ext string) Format {
	if !isASCII(ext) {
		return FormatNone
	}
	return extensionFormats[cases.Fold().String(ext)]
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// formatFromPath infers the format from path's extension.
func formatFromPath(path string) Format {
	return FormatFromExtension(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DetectFormat returns the format a Loader uses for path: hint when it is
// not FormatNone, otherwise the format named by the extension.
func DetectFormat(path string, hint Format) Format {
	if hint != FormatNone {
		return hint
	}
	return formatFromPath(path)
}

// ParseFormat parses a format name such as "toml" or "JSON".
func ParseFormat(name string) (Format, error) {
	f := FormatFromExtension(strings.TrimSpace(name))
	if f == FormatNone {
		return FormatNone, fmt.Errorf("unsupported format %q (want toml or json)", name)
	}
	return f, nil
}

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "none"
	}
}

// Set implements pflag.Value so a Format can back a --format flag.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }
