// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package typedconf loads TOML and JSON configuration files into
// application-defined types and validates them before handing them back.
//
// Any Go type can be loaded. Types that implement Validator have their
// invariants checked after parsing; types that implement Defaulter supply the
// values used by the example printer.
//
// # Key Types
//
//   - Error: configuration error with kind, context and cause
//   - Format: FormatTOML, FormatJSON, or FormatNone
//   - Codec: parses text into a T and validates it
//   - Loader: reads a file, picks the format and drives a Codec
//
// # Formats
//
// The format is taken from an explicit hint when one is given, otherwise
// from the file extension (.toml or .json, case-insensitive). A hint always
// wins over the extension, so a .conf file can be read as TOML.
//
// # Usage
//
// Load a validated configuration:
//
//	type ServerConfig struct {
//	    Port int `toml:"port" json:"port"`
//	}
//
//	func (c *ServerConfig) Validate() error {
//	    if c.Port <= 0 {
//	        return typedconf.NewValidationError("port", "must be positive")
//	    }
//	    return nil
//	}
//
//	cfg, err := typedconf.LoadConfig[ServerConfig]("server.toml", typedconf.FormatNone)
//	if typedconf.IsKind(err, typedconf.KindValidation) {
//	    // reject the file
//	}
//
// Print example documents for onboarding:
//
//	_ = typedconf.PrintExample[ServerConfig]()
package typedconf
