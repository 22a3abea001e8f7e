// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog"

	"github.com/jeranaias/typedconf"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Color modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the typedconf tool settings.
type Config struct {
	// Logging configuration
	Log LogConfig `toml:"log" json:"log"`

	// Output configuration
	Output OutputConfig `toml:"output" json:"output"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is a zerolog level name: "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level"`
	// Pretty writes human-readable console lines instead of JSON
	Pretty bool `toml:"pretty" json:"pretty"`
}

// OutputConfig contains terminal output configuration.
type OutputConfig struct {
	// Color is "auto" (colour on a TTY), "always" or "never"
	Color string `toml:"color" json:"color"`
	// HighlightStyle is a chroma style name used for converted documents
	HighlightStyle string `toml:"highlight_style" json:"highlight_style"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
		Output: OutputConfig{
			Color:          ColorAuto,
			HighlightStyle: "monokai",
		},
	}
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Output.Color == "" {
		c.Output.Color = defaults.Output.Color
	}
	if c.Output.HighlightStyle == "" {
		c.Output.HighlightStyle = defaults.Output.HighlightStyle
	}
}

// ColorEnabled resolves the colour mode against whether output is a terminal.
func (o OutputConfig) ColorEnabled(isTTY bool) bool {
	switch strings.ToLower(o.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the typedconf configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".typedconf"), nil
}

// ConfigPath returns the path to the default settings file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads settings from path. An empty path means the default location,
// where a missing file is not an error and yields Default(). An explicit
// path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg, err := typedconf.LoadConfig[Config](path, typedconf.FormatNone)
	if err != nil {
		if !explicit && typedconf.IsKind(err, typedconf.KindIO) && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg.SetDefaults()
	return &cfg, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidateErrors is a collection of validation errors.
type ValidateErrors []*typedconf.Error

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes each error so typedconf.KindOf finds the first one.
func (e ValidateErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// Validate validates the settings. Empty values are accepted; they are
// filled in by SetDefaults after loading.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			errs = append(errs, typedconf.NewValidationError("log.level",
				fmt.Sprintf("invalid level '%s', must be one of: trace, debug, info, warn, error, fatal, panic, disabled", c.Log.Level)))
		}
	}

	switch strings.ToLower(c.Output.Color) {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, typedconf.NewValidationError("output.color",
			fmt.Sprintf("invalid mode '%s', must be one of: auto, always, never", c.Output.Color)))
	}

	if c.Output.HighlightStyle != "" {
		if !knownStyle(c.Output.HighlightStyle) {
			errs = append(errs, typedconf.NewValidationError("output.highlight_style",
				fmt.Sprintf("unknown style '%s'", c.Output.HighlightStyle)))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func knownStyle(name string) bool {
	if _, ok := styles.Registry[name]; ok {
		return true
	}
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}
