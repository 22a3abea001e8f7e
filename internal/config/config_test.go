// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/typedconf"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestSetDefaults_FillsOnlyEmptyFields(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "debug"}}
	cfg.SetDefaults()

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, "monokai", cfg.Output.HighlightStyle)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Log:    LogConfig{Level: "chatty"},
		Output: OutputConfig{Color: "rainbow", HighlightStyle: "no-such-style"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidateErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)
	assert.Equal(t, "log.level", verrs[0].Context())
	assert.Equal(t, "output.color", verrs[1].Context())
	assert.Equal(t, "output.highlight_style", verrs[2].Context())
	assert.True(t, typedconf.IsKind(err, typedconf.KindValidation))
}

func TestOutputConfig_ColorEnabled(t *testing.T) {
	tests := []struct {
		color string
		tty   bool
		want  bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{"", true, true},
		{ColorAlways, false, true},
		{"ALWAYS", false, true},
		{ColorNever, true, false},
	}

	for _, tt := range tests {
		got := OutputConfig{Color: tt.color}.ColorEnabled(tt.tty)
		assert.Equal(t, tt.want, got, "color=%q tty=%v", tt.color, tt.tty)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
[log]
level = "debug"

[output]
color = "never"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ColorNever, cfg.Output.Color)
	assert.Equal(t, "monokai", cfg.Output.HighlightStyle, "defaults fill missing fields")
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": {"color": "always"}}`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Output.Color)
}

func TestLoad_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[output]
color = "sometimes"
`), 0600))

	_, err := Load(path)
	assert.True(t, typedconf.IsKind(err, typedconf.KindValidation))
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, typedconf.IsKind(err, typedconf.KindIO))
}

func TestLoad_DefaultLocationMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
