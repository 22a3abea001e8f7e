// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "app.toml", "timeout = 30\n")

	cfg, err := LoadConfig[timeoutConfig](path, FormatNone)
	require.NoError(t, err)
	assert.Equal(t, timeoutConfig{Timeout: 30}, cfg)
}

func TestLoadConfig_JSONValidationError(t *testing.T) {
	path := writeFile(t, "app.json", `{"timeout": -1}`)

	_, err := LoadConfig[nonNegativeTimeout](path, FormatNone)
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindValidation, cerr.Kind())
	assert.Equal(t, "timeout", cerr.Context(), "validation errors pass through unmodified")
}

func TestLoadConfig_ValidationErrorIsNotWrapped(t *testing.T) {
	path := writeFile(t, "app.toml", `name = "x"`)

	_, err := LoadConfig[alwaysInvalid](path, FormatNone)
	assert.Same(t, errAlwaysInvalid, err)
}

func TestLoadConfig_CaseInsensitiveExtension(t *testing.T) {
	for _, name := range []string{"a.TOML", "b.Toml", "c.toml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "timeout = 1")
			cfg, err := LoadConfig[timeoutConfig](path, FormatNone)
			require.NoError(t, err)
			assert.Equal(t, 1, cfg.Timeout)
		})
	}
}

func TestLoadConfig_HintOverridesExtension(t *testing.T) {
	// TOML content in a .json file: only a TOML parse can succeed.
	path := writeFile(t, "x.json", "timeout = 12\n")

	cfg, err := LoadConfig[timeoutConfig](path, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Timeout)

	_, err = LoadConfig[timeoutConfig](path, FormatNone)
	assert.True(t, IsKind(err, KindJSONParse), "without a hint the extension decides")

	// JSON content in a .json file, forced to TOML, fails as TOML.
	jsonPath := writeFile(t, "y.json", `{"timeout": 12}`)
	_, err = LoadConfig[timeoutConfig](jsonPath, FormatTOML)
	assert.True(t, IsKind(err, KindTOMLParse))
}

func TestLoadConfig_HintForUnknownExtension(t *testing.T) {
	path := writeFile(t, "service.conf", "timeout = 9")

	cfg, err := LoadConfig[timeoutConfig](path, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Timeout)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	// The extension is unknown too: the I/O failure must win.
	path := filepath.Join(t.TempDir(), "missing.conf")

	_, err := LoadConfig[timeoutConfig](path, FormatNone)
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindIO, cerr.Kind())
	assert.Equal(t, path, cerr.Context())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadConfig_UnknownExtension(t *testing.T) {
	for _, name := range []string{"app.yaml", "app", "app.conf", "app.jſon"} {
		t.Run(name, func(t *testing.T) {
			// Content that would parse as TOML proves no parse was attempted.
			path := writeFile(t, name, "timeout = 1")

			_, err := LoadConfig[timeoutConfig](path, FormatNone)
			require.Error(t, err)

			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, KindFormat, cerr.Kind())
			assert.Equal(t, path, cerr.Context())
			assert.ErrorIs(t, err, ErrUnknownFormat)
		})
	}
}

func TestLoadConfig_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.toml", "name = \"\xff\xfe\"")

	_, err := LoadConfig[alwaysInvalid](path, FormatNone)
	assert.True(t, IsKind(err, KindIO))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestLoadConfig_ParseErrorCarriesPath(t *testing.T) {
	path := writeFile(t, "broken.toml", "timeout = ")

	_, err := LoadConfig[timeoutConfig](path, FormatNone)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindTOMLParse, cerr.Kind())
	assert.Equal(t, path, cerr.Context())
	assert.NotNil(t, cerr.Unwrap())
}

func TestLoader_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/app.json": {Data: []byte(`{"timeout": 4}`)},
		"conf/bad.json": {Data: []byte(`{"timeout": 4, "extra": true}`)},
		"conf/neg.toml": {Data: []byte(`timeout = -4`)},
	}

	loader := NewLoader[nonNegativeTimeout](WithFS(fsys), WithStrict(true))

	cfg, err := loader.Load("conf/app.json", FormatNone)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Timeout)

	_, err = loader.Load("conf/bad.json", FormatNone)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = loader.Load("conf/neg.toml", FormatNone)
	assert.True(t, IsKind(err, KindValidation))

	_, err = loader.Load("conf/none.toml", FormatNone)
	assert.True(t, IsKind(err, KindIO))
}

func TestLoader_Parse(t *testing.T) {
	loader := NewLoader[nonNegativeTimeout]()

	cfg, err := loader.Parse(`{"timeout": 3}`, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Timeout)

	_, err = loader.Parse("timeout = -3", FormatTOML)
	assert.True(t, IsKind(err, KindValidation))

	_, err = loader.Parse("timeout = 3", FormatNone)
	assert.True(t, IsKind(err, KindFormat))
}

func TestLoader_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	path := writeFile(t, "app.toml", "timeout = 30")

	_, err := NewLoader[timeoutConfig](WithLogger(logger)).Load(path, FormatNone)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"format":"toml"`)
	assert.Contains(t, buf.String(), "config loaded")

	buf.Reset()
	_, err = NewLoader[timeoutConfig](WithLogger(logger)).Load(path+".missing", FormatNone)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "config read failed")
}

func TestLoader_ConcurrentLoads(t *testing.T) {
	tomlPath := writeFile(t, "a.toml", "timeout = 1")
	jsonPath := writeFile(t, "b.json", `{"timeout": 2}`)
	loader := NewLoader[timeoutConfig]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cfg, err := loader.Load(tomlPath, FormatNone)
			assert.NoError(t, err)
			assert.Equal(t, 1, cfg.Timeout)
		}()
		go func() {
			defer wg.Done()
			cfg, err := loader.Load(jsonPath, FormatNone)
			assert.NoError(t, err)
			assert.Equal(t, 2, cfg.Timeout)
		}()
	}
	wg.Wait()
}
