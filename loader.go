// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"
)

// Loader reads, parses and validates configuration files into a T.
// A Loader holds only its options and is safe for concurrent use.
type Loader[T any] struct {
	codec *Codec[T]
	opts  options
}

// NewLoader returns a Loader for T.
func NewLoader[T any](opts ...Option) *Loader[T] {
	o := newOptions(opts)
	return &Loader[T]{codec: &Codec[T]{opts: o}, opts: o}
}

// LoadConfig reads the file at path, parses it and returns the validated T.
//
// The format is hint when hint is not FormatNone, otherwise it is inferred
// from the file extension (.toml or .json, any case).
func LoadConfig[T any](path string, hint Format) (T, error) {
	return NewLoader[T]().Load(path, hint)
}

// Load reads the file at path, parses it in the effective format and
// validates the result.
//
// Errors:
//   - KindIO if the file cannot be read or is not UTF-8; no parse is attempted.
//   - KindFormat if neither hint nor extension names a format.
//   - KindTOMLParse / KindJSONParse if decoding fails.
//   - whatever the type's Validate returns, unmodified.
func (l *Loader[T]) Load(path string, hint Format) (T, error) {
	var zero T
	logger := l.opts.logger.With().Str("path", path).Logger()

	data, err := l.readFile(path)
	if err != nil {
		logger.Warn().Err(err).Msg("config read failed")
		return zero, err
	}

	format := DetectFormat(path, hint)
	if format == FormatNone {
		ferr := NewError("unknown configuration format").
			WithKind(KindFormat).
			WithContext(path).
			WithCause(ErrUnknownFormat)
		logger.Warn().Err(ferr).Msg("config format not recognised")
		return zero, ferr
	}
	logger.Debug().
		Stringer("format", format).
		Bool("hinted", hint != FormatNone).
		Int("bytes", len(data)).
		Msg("parsing config")

	cfg, err := l.codec.decodeBytes(data, format)
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) && cerr.Context() == "" {
			err = cerr.WithContext(path)
		}
		logger.Warn().Err(err).Msg("config parse failed")
		return zero, err
	}

	cfg, err = l.codec.ValidateAndBuild(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("config validation failed")
		return zero, err
	}
	logger.Debug().Msg("config loaded")
	return cfg, nil
}

// Parse parses raw text in format f and validates the result.
func (l *Loader[T]) Parse(text string, f Format) (T, error) {
	cfg, err := l.codec.decodeBytes([]byte(text), f)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.codec.ValidateAndBuild(cfg)
}

func (l *Loader[T]) readFile(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if l.opts.fsys != nil {
		data, err = fs.ReadFile(l.opts.fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, NewError("failed to read config file").
			WithKind(KindIO).
			WithContext(path).
			WithCause(err)
	}
	if !utf8.Valid(data) {
		return nil, NewError("failed to read config file as UTF-8 text").
			WithKind(KindIO).
			WithContext(path).
			WithCause(ErrInvalidUTF8)
	}
	return data, nil
}
