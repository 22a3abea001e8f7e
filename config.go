// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config is the capability of producing a T from TOML or JSON text and of
// turning a parsed T into a validated one.
//
// Every type has it: Codec[T] implements Config[T] for any T, so application
// types need no registration. Parsing and validating are separate steps so a
// caller can inspect a parsed value without trusting it.
type Config[T any] interface {
	FromTOML(text string) (T, error)
	FromJSON(text string) (T, error)
	ValidateAndBuild(cfg T) (T, error)
}

var _ Config[struct{}] = (*Codec[struct{}])(nil)

// Option configures a Codec or Loader.
type Option func(*options)

type options struct {
	fsys   fs.FS
	logger zerolog.Logger
	strict bool
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrict rejects documents containing keys the target type does not declare.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithLogger sets the logger used for debug events. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFS makes a Loader read files from fsys instead of the OS filesystem.
// Paths must then be valid fs.FS paths (slash-separated, unrooted).
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// Codec decodes and validates values of type T.
type Codec[T any] struct {
	opts options
}

// NewCodec returns a Codec for T.
func NewCodec[T any](opts ...Option) *Codec[T] {
	return &Codec[T]{opts: newOptions(opts)}
}

// FromTOML parses TOML text into a T.
func FromTOML[T any](text string) (T, error) {
	return NewCodec[T]().FromTOML(text)
}

// FromJSON parses JSON text into a T.
func FromJSON[T any](text string) (T, error) {
	return NewCodec[T]().FromJSON(text)
}

// ValidateAndBuild validates cfg and returns it unchanged.
func ValidateAndBuild[T any](cfg T) (T, error) {
	return NewCodec[T]().ValidateAndBuild(cfg)
}

// FromTOML parses TOML text into a T. Syntax errors, type mismatches and, in
// strict mode, undeclared keys are reported with KindTOMLParse.
func (c *Codec[T]) FromTOML(text string) (T, error) {
	var out T
	md, err := toml.Decode(text, &out)
	if err != nil {
		var zero T
		return zero, NewError(tomlErrorMessage(err)).
			WithKind(KindTOMLParse).
			WithCause(err)
	}

	if c.opts.strict {
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			var zero T
			return zero, NewError(fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", "))).
				WithKind(KindTOMLParse).
				WithCause(ErrUnknownField)
		}
	}
	return out, nil
}

// FromJSON parses JSON text into a T. Syntax errors, type mismatches, trailing
// data and, in strict mode, undeclared keys are reported with KindJSONParse.
func (c *Codec[T]) FromJSON(text string) (T, error) {
	var out T
	var zero T

	dec := json.NewDecoder(strings.NewReader(text))
	if c.opts.strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, NewError("empty document: expected a JSON value").
				WithKind(KindJSONParse).
				WithCause(err)
		}
		cause := err
		if isUnknownFieldErr(err) {
			cause = fmt.Errorf("%w: %w", ErrUnknownField, err)
		}
		return zero, NewError(jsonErrorMessage(err, text)).
			WithKind(KindJSONParse).
			WithCause(cause)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return zero, NewError(fmt.Sprintf("JSON syntax error at offset %d: %s", dec.InputOffset(), ErrTrailingData)).
			WithKind(KindJSONParse).
			WithCause(ErrTrailingData)
	}
	return out, nil
}

// ValidateAndBuild runs cfg's validation and, if it passes, returns cfg as is.
// A validation failure is returned exactly as the type reported it.
func (c *Codec[T]) ValidateAndBuild(cfg T) (T, error) {
	if err := validateValue(&cfg); err != nil {
		var zero T
		return zero, err
	}
	return cfg, nil
}

// Decode parses text in format f. FormatNone yields a FormatError.
func (c *Codec[T]) Decode(text string, f Format) (T, error) {
	switch f {
	case FormatTOML:
		return c.FromTOML(text)
	case FormatJSON:
		return c.FromJSON(text)
	default:
		var zero T
		return zero, NewError("unknown configuration format").
			WithKind(KindFormat).
			WithCause(ErrUnknownFormat)
	}
}

func tomlErrorMessage(err error) string {
	var perr toml.ParseError
	if errors.As(err, &perr) && perr.Position.Line > 0 {
		return fmt.Sprintf("failed to parse TOML at line %d: %s", perr.Position.Line, perr.Message)
	}
	return fmt.Sprintf("failed to parse TOML: %v", err)
}

// jsonErrorMessage extracts position and field details from decoder errors.
func jsonErrorMessage(err error, content string) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineColumn(content, syntaxErr.Offset)
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineColumn(content, typeErr.Offset)
		return fmt.Sprintf("type error at field '%s' (line %d, column %d): expected %s, got %s",
			typeErr.Field, line, col, typeErr.Type.String(), typeErr.Value)
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return "failed to parse JSON: unexpected end of input"
	}
	return fmt.Sprintf("failed to parse JSON: %v", err)
}

// encoding/json has no typed error for DisallowUnknownFields.
func isUnknownFieldErr(err error) bool {
	return strings.HasPrefix(err.Error(), "json: unknown field ")
}

// offsetToLineColumn converts a byte offset to 1-based line and column numbers.
func offsetToLineColumn(content string, offset int64) (line, column int) {
	line, column = 1, 1
	if offset <= 0 {
		return line, column
	}
	n := int(min(offset, int64(len(content))))
	// Offsets point just past the offending byte.
	prefix := content[:max(n-1, 0)]
	line += strings.Count(prefix, "\n")
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		column = len(prefix) - i
	} else {
		column = len(prefix) + 1
	}
	return line, column
}

// decodeBytes is shared by Loader.Load and Loader.Parse.
func (c *Codec[T]) decodeBytes(data []byte, f Format) (T, error) {
	return c.Decode(string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))), f)
}
