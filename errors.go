// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import (
	"errors"
	"strings"
)

// Error kinds. Callers branch on these through KindOf or IsKind.
const (
	KindIO            = "IOError"
	KindTOMLParse     = "TOML parse error"
	KindJSONParse     = "JSON parse error"
	KindFormat        = "FormatError"
	KindValidation    = "ValidationError"
	KindSerialisation = "SerialisationError"
)

// defaultMessage replaces an empty message so Error never renders without one.
const defaultMessage = "unknown configuration error"

// Sentinel causes attached by the loader and codecs.
var (
	// ErrUnknownFormat is the cause of a FormatError: neither a hint nor the
	// file extension named a supported format.
	ErrUnknownFormat = errors.New("unknown configuration format")

	// ErrInvalidUTF8 is the cause of an IOError for files that are not UTF-8 text.
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

	// ErrUnknownField classifies strict-mode parse failures caused by keys the
	// target type does not declare.
	ErrUnknownField = errors.New("unknown config field")

	// ErrTrailingData is the cause of a JSON parse error when extra data
	// follows the first document.
	ErrTrailingData = errors.New("unexpected data after top-level value")
)

// Error describes a failure to read, parse, validate or serialise a
// configuration. It is built once with NewError and enriched through the
// With* methods, each of which returns a copy.
type Error struct {
	message string
	kind    string
	context string
	cause   error
}

// NewError creates an Error with the given message.
func NewError(msg string) *Error {
	if strings.TrimSpace(msg) == "" {
		msg = defaultMessage
	}
	return &Error{message: msg}
}

// NewValidationError creates a ValidationError for the named field.
func NewValidationError(field, msg string) *Error {
	return NewError(msg).WithKind(KindValidation).WithContext(field)
}

// WithKind returns a copy of e classified as kind.
func (e *Error) WithKind(kind string) *Error {
	c := *e
	c.kind = kind
	return &c
}

// WithContext returns a copy of e carrying ctx, typically a file path or field name.
func (e *Error) WithContext(ctx string) *Error {
	c := *e
	c.context = ctx
	return &c
}

// WithCause returns a copy of e chained to the underlying error.
func (e *Error) WithCause(err error) *Error {
	c := *e
	c.cause = err
	return &c
}

// Message returns the human-readable description.
func (e *Error) Message() string { return e.message }

// Kind returns the category tag, or "" if unclassified.
func (e *Error) Kind() string { return e.kind }

// Context returns the attached file path or field name, or "".
func (e *Error) Context() string { return e.context }

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.kind != "" {
		b.WriteString(" [")
		b.WriteString(e.kind)
		b.WriteString("]")
	}
	if e.context != "" {
		b.WriteString(" in ")
		b.WriteString(e.context)
	}
	b.WriteString(": ")
	b.WriteString(e.message)
	return b.String()
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.kind
	}
	return ""
}

// IsKind reports whether the first *Error in err's chain has the given kind.
func IsKind(err error, kind string) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.kind == kind
}
