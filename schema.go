// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import (
	"bytes"
	"io"
	"os"
)

// Defaulter is implemented by configuration types that fill in their own
// default values. The schema printer calls SetDefaults on a zero value to
// build the example document.
type Defaulter interface {
	SetDefaults()
}

// defaultValue returns the zero T with SetDefaults applied when *T implements it.
func defaultValue[T any]() T {
	var v T
	if d, ok := any(&v).(Defaulter); ok {
		d.SetDefaults()
	}
	return v
}

// ExampleDocuments serialises T's default instance as JSON and as TOML.
// This is an example document, not a structural schema.
func ExampleDocuments[T any]() (jsonDoc, tomlDoc []byte, err error) {
	v := defaultValue[T]()
	if jsonDoc, err = Marshal(v, FormatJSON); err != nil {
		return nil, nil, err
	}
	if tomlDoc, err = Marshal(v, FormatTOML); err != nil {
		return nil, nil, err
	}
	return jsonDoc, tomlDoc, nil
}

// PrintExample writes T's default instance to stdout as a JSON example
// followed by a TOML example.
func PrintExample[T any]() error {
	return writeExample[T](os.Stdout, "stdout")
}

// WriteExample is PrintExample with an explicit destination.
func WriteExample[T any](w io.Writer) error {
	return writeExample[T](w, "writer")
}

// writeExample serialises both documents before writing anything so a
// failure never leaves half a reference on the output.
func writeExample[T any](w io.Writer, sink string) error {
	jsonDoc, tomlDoc, err := ExampleDocuments[T]()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("JSON example:\n")
	buf.Write(jsonDoc)
	buf.WriteString("\nTOML example:\n")
	buf.Write(tomlDoc)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return NewError("failed to write example configuration").
			WithKind(KindIO).
			WithContext(sink).
			WithCause(err)
	}
	return nil
}
