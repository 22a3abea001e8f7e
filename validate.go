// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import "reflect"

// Validator is implemented by configuration types that enforce invariants the
// type system cannot express: ranges, fields required together, cross-field
// consistency. Violations should be reported with NewValidationError.
type Validator interface {
	Validate() error
}

// Validate runs v's own validation. Types without a Validate method have no
// invariants beyond their shape and always pass. Errors are returned exactly
// as the type produced them.
//
// Both value and pointer receivers are honoured: v may be a T or a *T. A nil
// pointer whose type has a Validate method fails with KindValidation instead
// of calling the method on a nil receiver.
func Validate(v any) error {
	if val, ok := v.(Validator); ok {
		if isNilPointer(v) {
			return NewError("configuration is null").WithKind(KindValidation)
		}
		return val.Validate()
	}

	// A T value whose Validate has a pointer receiver: validate an
	// addressable copy.
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() == reflect.Pointer {
		return nil
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	if val, ok := p.Interface().(Validator); ok {
		return val.Validate()
	}
	return nil
}

// validateValue validates *cfg, trying the pointer method set first so that
// pointer-receiver Validate methods on struct types are found.
func validateValue[T any](cfg *T) error {
	if val, ok := any(cfg).(Validator); ok {
		return val.Validate()
	}
	return Validate(*cfg)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
