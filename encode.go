// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typedconf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Marshal serialises v as a pretty-printed document in format f.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, NewError(fmt.Sprintf("failed to serialise config as JSON: %v", err)).
				WithKind(KindSerialisation).
				WithCause(err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, NewError(fmt.Sprintf("failed to serialise config as TOML: %v", err)).
				WithKind(KindSerialisation).
				WithCause(err)
		}
		return buf.Bytes(), nil
	default:
		return nil, NewError("unknown configuration format").
			WithKind(KindFormat).
			WithCause(ErrUnknownFormat)
	}
}
