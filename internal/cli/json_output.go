// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - Machine-readable output for scripts and CI.
//
// With --json every command prints exactly one JSONResponse on stdout, for
// failures too. Styled text and the [ERROR] line on stderr are suppressed.

package cli

import (
	"encoding/json"
	"io"
	"time"
)

// JSONResponse is the envelope printed by every command in --json mode.
type JSONResponse struct {
	Command   string `json:"command,omitempty"`
	Success   bool   `json:"success"`
	ExitCode  int    `json:"exit_code"`
	Timestamp string `json:"timestamp"`

	// Data is the command result; null on failure.
	Data any `json:"data"`

	// Error is the rendered error, null on success. ErrorType carries the
	// error kind (for example "ValidationError") so callers need not parse it.
	Error     *string `json:"error"`
	ErrorType string  `json:"error_type,omitempty"`
}

func newResponse(command string) *JSONResponse {
	return &JSONResponse{
		Command:   command,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewJSONResponse wraps a successful command result.
func NewJSONResponse(command string, data any) *JSONResponse {
	r := newResponse(command)
	r.Success = true
	r.Data = data
	return r
}

// NewJSONErrorResponse wraps a failure, with the exit code the process will use.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	msg := err.Error()
	r := newResponse(command)
	r.ExitCode = ExitCodeFor(err)
	r.Error = &msg
	r.ErrorType = errorType(err)
	return r
}

// Write encodes r to w as indented JSON.
func (r *JSONResponse) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
