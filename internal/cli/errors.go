// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for the typedconf CLI.
//
// Commands always return errors and never print them. Execute renders the
// error once (styled or as JSON) and picks the exit code from its kind.

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jeranaias/typedconf"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file that does not parse or validate
	ExitConfigError = 3
	// ExitNotFoundError indicates a file was not found
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES FOR STRUCTURED ERROR HANDLING
// =============================================================================

// UsageError reports invalid arguments or flags.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "convert")
	Action  string // Action being performed (e.g., "write")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// ExitCodeFor maps an error to a process exit code:
//   - ExitUsageError (2): UsageError, FormatError
//   - ExitConfigError (3): parse, validation and serialisation errors
//   - ExitNotFoundError (7): IOError for a missing file
//   - ExitGeneralError (1): all other errors
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsageError
	}

	switch typedconf.KindOf(err) {
	case typedconf.KindFormat:
		return ExitUsageError
	case typedconf.KindTOMLParse, typedconf.KindJSONParse,
		typedconf.KindValidation, typedconf.KindSerialisation:
		return ExitConfigError
	case typedconf.KindIO:
		if errors.Is(err, fs.ErrNotExist) {
			return ExitNotFoundError
		}
	}
	return ExitGeneralError
}

// errorType names the error class in JSON output.
func errorType(err error) string {
	if kind := typedconf.KindOf(err); kind != "" {
		return kind
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return "UsageError"
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return "CommandError"
	}
	return "Error"
}
