// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"

	"schema-audit/internal/config"
)

// Process exit codes.
const (
	ExitSuccess      = 0 // Scan completed and report written
	ExitGeneralError = 1 // Scan or I/O failure
	ExitUsageError   = 2 // Invalid arguments, flags or configuration
	ExitPanic        = 3 // Unexpected panic
)

// ErrUsage indicates the command line could not be understood.
var ErrUsage = errors.New("usage error")

// ExitCodeForError returns the exit code for an error returned by Execute.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitUsageError
	}

	return ExitGeneralError
}
