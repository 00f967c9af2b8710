// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
)

var (
	// ErrInvalidDepth is returned when the value after -ms is not an integer >= 0.
	ErrInvalidDepth = errors.New("invalid search depth")
	// ErrNoMatch is returned by amca-locate when no candidate was found.
	ErrNoMatch = errors.New("no matching file found")
)

// ExitInterrupted is the conventional exit code after SIGINT.
const ExitInterrupted = 130

// ExitCode maps the result of a command to a process exit code. A child
// exit code is kept as is; errors without one exit 1; cancellation exits 130.
func ExitCode(code int, err error) int {
	switch {
	case err == nil:
		return code
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case code == 0:
		return 1
	default:
		return code
	}
}
