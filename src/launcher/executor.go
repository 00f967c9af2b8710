// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor runs a Command and reports its exit code.
//
// A non-zero exit of the child is not an error; err is reserved for
// failures to start or wait for the process.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (int, error)
}

// ExecExecutor runs commands with [os/exec], wiring the given streams.
// Nil streams default to the current process's stdin, stdout and stderr.
type ExecExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute starts cmd and waits for it. Cancelling ctx kills the child.
func (e *ExecExecutor) Execute(ctx context.Context, cmd Command) (int, error) {
	c := exec.CommandContext(ctx, cmd.Interpreter, cmd.Argv()...)
	c.Stdin = orReader(e.Stdin, os.Stdin)
	c.Stdout = orWriter(e.Stdout, os.Stdout)
	c.Stderr = orWriter(e.Stderr, os.Stderr)

	err := c.Run()
	if err == nil {
		return 0, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return 1, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = 1
		}
		return code, nil
	}
	return 1, fmt.Errorf("%w: %s: %w", ErrLaunch, cmd.Interpreter, err)
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
