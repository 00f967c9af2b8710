// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/amca-finder/src/cli"
	"github.com/H0llyW00dzZ/amca-finder/src/logger"
	verpkg "github.com/H0llyW00dzZ/amca-finder/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, log, os.Stdout, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes amca-locate and returns the process exit code.
func run(ctx context.Context, log logger.Logger, out io.Writer, args []string) int {
	err := cli.ExecuteLocate(ctx, version, log, out, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrNoMatch):
		// already reported
	case errors.Is(err, context.Canceled):
	default:
		log.Errorf("Error: %v", err)
	}
	return cli.ExitCode(0, err)
}
