// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, log, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes the launcher and returns the process exit code.
func run(ctx context.Context, log logger.Logger, args []string) int {
	done := make(chan int, 1)
	go func() {
		code, err := cli.RunLauncher(ctx, version, log, args)
		done <- cli.ExitCode(code, err)
	}()

	select {
	case code := <-done:
		return code
	case <-ctx.Done():
		log.Warnf("Operation cancelled by signal. Exiting...")
		// Give the child a moment to be reaped.
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return cli.ExitInterrupted
	}
}
