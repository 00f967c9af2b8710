// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package launcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/H0llyW00dzZ/amca-finder/src/config"
	"github.com/H0llyW00dzZ/amca-finder/src/internal/finder"
	"github.com/H0llyW00dzZ/amca-finder/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/amca-finder/src/internal/watchdog"
	"github.com/H0llyW00dzZ/amca-finder/src/logger"
)

var (
	// ErrNotFound is returned when no file named like the target exists
	// under the search root.
	ErrNotFound = errors.New("target not found")
	// ErrLaunch is returned when the interpreter could not be started.
	ErrLaunch = errors.New("failed to launch interpreter")
)

// fallbackInterpreter is tried when the default interpreter is not on PATH.
const fallbackInterpreter = "python3"

// Option configures a Launcher.
type Option func(*Launcher)

// WithExecutor replaces the default [ExecExecutor].
func WithExecutor(e Executor) Option {
	return func(l *Launcher) { l.exec = e }
}

// WithDryRun prints the command instead of running it.
func WithDryRun(enabled bool) Option {
	return func(l *Launcher) { l.dryRun = enabled }
}

// Launcher ties the search, the ranking, the watchdog and the executor together.
type Launcher struct {
	cfg    *config.Config
	log    logger.Logger
	exec   Executor
	dryRun bool
}

// New returns a Launcher for cfg. A nil cfg uses [config.Default].
func New(cfg *config.Config, log logger.Logger, opts ...Option) *Launcher {
	if cfg == nil {
		cfg = config.Default()
	}
	l := &Launcher{
		cfg:    cfg,
		log:    log,
		exec:   &ExecExecutor{},
		dryRun: cfg.DryRun,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run searches for the target starting depth levels above cwd and runs the
// best match with args. It returns the interpreter's exit code.
//
// When nothing matches, a message naming the search root is logged and
// Run returns 1 with [ErrNotFound]. Search failures return 1 with the
// underlying error, which is a [*finder.TraversalError] for unreadable
// directories.
func (l *Launcher) Run(ctx context.Context, cwd string, depth int, args []string) (int, error) {
	origin, err := filepath.Abs(cwd)
	if err != nil {
		return 1, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	q := finder.Query{Origin: origin, Name: l.cfg.Target, Depth: depth}
	root := q.Root()

	wd := watchdog.New(watchdog.Options{
		Budget:   l.cfg.Budget(),
		Interval: l.cfg.Interval(),
		Notifier: l.log,
	})
	wd.Start(ctx, root)
	report, err := finder.Locate(ctx, q, finder.Options{
		Workers:        l.cfg.Search.Workers,
		SkipUnreadable: l.cfg.Search.SkipUnreadable,
	})
	wd.Stop()
	if err != nil {
		return 1, err
	}

	for _, s := range report.Skipped {
		l.log.Warnf("Skipped unreadable directory: %s", s)
	}

	if !report.Found() {
		l.log.Errorf("No %s was found. Search started in: %s", l.cfg.Target, root)
		return 1, ErrNotFound
	}

	cmd := Command{
		Interpreter: l.interpreter(),
		Script:      report.Best,
		Args:        args,
	}

	if l.dryRun {
		l.log.Println(cmd.String())
		return 0, nil
	}
	return l.exec.Execute(ctx, cmd)
}

// interpreter returns the configured interpreter. Only the default one is
// looked up on PATH, with python3 as fallback; an explicit choice is used as is.
func (l *Launcher) interpreter() string {
	if l.cfg.Interpreter != config.DefaultInterpreter {
		return l.cfg.Interpreter
	}
	// On failure the first candidate comes back, so exec reports the real error.
	interp, _ := posix.ResolveInterpreter(l.cfg.Interpreter, fallbackInterpreter)
	return interp
}
