// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package watchdog prints a one-time hint when a search runs longer than
// expected.
//
// A [Watchdog] runs next to the search in its own goroutine. It wakes up every
// Interval and gives up after Budget; if it was not stopped by then it emits a
// single advisory through its [Notifier] suggesting a smaller descent depth.
// [Watchdog.Stop] cancels it and waits for the goroutine to exit, so anything
// the caller prints afterwards is guaranteed to follow the advisory.
package watchdog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultBudget is how long a search may run before the advisory is shown.
	DefaultBudget = 5 * time.Second
	// DefaultInterval is how often the watchdog checks for cancellation.
	DefaultInterval = 100 * time.Millisecond
)

// Notifier receives the advisory. The CLI and JSON loggers satisfy it.
type Notifier interface {
	Warnf(format string, v ...any)
}

// Options configures a Watchdog.
type Options struct {
	Budget   time.Duration
	Interval time.Duration
	Notifier Notifier
}

// Watchdog watches one search. Only the first Start has an effect, and a
// Start after Stop does nothing.
type Watchdog struct {
	opts  Options
	done  chan struct{}
	fired atomic.Bool
	stop  sync.Once

	mu      sync.Mutex
	cancel  context.CancelFunc
	started bool
	stopped bool
}

// New returns a Watchdog; zero durations fall back to the defaults.
func New(opts Options) *Watchdog {
	if opts.Budget <= 0 {
		opts.Budget = DefaultBudget
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Watchdog{opts: opts, done: make(chan struct{})}
}

// Start launches the watchdog for a search rooted at root. Cancelling ctx
// has the same effect as calling Stop, except that Stop also waits.
func (w *Watchdog) Start(ctx context.Context, root string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.stopped {
		return
	}
	w.started = true
	ctx, w.cancel = context.WithCancel(ctx)
	go w.run(ctx, root)
}

// Stop cancels the watchdog and blocks until its goroutine has exited.
// It is safe to call Stop more than once, and before Start.
func (w *Watchdog) Stop() {
	w.stop.Do(func() {
		w.mu.Lock()
		w.stopped = true
		cancel := w.cancel
		w.mu.Unlock()

		if cancel == nil {
			close(w.done)
			return
		}
		cancel()
		<-w.done
	})
}

// Done is closed once the watchdog goroutine has exited.
func (w *Watchdog) Done() <-chan struct{} { return w.done }

// Fired reports whether the advisory was emitted.
func (w *Watchdog) Fired() bool { return w.fired.Load() }

func (w *Watchdog) run(ctx context.Context, root string) {
	defer close(w.done)

	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()

	polls := int((w.opts.Budget + w.opts.Interval - 1) / w.opts.Interval)
	for range polls {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}

	if ctx.Err() != nil {
		return
	}
	w.fired.Store(true)
	if w.opts.Notifier != nil {
		w.opts.Notifier.Warnf("If the searching process is taking too long, make sure [-ms amount] is not too deep!\nSearch started in: %s", root)
	}
}
