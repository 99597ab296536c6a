// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package task coordinates long-running document operations on a single
// background worker with cooperative pause, resume, and stop.
//
// Cancellation is cooperative, not preemptive: the worker consults its
// Control between page-level units of work and never mid-render. The pause
// wait is a fixed-interval poll rather than a wakeable primitive, a
// deliberate latency-for-simplicity tradeoff for a human-speed control
// signal.
package task

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chuzhi-keji/pdf/pkg/types"
)

// pollInterval is how often a paused worker re-checks its flags.
const pollInterval = 100 * time.Millisecond

// Control carries the pause and stop flags shared between the initiating
// context and the worker. Both flags are atomic; the worker only reads them
// at checkpoints, so no further synchronization is needed.
type Control struct {
	paused  atomic.Bool
	stopped atomic.Bool
}

// NewControl returns a Control in the running state.
func NewControl() *Control {
	return &Control{}
}

// Pause asks the worker to block at its next checkpoint.
func (c *Control) Pause() {
	c.paused.Store(true)
}

// Resume clears the pause flag, unblocking a worker waiting at a checkpoint.
func (c *Control) Resume() {
	c.paused.Store(false)
}

// Stop asks the worker to abandon remaining work at its next checkpoint.
// A paused worker is resumed so its poll loop can observe the stop flag.
func (c *Control) Stop() {
	c.stopped.Store(true)
	c.paused.Store(false)
}

// Paused reports whether a pause has been requested.
func (c *Control) Paused() bool {
	return c.paused.Load()
}

// Stopped reports whether a stop has been requested.
func (c *Control) Stopped() bool {
	return c.stopped.Load()
}

// Checkpoint is called by the worker between units of work. It blocks while
// paused, polling at pollInterval, and reports whether the worker should
// continue: false means a stop was requested.
func (c *Control) Checkpoint() bool {
	for {
		if c.stopped.Load() {
			return false
		}
		if !c.paused.Load() {
			return true
		}
		time.Sleep(pollInterval)
	}
}

// Outcome is the completion signal of one background task: the accumulated
// per-file results, or an error for failures not converted into per-item
// results.
type Outcome struct {
	Results []types.OperationResult
	Err     error
}

// Func is the body of a background task. It receives the Control it must
// honor at its checkpoints.
type Func func(ctl *Control) ([]types.OperationResult, error)

// Runner owns the single dedicated background worker. Operations run one at
// a time; starting a task while another is in flight is an error.
type Runner struct {
	mu     sync.Mutex
	ctl    *Control
	exited chan struct{}
}

// NewRunner returns an idle Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Start launches fn on the background worker and returns the channel the
// completion signal is delivered on. The channel is buffered: the worker
// never blocks on a caller that is slow to collect the outcome.
func (r *Runner) Start(fn Func) (<-chan Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.exited != nil {
		select {
		case <-r.exited:
		default:
			return nil, fmt.Errorf("a task is already running")
		}
	}

	ctl := NewControl()
	done := make(chan Outcome, 1)
	exited := make(chan struct{})
	r.ctl = ctl
	r.exited = exited

	go func() {
		defer close(exited)
		defer func() {
			if p := recover(); p != nil {
				done <- Outcome{Err: fmt.Errorf("task panicked: %v", p)}
			}
		}()
		results, err := fn(ctl)
		done <- Outcome{Results: results, Err: err}
	}()

	return done, nil
}

// Control returns the control handle of the current (or most recent) task,
// or nil if no task was ever started.
func (r *Runner) Control() *Control {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctl
}

// Pause pauses the current task, if any.
func (r *Runner) Pause() {
	if ctl := r.Control(); ctl != nil {
		ctl.Pause()
	}
}

// Resume resumes the current task, if any.
func (r *Runner) Resume() {
	if ctl := r.Control(); ctl != nil {
		ctl.Resume()
	}
}

// Stop signals the current task to stop, if any.
func (r *Runner) Stop() {
	if ctl := r.Control(); ctl != nil {
		ctl.Stop()
	}
}

// Running reports whether a worker is currently in flight.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.exited == nil {
		return false
	}
	select {
	case <-r.exited:
		return false
	default:
		return true
	}
}

// Wait blocks until the worker goroutine has actually exited, or until
// timeout elapses. Callers use it after Stop on shutdown, so open file
// handles are known to be released before the process exits.
func (r *Runner) Wait(timeout time.Duration) error {
	r.mu.Lock()
	exited := r.exited
	r.mu.Unlock()

	if exited == nil {
		return nil
	}
	select {
	case <-exited:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("task did not exit within %v", timeout)
	}
}
