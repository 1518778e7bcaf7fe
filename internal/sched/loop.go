package sched

import (
	"context"
	"errors"
	"time"
)

// ErrStopped is returned by Loop.Call once the loop has exited.
var ErrStopped = errors.New("sched: loop stopped")

// Loop drives a Virtual scheduler from the wall clock on a single goroutine.
// Timer callbacks and functions submitted through Call never overlap, which
// lets a host without its own event loop (a bot, a headless simulation) use
// an engine in real time.
type Loop struct {
	v          *Virtual
	resolution time.Duration
	calls      chan call
	done       chan struct{}
}

type call struct {
	fn  func()
	ack chan struct{}
}

// NewLoop creates a loop that advances its clock every resolution.
func NewLoop(resolution time.Duration) *Loop {
	if resolution <= 0 {
		resolution = 10 * time.Millisecond
	}
	return &Loop{
		v:          NewVirtual(),
		resolution: resolution,
		calls:      make(chan call),
		done:       make(chan struct{}),
	}
}

// Scheduler returns the loop's scheduler. It must only be touched from
// callbacks or from functions passed to Call.
func (l *Loop) Scheduler() Scheduler {
	return l.v
}

// Run advances the clock until ctx is cancelled. It must be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(l.resolution)
	defer ticker.Stop()

	last := time.Now()
	catchUp := func() {
		now := time.Now()
		l.v.Advance(now.Sub(last))
		last = now
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			catchUp()
		case c := <-l.calls:
			catchUp()
			c.fn()
			close(c.ack)
		}
	}
}

// Call runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	c := call{fn: fn, ack: make(chan struct{})}

	select {
	case l.calls <- c:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-c.ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
