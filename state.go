// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"sync"
	"time"

	"github.com/juju/clock"
)

// ConnState is the lifecycle state of a duplex connection.
type ConnState int32

const (
	// StateConnecting is the initial state while the dial is in flight.
	StateConnecting ConnState = iota
	// StateOpen means requests may be sent.
	StateOpen
	// StateClosed is terminal.
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// lifecycle tracks whether the connection is usable. Transitions happen only
// through opened and closed; waiters are woken by closing a channel rather
// than by polling.
type lifecycle struct {
	mu       sync.Mutex
	state    ConnState
	cause    error
	openCh   chan struct{}
	closedCh chan struct{}
}

func newLifecycle() *lifecycle {
	return &lifecycle{
		state:    StateConnecting,
		openCh:   make(chan struct{}),
		closedCh: make(chan struct{}),
	}
}

// State returns the current state.
func (l *lifecycle) State() ConnState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// IsOpen reports whether requests may be sent.
func (l *lifecycle) IsOpen() bool {
	return l.State() == StateOpen
}

// opened moves Connecting to Open. It reports false if the connection was
// already closed.
func (l *lifecycle) opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateConnecting {
		return false
	}
	l.state = StateOpen
	close(l.openCh)
	return true
}

// closed moves any state to Closed, recording the first cause. It reports
// false if the connection was already closed.
func (l *lifecycle) closed(cause error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateClosed {
		return false
	}
	l.state = StateClosed
	l.cause = cause
	close(l.closedCh)
	return true
}

// Cause returns the error that closed the connection, if any.
func (l *lifecycle) Cause() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cause
}

// Done is closed once the connection is Closed.
func (l *lifecycle) Done() <-chan struct{} {
	return l.closedCh
}

// waitOpen suspends until the connection is Open. It fails with ErrTimeout
// once timeout elapses on clk, with ErrConnectionClosed if the connection
// closes first, or with the context's error. A non-positive timeout waits
// for the context alone.
func (l *lifecycle) waitOpen(ctx context.Context, clk clock.Clock, timeout time.Duration) error {
	l.mu.Lock()
	state, cause := l.state, l.cause
	l.mu.Unlock()
	switch state {
	case StateOpen:
		return nil
	case StateClosed:
		return closedError(cause)
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := clk.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.Chan()
	}

	select {
	case <-l.openCh:
		return nil
	case <-l.closedCh:
		return closedError(l.Cause())
	case <-expired:
		return timeoutError("connection did not open within %s", timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
