// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"encoding/json"
	"sync"
)

// callResult is the terminal state of a pending call.
type callResult struct {
	Result json.RawMessage
	Err    error
}

// pendingCall is the settlement handle of one outstanding request. It
// settles at most once; later settlements are ignored.
type pendingCall struct {
	id     string
	method string
	once   sync.Once
	done   chan callResult
}

func newPendingCall(id, method string) *pendingCall {
	return &pendingCall{
		id:     id,
		method: method,
		done:   make(chan callResult, 1),
	}
}

// settle delivers res and reports whether this call was the one to settle
// the handle.
func (p *pendingCall) settle(res callResult) bool {
	settled := false
	p.once.Do(func() {
		p.done <- res
		settled = true
	})
	return settled
}

// Done receives the single result the call settles with.
func (p *pendingCall) Done() <-chan callResult {
	return p.done
}

// callTable correlates request ids with their pending calls. An id is
// present exactly while its call is outstanding.
type callTable struct {
	mu    sync.Mutex
	calls map[string]*pendingCall
}

func newCallTable() *callTable {
	return &callTable{calls: make(map[string]*pendingCall)}
}

// register adds a pending call for id. Registering an id that is still
// outstanding fails.
func (t *callTable) register(id, method string) (*pendingCall, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.calls[id]; ok {
		return nil, ErrDuplicateID
	}
	call := newPendingCall(id, method)
	t.calls[id] = call
	return call, nil
}

// settle removes the call registered under id and settles it with res. It
// returns false if no call is registered under id.
func (t *callTable) settle(id string, res callResult) bool {
	t.mu.Lock()
	call, ok := t.calls[id]
	delete(t.calls, id)
	t.mu.Unlock()
	if !ok {
		return false
	}
	return call.settle(res)
}

// reject is settle with an error.
func (t *callTable) reject(id string, err error) bool {
	return t.settle(id, callResult{Err: err})
}

// remove drops the call registered under id without settling it. Replies
// arriving later for that id are treated as unroutable.
func (t *callTable) remove(id string) {
	t.mu.Lock()
	delete(t.calls, id)
	t.mu.Unlock()
}

// drain rejects every outstanding call with err, leaving the table empty.
// It returns the number of calls rejected.
func (t *callTable) drain(err error) int {
	t.mu.Lock()
	calls := t.calls
	t.calls = make(map[string]*pendingCall)
	t.mu.Unlock()

	n := 0
	for _, call := range calls {
		if call.settle(callResult{Err: err}) {
			n++
		}
	}
	return n
}

func (t *callTable) has(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.calls[id]
	return ok
}

// Len returns the number of outstanding calls.
func (t *callTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}
