// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallTableSettleOnce(t *testing.T) {
	require := require.New(t)
	table := newCallTable()

	call, err := table.register("a", "JSONRPC.Ping")
	require.NoError(err)
	require.True(table.has("a"))
	require.Equal(1, table.Len())

	require.True(table.settle("a", callResult{Result: json.RawMessage(`"pong"`)}))
	require.False(table.has("a"))
	require.Zero(table.Len())

	// A second reply for the same id finds nothing to settle.
	require.False(table.settle("a", callResult{Result: json.RawMessage(`"late"`)}))
	require.False(table.reject("a", ErrTimeout))

	res := <-call.Done()
	require.NoError(res.Err)
	require.JSONEq(`"pong"`, string(res.Result))
	require.Empty(call.Done())
}

func TestCallTableDuplicateID(t *testing.T) {
	require := require.New(t)
	table := newCallTable()

	_, err := table.register("a", "JSONRPC.Ping")
	require.NoError(err)
	_, err = table.register("a", "JSONRPC.Ping")
	require.ErrorIs(err, ErrDuplicateID)
	require.Equal(1, table.Len())
}

func TestCallTableRemove(t *testing.T) {
	require := require.New(t)
	table := newCallTable()

	call, err := table.register("a", "Player.Stop")
	require.NoError(err)
	table.remove("a")
	require.False(table.has("a"))
	require.False(table.settle("a", callResult{Result: json.RawMessage(`"OK"`)}))
	require.Empty(call.Done())
}

func TestCallTableDrain(t *testing.T) {
	require := require.New(t)
	table := newCallTable()

	calls := make([]*pendingCall, 0, 5)
	for i := 0; i < 5; i++ {
		call, err := table.register(fmt.Sprint(i), "JSONRPC.Ping")
		require.NoError(err)
		calls = append(calls, call)
	}
	// One call settles before the drain and must keep its result.
	require.True(table.settle("0", callResult{Result: json.RawMessage(`"pong"`)}))

	require.Equal(4, table.drain(ErrConnectionClosed))
	require.Zero(table.Len())

	res := <-calls[0].Done()
	require.NoError(res.Err)
	for _, call := range calls[1:] {
		res := <-call.Done()
		require.ErrorIs(res.Err, ErrConnectionClosed)
	}
	require.Zero(table.drain(ErrConnectionClosed))
}

func TestPendingCallConcurrentSettle(t *testing.T) {
	require := require.New(t)
	call := newPendingCall("a", "JSONRPC.Ping")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if call.settle(callResult{Result: json.RawMessage(fmt.Sprint(i))}) {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(1, winners)
	require.Len(call.Done(), 1)
}
