// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/json"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// scripted fails with errs in turn, then succeeds.
func scripted(calls *atomic.Int32, errs ...error) InvokeFunc {
	return func(context.Context, string, any) (json.RawMessage, error) {
		n := int(calls.Add(1))
		if n <= len(errs) {
			return nil, errs[n-1]
		}
		return json.RawMessage(`"OK"`), nil
	}
}

func TestChainOrder(t *testing.T) {
	require := require.New(t)
	var trace []string
	tag := func(name string) Middleware {
		return func(next InvokeFunc) InvokeFunc {
			return func(ctx context.Context, method string, params any) (json.RawMessage, error) {
				trace = append(trace, name)
				return next(ctx, method, params)
			}
		}
	}
	var calls atomic.Int32
	invoke := Chain(tag("outer"), tag("inner"))(scripted(&calls))

	_, err := invoke(context.Background(), "JSONRPC.Ping", nil)
	require.NoError(err)
	require.Equal([]string{"outer", "inner"}, trace)
}

func TestLogging(t *testing.T) {
	require := require.New(t)
	core, logs := observer.New(zapcore.DebugLevel)
	var calls atomic.Int32
	invoke := Logging(zap.New(core))(scripted(&calls, ErrConnectionClosed))

	_, err := invoke(context.Background(), "Player.Stop", nil)
	require.ErrorIs(err, ErrConnectionClosed)
	_, err = invoke(context.Background(), "Player.Stop", nil)
	require.NoError(err)

	entries := logs.All()
	require.Len(entries, 2)
	require.Equal(zapcore.WarnLevel, entries[0].Level)
	require.Equal("call failed", entries[0].Message)
	require.Equal("Player.Stop", entries[0].ContextMap()["method"])
	require.Equal(zapcore.DebugLevel, entries[1].Level)
}

func TestRetryTransientFailure(t *testing.T) {
	require := require.New(t)
	clk := testclock.NewClock(time.Now())
	var calls atomic.Int32
	invoke := Retry(3, time.Second, clk)(scripted(&calls, io.EOF, timeoutError("slow")))

	done := make(chan error, 1)
	go func() {
		_, err := invoke(context.Background(), "JSONRPC.Ping", nil)
		done <- err
	}()
	require.NoError(clk.WaitAdvance(time.Second, time.Second, 1))
	require.NoError(clk.WaitAdvance(2*time.Second, time.Second, 1))

	require.NoError(<-done)
	require.EqualValues(3, calls.Load())
}

func TestRetryGivesUp(t *testing.T) {
	require := require.New(t)
	clk := testclock.NewClock(time.Now())
	var calls atomic.Int32
	invoke := Retry(1, time.Second, clk)(scripted(&calls, io.EOF, io.EOF))

	done := make(chan error, 1)
	go func() {
		_, err := invoke(context.Background(), "JSONRPC.Ping", nil)
		done <- err
	}()
	require.NoError(clk.WaitAdvance(time.Second, time.Second, 1))

	require.ErrorIs(<-done, io.EOF)
	require.EqualValues(2, calls.Load())
}

func TestRetrySkipsPermanentFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "remote", err: &RemoteError{Code: CodeInvalidParams, Message: "Invalid params."}},
		{name: "malformed", err: errors.Annotate(ErrMalformedResponse, "id mismatch")},
		{name: "closed", err: closedError(ErrClosed)},
		{name: "client error status", err: &StatusError{StatusCode: 401}},
		{name: "canceled", err: context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			invoke := Retry(3, time.Hour, testclock.NewClock(time.Now()))(scripted(&calls, tt.err))
			_, err := invoke(context.Background(), "JSONRPC.Ping", nil)
			require.ErrorIs(t, err, tt.err)
			require.EqualValues(t, 1, calls.Load())
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "nil", err: nil},
		{name: "timeout", err: timeoutError("no reply"), retryable: true},
		{name: "server status", err: &StatusError{StatusCode: 503}, retryable: true},
		{name: "client status", err: &StatusError{StatusCode: 404}},
		{name: "eof", err: errors.Annotate(io.ErrUnexpectedEOF, "read"), retryable: true},
		{name: "reset", err: errors.New("read tcp: connection reset by peer"), retryable: true},
		{name: "remote", err: &RemoteError{Code: CodeServerError}},
		{name: "empty method", err: ErrEmptyMethod},
		{name: "deadline", err: context.DeadlineExceeded},
		{name: "other", err: errors.New("something else")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}

func TestRateLimit(t *testing.T) {
	require := require.New(t)
	var calls atomic.Int32
	invoke := RateLimit(0.001, 1)(scripted(&calls))

	_, err := invoke(context.Background(), "JSONRPC.Ping", nil)
	require.NoError(err)

	// The bucket is empty and refills far beyond the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = invoke(ctx, "JSONRPC.Ping", nil)
	require.Error(err)
	require.EqualValues(1, calls.Load())
}
