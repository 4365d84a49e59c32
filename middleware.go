// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Middleware wraps an InvokeFunc. It sits above the transport and never sees
// the wire.
type Middleware func(next InvokeFunc) InvokeFunc

// Chain composes middleware so that the first one given is the outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(next InvokeFunc) InvokeFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// Logging logs every call with its duration at debug level, and failures
// at warn level.
func Logging(log *zap.Logger) Middleware {
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context, method string, params any) (json.RawMessage, error) {
			start := time.Now()
			result, err := next(ctx, method, params)
			fields := []zap.Field{
				zap.String("method", method),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				log.Warn("call failed", append(fields, zap.Error(err))...)
				return nil, err
			}
			log.Debug("call", append(fields, zap.Int("bytes", len(result)))...)
			return result, nil
		}
	}
}

// Retry re-issues calls that failed at the transport level, waiting
// baseDelay, then twice that, and so on between attempts. Errors reported
// by the remote procedure are never retried. Only use it for procedures
// that are safe to repeat.
func Retry(maxRetries int, baseDelay time.Duration, clk clock.Clock) Middleware {
	if clk == nil {
		clk = clock.WallClock
	}
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context, method string, params any) (json.RawMessage, error) {
			result, err := next(ctx, method, params)
			for i := 0; i < maxRetries && isRetryableError(err); i++ {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-clk.After(baseDelay * time.Duration(1<<i)):
				}
				result, err = next(ctx, method, params)
			}
			if err != nil {
				return nil, err
			}
			return result, nil
		}
	}
}

// isRetryableError reports whether err is a transient transport failure.
func isRetryableError(err error) bool {
	switch {
	case err == nil:
		return false
	case IsRemoteError(err),
		errors.Is(err, ErrMalformedResponse),
		errors.Is(err, ErrClosed),
		errors.Is(err, ErrEmptyMethod),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrTimeout):
		return true
	}
	if status, ok := errors.AsType[*StatusError](err); ok {
		return status.StatusCode >= 500
	}
	// EOF errors are often transient connection issues
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe")
}

// RateLimit paces calls with a token bucket of r calls per second and the
// given burst. Calls wait for a token, or fail once their context ends.
func RateLimit(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context, method string, params any) (json.RawMessage, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, errors.Annotatef(err, "rate limit %s", method)
			}
			return next(ctx, method, params)
		}
	}
}
