// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a non-JSON-RPC error body is kept.
const maxErrorBody = 512

// newHTTPClient creates the default HTTP client. The per-call timeout is
// enforced by the transport, not by the client.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// CleanlyCloseBody drains and closes an HTTP response body to prevent
// HTTP/2 GOAWAY errors caused by closing bodies with unread data.
// See: https://github.com/golang/go/issues/46071
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}
	// Drain any remaining data to allow connection reuse
	_, _ = io.Copy(io.Discard, body)
	return body.Close()
}

// HTTPTransport performs one HTTP POST per call. Each call owns its
// exchange, so no correlation state is shared between calls.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
	username string
	password string
	header   http.Header
	timeout  time.Duration
	clock    clock.Clock
	log      *zap.Logger
	closed   atomic.Bool
}

// NewHTTPTransport returns a transport posting to endpoint, e.g.
// "http://kodi.local:8080/jsonrpc".
func NewHTTPTransport(endpoint string, opts ...Option) *HTTPTransport {
	o := newOptions(opts)
	client := o.httpClient
	if client == nil {
		client = newHTTPClient()
	}
	return &HTTPTransport{
		endpoint: endpoint,
		client:   client,
		username: o.username,
		password: o.password,
		header:   o.header.Clone(),
		timeout:  o.requestTimeout,
		clock:    o.clock,
		log:      o.logger.With(zap.String("transport", "http"), zap.String("endpoint", endpoint)),
	}
}

// Invoke sends method with params and returns the raw result. Exactly one
// of the reply and the timeout settles the call: the timer is stopped as
// soon as the reply body has been read.
func (t *HTTPTransport) Invoke(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if t.closed.Load() {
		return nil, ErrClosed
	}
	req, err := newRequest(method, params)
	if err != nil {
		return nil, err
	}
	body, err := req.encode()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var timer clock.Timer
	if t.timeout > 0 {
		timer = t.clock.AfterFunc(t.timeout, func() {
			cancel(timeoutError("no reply to %s within %s", method, t.timeout))
		})
	}
	// stopTimer reports whether the reply won the race.
	stopTimer := func() bool {
		return timer == nil || timer.Stop()
	}

	t.log.Debug("sending request", zap.String("method", method), zap.String("id", req.ID))
	raw, status, err := t.exchange(ctx, body)
	if !stopTimer() {
		// The timer fired first; whatever the exchange produced is discarded.
		return nil, timeoutError("no reply to %s within %s", method, t.timeout)
	}
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return nil, cause
		}
		return nil, errors.Annotatef(err, "%s", method)
	}
	return t.interpret(req, raw, status)
}

// exchange posts body and returns the full reply body and status code.
func (t *HTTPTransport) exchange(ctx context.Context, body []byte) ([]byte, int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, errors.Annotate(err, "failed to create request")
	}
	for key, values := range t.header {
		for _, v := range values {
			request.Header.Add(key, v)
		}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if t.username != "" || t.password != "" {
		request.SetBasicAuth(t.username, t.password)
	}

	resp, err := t.client.Do(request)
	if err != nil {
		return nil, 0, errors.Annotate(err, "failed to issue request")
	}
	defer CleanlyCloseBody(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Annotate(err, "failed to read response")
	}
	return raw, resp.StatusCode, nil
}

// interpret turns a reply body into the call's result. Servers may answer
// remote errors with a non-2xx status, so the body is decoded before the
// status is considered.
func (t *HTTPTransport) interpret(req *Request, raw []byte, status int) (json.RawMessage, error) {
	resp, err := decodeResponse(raw)
	if err != nil || (len(resp.Result) == 0 && len(resp.Error) == 0) {
		if status < 200 || status > 299 {
			return nil, &StatusError{StatusCode: status, Body: truncate(raw, maxErrorBody)}
		}
		if err != nil {
			return nil, errors.Annotatef(ErrMalformedResponse, "%s: %v", req.Method, err)
		}
	}
	if id, ok := resp.RequestID(); ok && id != req.ID {
		return nil, errors.Annotatef(ErrMalformedResponse, "%s: reply id %q does not match request id %q", req.Method, id, req.ID)
	}
	result, err := resp.settle()
	if err != nil {
		t.log.Debug("request failed", zap.String("method", req.Method), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Close releases idle connections. Calls made afterwards fail with
// ErrClosed.
func (t *HTTPTransport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	t.client.CloseIdleConnections()
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(bytes.TrimSpace(b))
}
