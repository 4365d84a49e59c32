// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sync"
	"time"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2/channel"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/luxfi/kodi/internal/wschan"
)

// ChannelDialer opens the duplex channel a WebSocketTransport runs on. The
// context stays live for as long as the transport does.
type ChannelDialer func(ctx context.Context) (channel.Channel, error)

// WebSocketTransport shares one duplex connection between any number of
// concurrent calls. Replies are matched to callers by request id and may
// arrive in any order.
type WebSocketTransport struct {
	endpoint string
	dial     ChannelDialer

	ctx    context.Context
	cancel context.CancelFunc

	state *lifecycle
	calls *callTable

	mu      sync.Mutex // guards ch
	ch      channel.Channel
	writeMu sync.Mutex // one frame at a time

	openTimeout time.Duration
	callTimeout time.Duration
	clock       clock.Clock
	log         *zap.Logger
	notify      NotificationHandler

	readDone  chan struct{}
	closeOnce sync.Once
}

// NewWebSocketTransport connects to endpoint, e.g. "ws://kodi.local:9090",
// in the background and returns immediately. Calls made before the
// connection opens wait for it.
func NewWebSocketTransport(endpoint string, opts ...Option) *WebSocketTransport {
	o := newOptions(opts)
	dial := func(ctx context.Context) (channel.Channel, error) {
		return dialWebSocket(ctx, endpoint, o)
	}
	return newWebSocketTransport(endpoint, dial, o)
}

// NewChannelTransport runs the multiplexing transport over the channel
// returned by dial.
func NewChannelTransport(dial ChannelDialer, opts ...Option) *WebSocketTransport {
	return newWebSocketTransport("channel", dial, newOptions(opts))
}

func newWebSocketTransport(endpoint string, dial ChannelDialer, o *options) *WebSocketTransport {
	ctx, cancel := context.WithCancel(context.Background())
	t := &WebSocketTransport{
		endpoint:    endpoint,
		dial:        dial,
		ctx:         ctx,
		cancel:      cancel,
		state:       newLifecycle(),
		calls:       newCallTable(),
		openTimeout: o.openTimeout,
		callTimeout: o.callTimeout,
		clock:       o.clock,
		log:         o.logger.With(zap.String("transport", "websocket"), zap.String("endpoint", endpoint)),
		notify:      o.notification,
		readDone:    make(chan struct{}),
	}
	go t.connect()
	return t
}

func (t *WebSocketTransport) connect() {
	ch, err := t.dial(t.ctx)
	if err != nil {
		t.log.Info("connection failed", zap.Error(err))
		t.shutdown(errors.Annotate(err, "dial"))
		close(t.readDone)
		return
	}

	t.mu.Lock()
	t.ch = ch
	t.mu.Unlock()

	if !t.state.opened() {
		// Closed while dialing.
		_ = ch.Close()
		close(t.readDone)
		return
	}
	t.log.Info("connection open")
	t.readLoop(ch)
}

func (t *WebSocketTransport) readLoop(ch channel.Channel) {
	defer close(t.readDone)
	for {
		data, err := ch.Recv()
		if err != nil {
			t.shutdown(err)
			return
		}
		t.dispatch(data)
	}
}

// dispatch routes one inbound message. Anything that cannot be matched to
// an outstanding call is dropped without affecting other calls.
func (t *WebSocketTransport) dispatch(data []byte) {
	resp, err := decodeResponse(data)
	if err != nil {
		if id, ok := recoverID(data); ok {
			if t.calls.reject(id, errors.Annotate(ErrMalformedResponse, err.Error())) {
				t.log.Warn("rejecting malformed reply", zap.String("id", id), zap.Error(err))
				return
			}
		}
		t.log.Warn("dropping unparseable message", zap.Error(err), zap.Int("bytes", len(data)))
		return
	}

	id, ok := resp.RequestID()
	if !ok {
		if resp.Method != "" && t.notify != nil {
			t.notify(resp.Method, resp.Params)
			return
		}
		t.log.Debug("dropping uncorrelated message", zap.String("method", resp.Method))
		return
	}

	result, err := resp.settle()
	if !t.calls.settle(id, callResult{Result: result, Err: err}) {
		t.log.Debug("dropping unroutable reply", zap.String("id", id))
	}
}

// shutdown moves the connection to Closed and rejects every outstanding
// call. The state changes before the table is drained, so a call that
// registers concurrently either sees Closed or is drained.
func (t *WebSocketTransport) shutdown(cause error) {
	if !t.state.closed(cause) {
		return
	}
	n := t.calls.drain(closedError(cause))
	t.log.Info("connection closed", zap.Error(cause), zap.Int("rejected", n))
}

// Invoke sends method with params and waits for the reply carrying the
// same id. If the connection is not open yet the call waits up to the open
// timeout for it.
func (t *WebSocketTransport) Invoke(ctx context.Context, method string, params any) (json.RawMessage, error) {
	req, err := newRequest(method, params)
	if err != nil {
		return nil, err
	}
	body, err := req.encode()
	if err != nil {
		return nil, err
	}
	if err := t.state.waitOpen(ctx, t.clock, t.openTimeout); err != nil {
		return nil, err
	}

	call, err := t.calls.register(req.ID, method)
	if err != nil {
		return nil, err
	}
	if !t.state.IsOpen() {
		t.calls.remove(req.ID)
		return nil, closedError(t.state.Cause())
	}

	t.log.Debug("sending request", zap.String("method", method), zap.String("id", req.ID))
	if err := t.send(body); err != nil {
		t.calls.remove(req.ID)
		return nil, errors.Annotatef(err, "send %s", method)
	}

	var expired <-chan time.Time
	if t.callTimeout > 0 {
		timer := t.clock.NewTimer(t.callTimeout)
		defer timer.Stop()
		expired = timer.Chan()
	}

	select {
	case res := <-call.Done():
		return res.Result, res.Err
	case <-expired:
		t.calls.reject(req.ID, timeoutError("no reply to %s within %s", method, t.callTimeout))
	case <-ctx.Done():
		t.calls.reject(req.ID, ctx.Err())
	}
	// Either the rejection above settled the call or a reply beat it.
	res := <-call.Done()
	return res.Result, res.Err
}

func (t *WebSocketTransport) send(body []byte) error {
	t.mu.Lock()
	ch := t.ch
	t.mu.Unlock()
	if ch == nil {
		return ErrConnectionClosed
	}
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return ch.Send(body)
}

// State returns the connection state.
func (t *WebSocketTransport) State() ConnState {
	return t.state.State()
}

// WaitOpen blocks until the connection is open, bounded by the open
// timeout.
func (t *WebSocketTransport) WaitOpen(ctx context.Context) error {
	return t.state.waitOpen(ctx, t.clock, t.openTimeout)
}

// Done is closed once the connection is closed.
func (t *WebSocketTransport) Done() <-chan struct{} {
	return t.state.Done()
}

// Pending returns the number of calls awaiting a reply.
func (t *WebSocketTransport) Pending() int {
	return t.calls.Len()
}

// Close closes the connection. Outstanding calls fail with
// ErrConnectionClosed.
func (t *WebSocketTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		t.shutdown(ErrClosed)

		t.mu.Lock()
		ch := t.ch
		t.mu.Unlock()
		if ch != nil {
			err = ch.Close()
		}
		t.cancel()
		<-t.readDone
	})
	return err
}

func dialWebSocket(ctx context.Context, endpoint string, o *options) (channel.Channel, error) {
	header := o.header.Clone()
	if o.username != "" || o.password != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(o.username + ":" + o.password))
		header.Set("Authorization", "Basic "+creds)
	}
	conn, _, err := cws.Dial(ctx, endpoint, &cws.DialOptions{
		HTTPClient: o.httpClient,
		HTTPHeader: header,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "websocket dial %s", endpoint)
	}
	conn.SetReadLimit(o.readLimit)
	return wschan.New(ctx, conn), nil
}
