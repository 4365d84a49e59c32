// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/juju/clock"
	"go.uber.org/zap"
)

const (
	// DefaultRequestTimeout bounds a single HTTP round trip.
	DefaultRequestTimeout = 5 * time.Second

	// DefaultOpenTimeout bounds how long a call waits for the WebSocket to
	// open.
	DefaultOpenTimeout = 5 * time.Second

	// DefaultReadLimit is the largest inbound WebSocket message accepted.
	// Library listings easily exceed the websocket package default.
	DefaultReadLimit = 32 << 20
)

// NotificationHandler receives server-initiated messages (for example
// "Player.OnPlay"). It runs on the transport's read loop and must not block.
type NotificationHandler func(method string, params json.RawMessage)

// Option configures a transport or a Client.
type Option func(*options)

type options struct {
	username string
	password string
	header   http.Header

	httpClient     *http.Client
	requestTimeout time.Duration
	openTimeout    time.Duration
	callTimeout    time.Duration
	readLimit      int64

	clock        clock.Clock
	logger       *zap.Logger
	codec        Codec
	middleware   []Middleware
	notification NotificationHandler
}

func newOptions(opts []Option) *options {
	o := &options{
		header:         make(http.Header),
		requestTimeout: DefaultRequestTimeout,
		openTimeout:    DefaultOpenTimeout,
		readLimit:      DefaultReadLimit,
		clock:          clock.WallClock,
		logger:         zap.NewNop(),
		codec:          defaultCodec,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithBasicAuth attaches basic credentials to every HTTP request and to the
// WebSocket handshake.
func WithBasicAuth(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// WithHeader adds a header to every outbound HTTP request and handshake.
func WithHeader(key, value string) Option {
	return func(o *options) { o.header.Add(key, value) }
}

// WithHTTPClient sets the client used for HTTP requests and the WebSocket
// handshake.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithRequestTimeout sets the HTTP round trip bound. Zero disables it.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithOpenTimeout sets how long a WebSocket call waits for the connection
// to open. Zero waits for the call's context alone.
func WithOpenTimeout(d time.Duration) Option {
	return func(o *options) { o.openTimeout = d }
}

// WithCallTimeout bounds each WebSocket call from send to reply. The
// default of zero leaves calls bounded by their context only.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) { o.callTimeout = d }
}

// WithReadLimit sets the largest inbound WebSocket message accepted.
func WithReadLimit(n int64) Option {
	return func(o *options) { o.readLimit = n }
}

// WithClock sets the clock timeouts are measured on.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCodec sets the codec Client.Call decodes results with.
func WithCodec(c Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithMiddleware appends middleware to the Client's invoke chain. The first
// middleware given is the outermost.
func WithMiddleware(m ...Middleware) Option {
	return func(o *options) { o.middleware = append(o.middleware, m...) }
}

// WithNotificationHandler subscribes to server-initiated messages on the
// WebSocket transport. Notifications never settle a pending call.
func WithNotificationHandler(h NotificationHandler) Option {
	return func(o *options) { o.notification = h }
}
