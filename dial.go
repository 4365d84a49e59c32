// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"net/url"

	"github.com/juju/errors"
)

// Dial returns a Client for endpoint. The scheme picks the transport:
// "http" and "https" post each call, e.g. "http://kodi.local:8080/jsonrpc";
// "ws" and "wss" multiplex calls over one socket, e.g.
// "ws://kodi.local:9090/jsonrpc".
//
// The WebSocket transport connects in the background. Dial does not wait
// for it; use WaitOpen on the transport to do so.
func Dial(ctx context.Context, endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Annotatef(err, "parse endpoint %q", endpoint)
	}
	factory, ok := lookupTransport(u.Scheme)
	if !ok {
		return nil, errors.Annotatef(ErrUnsupportedScheme, "%q", u.Scheme)
	}
	t, err := factory(ctx, endpoint, opts...)
	if err != nil {
		return nil, errors.Annotatef(err, "dial %s", endpoint)
	}
	return NewClient(t, opts...), nil
}

// DialHTTP returns a Client that posts each call to endpoint.
func DialHTTP(endpoint string, opts ...Option) *Client {
	return NewClient(NewHTTPTransport(endpoint, opts...), opts...)
}

// DialWebSocket returns a Client multiplexing calls over one WebSocket to
// endpoint.
func DialWebSocket(endpoint string, opts ...Option) *Client {
	return NewClient(NewWebSocketTransport(endpoint, opts...), opts...)
}
