// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Endpoint schemes understood by Dial.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeWS    = "ws"
	SchemeWSS   = "wss"
)

// TransportFactory builds a transport for endpoint.
type TransportFactory func(ctx context.Context, endpoint string, opts ...Option) (Transport, error)

var (
	transportsMu sync.RWMutex
	transports   = map[string]TransportFactory{
		SchemeHTTP:  newHTTP,
		SchemeHTTPS: newHTTP,
		SchemeWS:    newWebSocket,
		SchemeWSS:   newWebSocket,
	}
)

func newHTTP(_ context.Context, endpoint string, opts ...Option) (Transport, error) {
	return NewHTTPTransport(endpoint, opts...), nil
}

func newWebSocket(_ context.Context, endpoint string, opts ...Option) (Transport, error) {
	return NewWebSocketTransport(endpoint, opts...), nil
}

// RegisterTransport makes Dial use factory for endpoints with the given
// scheme, replacing any existing registration.
func RegisterTransport(scheme string, factory TransportFactory) {
	transportsMu.Lock()
	defer transportsMu.Unlock()
	transports[strings.ToLower(scheme)] = factory
}

// AvailableTransports returns the registered schemes in sorted order.
func AvailableTransports() []string {
	transportsMu.RLock()
	defer transportsMu.RUnlock()
	result := make([]string, 0, len(transports))
	for name := range transports {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// HasTransport checks if a scheme is registered
func HasTransport(scheme string) bool {
	_, ok := lookupTransport(scheme)
	return ok
}

func lookupTransport(scheme string) (TransportFactory, bool) {
	transportsMu.RLock()
	defer transportsMu.RUnlock()
	f, ok := transports[strings.ToLower(scheme)]
	return f, ok
}
