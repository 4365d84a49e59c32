// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kodi is a client for the Kodi media center JSON-RPC API.
//
// # Transport Selection
//
// The endpoint scheme picks the transport:
//
//	http://host:8080/jsonrpc   # one POST per call
//	ws://host:9090/jsonrpc     # one socket, multiplexed calls, notifications
//
// Additional schemes can be plugged in with RegisterTransport.
//
// # Usage
//
// Client usage:
//
//	client, err := kodi.Dial(ctx, "ws://localhost:9090/jsonrpc",
//	    kodi.WithNotificationHandler(func(method string, params json.RawMessage) {
//	        log.Println(method)
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Namespace call (typed params and result)
//	players, err := client.Player.GetActivePlayers(ctx)
//
//	// Raw call (any method, raw JSON result)
//	result, err := client.Invoke(ctx, "GUI.GetProperties", map[string]any{
//	    "properties": []string{"currentwindow"},
//	})
//
// # Errors
//
// A failed call returns exactly one of:
//
//   - *RemoteError: Kodi answered with a JSON-RPC error object
//   - ErrTimeout: no answer within the configured time
//   - ErrConnectionClosed or ErrClosed: the WebSocket went away
//   - *StatusError: the HTTP endpoint answered with a non-JSON failure
//
// # Architecture
//
// The package separates concerns:
//
//   - client.go: Client, the Transport interface and the namespace fields
//   - http.go: unary transport, one POST per call
//   - websocket.go: multiplexing transport with a pending-call table
//   - state.go: Connecting, Open and Closed lifecycle of a socket
//   - middleware.go: logging, retry and rate limiting around Invoke
//   - transport.go, dial.go: scheme registry and Dial
//
// Namespace files (player.go, videolibrary.go, ...) only shape params and
// results; every call goes through Client.Invoke.
package kodi
