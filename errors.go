// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"fmt"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/juju/errors"
)

const (
	// ErrTimeout is returned when no reply arrives within the request bound,
	// or when the connection does not open within the open bound.
	ErrTimeout = errors.ConstError("kodi: request timeout")

	// ErrConnectionClosed is returned for calls outstanding when the duplex
	// connection goes away, and for calls made after it has gone.
	ErrConnectionClosed = errors.ConstError("kodi: connection closed")

	// ErrClosed is returned by Invoke after Close has been called.
	ErrClosed = errors.ConstError("kodi: transport closed")

	// ErrMalformedResponse is returned when a reply cannot be interpreted as
	// a JSON-RPC response to the call it answers.
	ErrMalformedResponse = errors.ConstError("kodi: malformed response")

	ErrEmptyMethod       = errors.ConstError("kodi: empty method name")
	ErrDuplicateID       = errors.ConstError("kodi: duplicate request id")
	ErrUnsupportedScheme = errors.ConstError("kodi: unsupported endpoint scheme")
)

// RemoteError is a failure reported by the remote procedure itself. It is
// delivered to the caller exactly as the server sent it.
type RemoteError = json2.Error

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = json2.E_PARSE
	CodeInvalidRequest = json2.E_INVALID_REQ
	CodeMethodNotFound = json2.E_NO_METHOD
	CodeInvalidParams  = json2.E_BAD_PARAMS
	CodeInternalError  = json2.E_INTERNAL
	CodeServerError    = json2.E_SERVER
)

// StatusError is returned by the HTTP transport when the server answers
// with a non-2xx status and a body that is not a JSON-RPC response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("kodi: received status code %d", e.StatusCode)
	}
	return fmt.Sprintf("kodi: received status code %d: %s", e.StatusCode, e.Body)
}

// IsRemoteError reports whether err carries an error reported by the remote
// procedure.
func IsRemoteError(err error) bool {
	return errors.HasType[*RemoteError](err)
}

// timeoutError marks err as both ErrTimeout and a juju/errors Timeout.
func timeoutError(format string, args ...any) error {
	return errors.WithType(errors.Annotatef(ErrTimeout, format, args...), errors.Timeout)
}

// closedError wraps the cause of a connection loss so that it satisfies
// errors.Is(err, ErrConnectionClosed).
func closedError(cause error) error {
	if cause == nil || errors.Is(cause, ErrConnectionClosed) {
		return ErrConnectionClosed
	}
	return errors.WithType(errors.Annotate(cause, string(ErrConnectionClosed)), ErrConnectionClosed)
}
