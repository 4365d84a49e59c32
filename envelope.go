// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/juju/errors"
)

// ProtocolVersion is the JSON-RPC version tag sent with every request.
const ProtocolVersion = "2.0"

// Request is the envelope written to the wire for a single call.
type Request struct {
	ID      string `json:"id"`
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// newRequest builds an envelope with a fresh random 128-bit id. Kodi expects
// params to always be present, so nil params are sent as an empty object.
func newRequest(method string, params any) (*Request, error) {
	if method == "" {
		return nil, ErrEmptyMethod
	}
	if params == nil {
		params = struct{}{}
	}
	return &Request{
		ID:      uuid.NewString(),
		JSONRPC: ProtocolVersion,
		Method:  method,
		Params:  params,
	}, nil
}

func (r *Request) encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, errors.Annotatef(err, "encode %s params", r.Method)
	}
	return data, nil
}

// Response is an inbound message. Correlated replies carry an ID and exactly
// one of Result and Error; server notifications carry Method and Params and
// no ID.
type Response struct {
	ID      json.RawMessage `json:"id,omitempty"`
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
}

var jsonNull = []byte("null")

func decodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Annotate(err, "decode response")
	}
	return &resp, nil
}

// recoverID extracts the id of a message that did not decode as a
// Response, so the call it answers can still be rejected.
func recoverID(data []byte) (string, bool) {
	var partial struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &partial); err != nil {
		return "", false
	}
	return (&Response{ID: partial.ID}).RequestID()
}

// RequestID returns the string id the message answers. ok is false for
// notifications and for ids that are not strings, since every id this
// package sends is a string.
func (r *Response) RequestID() (id string, ok bool) {
	if len(r.ID) == 0 || bytes.Equal(r.ID, jsonNull) {
		return "", false
	}
	if err := json.Unmarshal(r.ID, &id); err != nil {
		return "", false
	}
	return id, true
}

// IsNotification reports whether the message is server-initiated.
func (r *Response) IsNotification() bool {
	_, hasID := r.RequestID()
	return !hasID && r.Method != ""
}

// settle interprets a correlated reply: the raw result, or the error the
// call must be rejected with.
func (r *Response) settle() (json.RawMessage, error) {
	hasResult := len(r.Result) > 0
	hasError := len(r.Error) > 0 && !bytes.Equal(r.Error, jsonNull)
	switch {
	case hasResult && hasError:
		return nil, errors.Annotate(ErrMalformedResponse, "both result and error present")
	case hasError:
		return nil, decodeRemoteError(r.Error)
	case hasResult:
		return r.Result, nil
	default:
		return nil, errors.Annotate(ErrMalformedResponse, "neither result nor error present")
	}
}

// decodeRemoteError keeps the server's error value intact. Values that are
// not JSON-RPC error objects become the message of a server error, the same
// way gorilla's json2 client treats them.
func decodeRemoteError(raw json.RawMessage) error {
	remote := &RemoteError{}
	if err := json.Unmarshal(raw, remote); err != nil {
		return &RemoteError{
			Code:    CodeServerError,
			Message: string(raw),
		}
	}
	return remote
}
