// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"encoding/json"
)

// Codec decodes call results into caller-supplied values.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// JSONCodec is a JSON-based codec
type JSONCodec struct{}

func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// defaultCodec is used when no codec is specified
var defaultCodec Codec = JSONCodec{}

// RawCodec passes already-encoded results through unchanged when the target
// is a *json.RawMessage or *[]byte, and falls back to JSON otherwise.
type RawCodec struct{}

func (RawCodec) Encode(v any) ([]byte, error) {
	switch b := v.(type) {
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	}
	return json.Marshal(v)
}

func (RawCodec) Decode(data []byte, v any) error {
	switch b := v.(type) {
	case *json.RawMessage:
		*b = append((*b)[:0], data...)
		return nil
	case *[]byte:
		*b = append((*b)[:0], data...)
		return nil
	}
	return json.Unmarshal(data, v)
}

// Raw is a codec that passes raw results through unchanged
var Raw Codec = RawCodec{}
