// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/json"

	"github.com/juju/errors"
)

// InvokeFunc sends one remote procedure call and returns its raw result.
// It is the only seam between the namespace methods and a transport.
type InvokeFunc func(ctx context.Context, method string, params any) (json.RawMessage, error)

// Transport carries calls to the media center.
type Transport interface {
	// Invoke makes a synchronous call and returns the raw result
	Invoke(ctx context.Context, method string, params any) (json.RawMessage, error)

	// Close releases the transport. Later calls fail.
	Close() error
}

var (
	_ Transport = (*HTTPTransport)(nil)
	_ Transport = (*WebSocketTransport)(nil)
)

// Client is a typed binding over a Transport. Each namespace of the remote
// API is exposed as a field.
type Client struct {
	transport Transport
	invoke    InvokeFunc
	codec     Codec

	Addons       *Addons
	Application  *Application
	AudioLibrary *AudioLibrary
	Favourites   *Favourites
	Files        *Files
	GUI          *GUI
	Input        *Input
	JSONRPC      *JSONRPC
	PVR          *PVR
	Player       *Player
	Playlist     *Playlist
	Profiles     *Profiles
	Settings     *Settings
	System       *System
	Textures     *Textures
	VideoLibrary *VideoLibrary
	XBMC         *XBMC
}

// NewClient wraps t. Middleware given with WithMiddleware runs around every
// call, including calls made through the namespaces.
func NewClient(t Transport, opts ...Option) *Client {
	o := newOptions(opts)
	invoke := Chain(o.middleware...)(t.Invoke)
	return &Client{
		transport: t,
		invoke:    invoke,
		codec:     o.codec,

		Addons:       &Addons{invoke: invoke},
		Application:  &Application{invoke: invoke},
		AudioLibrary: &AudioLibrary{invoke: invoke},
		Favourites:   &Favourites{invoke: invoke},
		Files:        &Files{invoke: invoke},
		GUI:          &GUI{invoke: invoke},
		Input:        &Input{invoke: invoke},
		JSONRPC:      &JSONRPC{invoke: invoke},
		PVR:          &PVR{invoke: invoke},
		Player:       &Player{invoke: invoke},
		Playlist:     &Playlist{invoke: invoke},
		Profiles:     &Profiles{invoke: invoke},
		Settings:     &Settings{invoke: invoke},
		System:       &System{invoke: invoke},
		Textures:     &Textures{invoke: invoke},
		VideoLibrary: &VideoLibrary{invoke: invoke},
		XBMC:         &XBMC{invoke: invoke},
	}
}

// Invoke makes a call and returns the raw result.
func (c *Client) Invoke(ctx context.Context, method string, params any) (json.RawMessage, error) {
	return c.invoke(ctx, method, params)
}

// Call encodes params and decodes the result into reply with the client's
// codec. A nil reply discards the result.
func (c *Client) Call(ctx context.Context, method string, params, reply any) error {
	var payload any
	if params != nil {
		data, err := c.codec.Encode(params)
		if err != nil {
			return errors.Annotatef(err, "encode %s params", method)
		}
		payload = json.RawMessage(data)
	}

	resp, err := c.invoke(ctx, method, payload)
	if err != nil {
		return err
	}

	if reply != nil && len(resp) > 0 {
		if err := c.codec.Decode(resp, reply); err != nil {
			return errors.Annotatef(err, "decode %s result", method)
		}
	}
	return nil
}

// Transport returns the underlying transport.
func (c *Client) Transport() Transport {
	return c.transport
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// invokeInto makes a call and decodes its result as T.
func invokeInto[T any](ctx context.Context, invoke InvokeFunc, method string, params any) (T, error) {
	var out T
	raw, err := invoke(ctx, method, params)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, errors.Annotatef(err, "decode %s result", method)
	}
	return out, nil
}

// invokeOK makes a call whose result is an acknowledgement, usually "OK".
func invokeOK(ctx context.Context, invoke InvokeFunc, method string, params any) error {
	_, err := invoke(ctx, method, params)
	return err
}
