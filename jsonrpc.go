// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/json"
)

// JSONRPC exposes the API's own meta procedures.
type JSONRPC struct {
	invoke InvokeFunc
}

// APIVersion is the version of the remote API.
type APIVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// NotificationConfig selects which notification groups a WebSocket client
// receives.
type NotificationConfig struct {
	AudioLibrary *bool `json:"AudioLibrary,omitempty"`
	Application  *bool `json:"Application,omitempty"`
	GUI          *bool `json:"GUI,omitempty"`
	Input        *bool `json:"Input,omitempty"`
	Player       *bool `json:"Player,omitempty"`
	Playlist     *bool `json:"Playlist,omitempty"`
	PVR          *bool `json:"PVR,omitempty"`
	System       *bool `json:"System,omitempty"`
	VideoLibrary *bool `json:"VideoLibrary,omitempty"`
	Other        *bool `json:"Other,omitempty"`
}

// Configuration is the result of Get/SetConfiguration.
type Configuration struct {
	Notifications NotificationConfig `json:"notifications"`
}

// GetConfiguration returns the client's notification configuration.
func (j *JSONRPC) GetConfiguration(ctx context.Context) (Configuration, error) {
	return invokeInto[Configuration](ctx, j.invoke, "JSONRPC.GetConfiguration", nil)
}

// Introspect returns the API schema.
func (j *JSONRPC) Introspect(ctx context.Context) (json.RawMessage, error) {
	return invokeInto[json.RawMessage](ctx, j.invoke, "JSONRPC.Introspect", nil)
}

// NotifyAll broadcasts a notification to every connected client.
func (j *JSONRPC) NotifyAll(ctx context.Context, sender, message string, data any) error {
	return invokeOK(ctx, j.invoke, "JSONRPC.NotifyAll", struct {
		Sender  string `json:"sender"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}{sender, message, data})
}

// Permission returns which permissions the client has been granted.
func (j *JSONRPC) Permission(ctx context.Context) (map[string]bool, error) {
	return invokeInto[map[string]bool](ctx, j.invoke, "JSONRPC.Permission", nil)
}

// Ping returns "pong".
func (j *JSONRPC) Ping(ctx context.Context) (string, error) {
	return invokeInto[string](ctx, j.invoke, "JSONRPC.Ping", nil)
}

// SetConfiguration changes which notifications the client receives.
func (j *JSONRPC) SetConfiguration(ctx context.Context, notifications NotificationConfig) (Configuration, error) {
	return invokeInto[Configuration](ctx, j.invoke, "JSONRPC.SetConfiguration", struct {
		Notifications NotificationConfig `json:"notifications"`
	}{notifications})
}

// Version returns the API version.
func (j *JSONRPC) Version(ctx context.Context) (APIVersion, error) {
	out, err := invokeInto[struct {
		Version APIVersion `json:"version"`
	}](ctx, j.invoke, "JSONRPC.Version", nil)
	return out.Version, err
}
