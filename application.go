// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Application controls the Kodi process itself.
type Application struct {
	invoke InvokeFunc
}

// GetProperties returns the named application properties, e.g. "volume",
// "muted", "name" and "version".
func (a *Application) GetProperties(ctx context.Context, properties ...string) (Properties, error) {
	return invokeInto[Properties](ctx, a.invoke, "Application.GetProperties", propertiesParams{nonNil(properties)})
}

// Quit exits Kodi.
func (a *Application) Quit(ctx context.Context) error {
	return invokeOK(ctx, a.invoke, "Application.Quit", nil)
}

// SetMute mutes or unmutes and returns the new state.
func (a *Application) SetMute(ctx context.Context, mute Toggle) (bool, error) {
	return invokeInto[bool](ctx, a.invoke, "Application.SetMute", struct {
		Mute Toggle `json:"mute"`
	}{mute})
}

// SetVolume sets the volume (0-100, "increment" or "decrement") and
// returns the new level.
func (a *Application) SetVolume(ctx context.Context, volume any) (int, error) {
	return invokeInto[int](ctx, a.invoke, "Application.SetVolume", struct {
		Volume any `json:"volume"`
	}{volume})
}
