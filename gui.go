// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// GUI drives the user interface.
type GUI struct {
	invoke InvokeFunc
}

// Notification display times, in milliseconds.
const (
	NotificationShort = 5000
	NotificationLong  = 10000
)

// ActivateWindow opens window, e.g. "home" or "videos", with optional
// parameters.
func (g *GUI) ActivateWindow(ctx context.Context, window string, parameters ...string) error {
	return invokeOK(ctx, g.invoke, "GUI.ActivateWindow", struct {
		Window     string   `json:"window"`
		Parameters []string `json:"parameters,omitempty"`
	}{window, parameters})
}

// GetProperties returns the named GUI properties, e.g. "currentwindow",
// "currentcontrol", "skin" and "fullscreen".
func (g *GUI) GetProperties(ctx context.Context, properties ...string) (Properties, error) {
	return invokeInto[Properties](ctx, g.invoke, "GUI.GetProperties", propertiesParams{nonNil(properties)})
}

// SetFullscreen toggles fullscreen and returns the new state.
func (g *GUI) SetFullscreen(ctx context.Context, fullscreen Toggle) (bool, error) {
	return invokeInto[bool](ctx, g.invoke, "GUI.SetFullscreen", struct {
		Fullscreen Toggle `json:"fullscreen"`
	}{fullscreen})
}

// ShowNotification pops up a notification for displayTime milliseconds.
// image is "info", "warning", "error" or a URL, and may be empty.
func (g *GUI) ShowNotification(ctx context.Context, title, message, image string, displayTime int) error {
	return invokeOK(ctx, g.invoke, "GUI.ShowNotification", struct {
		Title       string `json:"title"`
		Message     string `json:"message"`
		Image       string `json:"image,omitempty"`
		DisplayTime int    `json:"displaytime,omitempty"`
	}{title, message, image, displayTime})
}
