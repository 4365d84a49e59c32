// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Input simulates remote control key presses.
type Input struct {
	invoke InvokeFunc
}

func (i *Input) key(ctx context.Context, method string) error {
	return invokeOK(ctx, i.invoke, method, nil)
}

// Back goes to the previous menu.
func (i *Input) Back(ctx context.Context) error { return i.key(ctx, "Input.Back") }

// ContextMenu opens the context menu of the focused item.
func (i *Input) ContextMenu(ctx context.Context) error { return i.key(ctx, "Input.ContextMenu") }

// Down moves the focus down.
func (i *Input) Down(ctx context.Context) error { return i.key(ctx, "Input.Down") }

// Home returns to the home screen.
func (i *Input) Home(ctx context.Context) error { return i.key(ctx, "Input.Home") }

// Info shows information about the focused item.
func (i *Input) Info(ctx context.Context) error { return i.key(ctx, "Input.Info") }

// Left moves the focus left.
func (i *Input) Left(ctx context.Context) error { return i.key(ctx, "Input.Left") }

// Right moves the focus right.
func (i *Input) Right(ctx context.Context) error { return i.key(ctx, "Input.Right") }

// Select activates the focused item.
func (i *Input) Select(ctx context.Context) error { return i.key(ctx, "Input.Select") }

// ShowOSD shows the on-screen display of the player.
func (i *Input) ShowOSD(ctx context.Context) error { return i.key(ctx, "Input.ShowOSD") }

// Up moves the focus up.
func (i *Input) Up(ctx context.Context) error { return i.key(ctx, "Input.Up") }

// ExecuteAction runs a named action, e.g. "playpause" or "volumeup".
func (i *Input) ExecuteAction(ctx context.Context, action string) error {
	return invokeOK(ctx, i.invoke, "Input.ExecuteAction", struct {
		Action string `json:"action"`
	}{action})
}

// SendText types text into the focused input field. done submits it.
func (i *Input) SendText(ctx context.Context, text string, done bool) error {
	return invokeOK(ctx, i.invoke, "Input.SendText", struct {
		Text string `json:"text"`
		Done bool   `json:"done"`
	}{text, done})
}
