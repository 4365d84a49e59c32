// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// XBMC evaluates skin info labels and booleans.
type XBMC struct {
	invoke InvokeFunc
}

// GetInfoBooleans evaluates boolean conditions such as
// "Player.HasVideo".
func (x *XBMC) GetInfoBooleans(ctx context.Context, booleans ...string) (map[string]bool, error) {
	return invokeInto[map[string]bool](ctx, x.invoke, "XBMC.GetInfoBooleans", struct {
		Booleans []string `json:"booleans"`
	}{nonNil(booleans)})
}

// GetInfoLabels evaluates info labels such as "System.FreeSpace".
func (x *XBMC) GetInfoLabels(ctx context.Context, labels ...string) (map[string]string, error) {
	return invokeInto[map[string]string](ctx, x.invoke, "XBMC.GetInfoLabels", struct {
		Labels []string `json:"labels"`
	}{nonNil(labels)})
}
