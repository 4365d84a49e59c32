// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/json"
)

// Settings reads and changes Kodi settings.
type Settings struct {
	invoke InvokeFunc
}

// Setting is an entry of Settings.GetSettings.
type Setting struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Type    string          `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Default json.RawMessage `json:"default,omitempty"`
}

// SettingsFilter narrows Settings.GetSettings to one category.
type SettingsFilter struct {
	Section  string `json:"section"`
	Category string `json:"category"`
}

// GetSettingValue returns the raw value of setting.
func (s *Settings) GetSettingValue(ctx context.Context, setting string) (json.RawMessage, error) {
	out, err := invokeInto[struct {
		Value json.RawMessage `json:"value"`
	}](ctx, s.invoke, "Settings.GetSettingValue", struct {
		Setting string `json:"setting"`
	}{setting})
	return out.Value, err
}

// GetSettings lists settings visible at level ("basic", "standard",
// "advanced" or "expert").
func (s *Settings) GetSettings(ctx context.Context, level string, filter *SettingsFilter) ([]Setting, error) {
	out, err := invokeInto[struct {
		Settings []Setting `json:"settings"`
	}](ctx, s.invoke, "Settings.GetSettings", struct {
		Level  string          `json:"level,omitempty"`
		Filter *SettingsFilter `json:"filter,omitempty"`
	}{level, filter})
	return out.Settings, err
}

// ResetSettingValue restores the default of setting.
func (s *Settings) ResetSettingValue(ctx context.Context, setting string) error {
	return invokeOK(ctx, s.invoke, "Settings.ResetSettingValue", struct {
		Setting string `json:"setting"`
	}{setting})
}

// SetSettingValue changes setting and reports whether it was accepted.
func (s *Settings) SetSettingValue(ctx context.Context, setting string, value any) (bool, error) {
	return invokeInto[bool](ctx, s.invoke, "Settings.SetSettingValue", struct {
		Setting string `json:"setting"`
		Value   any    `json:"value"`
	}{setting, value})
}
