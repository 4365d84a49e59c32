// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Addons manages add-ons.
type Addons struct {
	invoke InvokeFunc
}

// Addon describes an installed add-on.
type Addon struct {
	AddonID     string `json:"addonid"`
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Enabled     bool   `json:"enabled,omitempty"`
	Description string `json:"description,omitempty"`
}

// AddonsResult is the result of Addons.GetAddons.
type AddonsResult struct {
	Addons []Addon        `json:"addons"`
	Limits LimitsReturned `json:"limits"`
}

// AddonsQuery are the optional filters of Addons.GetAddons.
type AddonsQuery struct {
	Type       string   `json:"type,omitempty"`
	Content    string   `json:"content,omitempty"`
	Enabled    any      `json:"enabled,omitempty"`
	Properties []string `json:"properties,omitempty"`
	Limits     *Limits  `json:"limits,omitempty"`
	Installed  any      `json:"installed,omitempty"`
}

// ExecuteAddon runs an add-on. params may be a map, a list of strings or a
// single string; wait blocks until the add-on finishes.
func (a *Addons) ExecuteAddon(ctx context.Context, addonID string, params any, wait bool) error {
	return invokeOK(ctx, a.invoke, "Addons.ExecuteAddon", struct {
		AddonID string `json:"addonid"`
		Params  any    `json:"params,omitempty"`
		Wait    bool   `json:"wait"`
	}{addonID, params, wait})
}

// GetAddonDetails returns the named properties of one add-on.
func (a *Addons) GetAddonDetails(ctx context.Context, addonID string, properties ...string) (Addon, error) {
	out, err := invokeInto[struct {
		Addon Addon `json:"addon"`
	}](ctx, a.invoke, "Addons.GetAddonDetails", struct {
		AddonID    string   `json:"addonid"`
		Properties []string `json:"properties,omitempty"`
	}{addonID, properties})
	return out.Addon, err
}

// GetAddons lists installed add-ons.
func (a *Addons) GetAddons(ctx context.Context, query AddonsQuery) (AddonsResult, error) {
	return invokeInto[AddonsResult](ctx, a.invoke, "Addons.GetAddons", query)
}

// SetAddonEnabled enables or disables an add-on.
func (a *Addons) SetAddonEnabled(ctx context.Context, addonID string, enabled Toggle) error {
	return invokeOK(ctx, a.invoke, "Addons.SetAddonEnabled", struct {
		AddonID string `json:"addonid"`
		Enabled Toggle `json:"enabled"`
	}{addonID, enabled})
}
