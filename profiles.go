// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Profiles manages user profiles.
type Profiles struct {
	invoke InvokeFunc
}

// Profile describes a user profile.
type Profile struct {
	Label     string `json:"label"`
	LockMode  int    `json:"lockmode,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type ProfilesResult struct {
	Profiles []Profile      `json:"profiles"`
	Limits   LimitsReturned `json:"limits"`
}

// GetCurrentProfile returns the active profile.
func (p *Profiles) GetCurrentProfile(ctx context.Context, properties ...string) (Profile, error) {
	return invokeInto[Profile](ctx, p.invoke, "Profiles.GetCurrentProfile", struct {
		Properties []string `json:"properties,omitempty"`
	}{properties})
}

// GetProfiles lists all profiles.
func (p *Profiles) GetProfiles(ctx context.Context, properties ...string) (ProfilesResult, error) {
	return invokeInto[ProfilesResult](ctx, p.invoke, "Profiles.GetProfiles", struct {
		Properties []string `json:"properties,omitempty"`
	}{properties})
}

// LoadProfile switches to profile. password is only sent when non-empty.
func (p *Profiles) LoadProfile(ctx context.Context, profile string, prompt bool, password string) error {
	type pass struct {
		Value      string `json:"value"`
		Encryption string `json:"encryption"`
	}
	var pw *pass
	if password != "" {
		pw = &pass{Value: password, Encryption: "none"}
	}
	return invokeOK(ctx, p.invoke, "Profiles.LoadProfile", struct {
		Profile  string `json:"profile"`
		Prompt   bool   `json:"prompt"`
		Password *pass  `json:"password,omitempty"`
	}{profile, prompt, pw})
}
