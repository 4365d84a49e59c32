// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingTransport remembers the last call and answers with result.
type recordingTransport struct {
	method string
	params json.RawMessage
	result json.RawMessage
}

func (r *recordingTransport) Invoke(_ context.Context, method string, params any) (json.RawMessage, error) {
	r.method = method
	r.params = nil
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		r.params = data
	}
	if r.result == nil {
		return json.RawMessage(`"OK"`), nil
	}
	return r.result, nil
}

func (*recordingTransport) Close() error { return nil }

func TestNamespaceRequests(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		call   func(*Client) error
		method string
		params string // empty for no params
	}{
		{
			name:   "input key",
			call:   func(c *Client) error { return c.Input.Back(ctx) },
			method: "Input.Back",
		},
		{
			name:   "input text",
			call:   func(c *Client) error { return c.Input.SendText(ctx, "hello", true) },
			method: "Input.SendText",
			params: `{"text":"hello","done":true}`,
		},
		{
			name:   "input action",
			call:   func(c *Client) error { return c.Input.ExecuteAction(ctx, "volumeup") },
			method: "Input.ExecuteAction",
			params: `{"action":"volumeup"}`,
		},
		{
			name:   "audio export to separate files",
			call:   func(c *Client) error { return c.AudioLibrary.Export(ctx, "", false, false) },
			method: "AudioLibrary.Export",
			params: `{"options":{}}`,
		},
		{
			name:   "audio scan",
			call:   func(c *Client) error { return c.AudioLibrary.Scan(ctx, "", true) },
			method: "AudioLibrary.Scan",
			params: `{"showdialogs":true}`,
		},
		{
			name: "favourite add",
			call: func(c *Client) error {
				return c.Favourites.AddFavourite(ctx, Favourite{Title: "Movies", Type: "window", Window: "videos"})
			},
			method: "Favourites.AddFavourite",
			params: `{"title":"Movies","type":"window","window":"videos"}`,
		},
		{
			name:   "playlist add",
			call:   func(c *Client) error { return c.Playlist.Add(ctx, 1, PlaylistItem{MovieID: 7}) },
			method: "Playlist.Add",
			params: `{"playlistid":1,"item":{"movieid":7}}`,
		},
		{
			name:   "playlist swap",
			call:   func(c *Client) error { return c.Playlist.Swap(ctx, 0, 2, 5) },
			method: "Playlist.Swap",
			params: `{"playlistid":0,"position1":2,"position2":5}`,
		},
		{
			name:   "load profile without password",
			call:   func(c *Client) error { return c.Profiles.LoadProfile(ctx, "Kids", false, "") },
			method: "Profiles.LoadProfile",
			params: `{"profile":"Kids","prompt":false}`,
		},
		{
			name:   "load profile with password",
			call:   func(c *Client) error { return c.Profiles.LoadProfile(ctx, "Admin", true, "hunter2") },
			method: "Profiles.LoadProfile",
			params: `{"profile":"Admin","prompt":true,"password":{"value":"hunter2","encryption":"none"}}`,
		},
		{
			name:   "pvr scan",
			call:   func(c *Client) error { return c.PVR.Scan(ctx) },
			method: "PVR.Scan",
		},
		{
			name:   "pvr record",
			call:   func(c *Client) error { return c.PVR.Record(ctx, ToggleNow, "current") },
			method: "PVR.Record",
			params: `{"record":"toggle","channel":"current"}`,
		},
		{
			name:   "settings reset",
			call:   func(c *Client) error { return c.Settings.ResetSettingValue(ctx, "audiooutput.volumesteps") },
			method: "Settings.ResetSettingValue",
			params: `{"setting":"audiooutput.volumesteps"}`,
		},
		{
			name:   "system suspend",
			call:   func(c *Client) error { return c.System.Suspend(ctx) },
			method: "System.Suspend",
		},
		{
			name:   "texture remove",
			call:   func(c *Client) error { return c.Textures.RemoveTexture(ctx, 42) },
			method: "Textures.RemoveTexture",
			params: `{"textureid":42}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			rec := &recordingTransport{}
			require.NoError(tt.call(NewClient(rec)))
			require.Equal(tt.method, rec.method)
			if tt.params == "" {
				require.Nil(rec.params)
				return
			}
			require.JSONEq(tt.params, string(rec.params))
		})
	}
}

func TestNamespaceResults(t *testing.T) {
	ctx := context.Background()

	t.Run("xbmc labels", func(t *testing.T) {
		require := require.New(t)
		rec := &recordingTransport{result: json.RawMessage(`{"System.FreeSpace":"12 GB"}`)}
		labels, err := NewClient(rec).XBMC.GetInfoLabels(ctx, "System.FreeSpace")
		require.NoError(err)
		require.Equal(map[string]string{"System.FreeSpace": "12 GB"}, labels)
		require.JSONEq(`{"labels":["System.FreeSpace"]}`, string(rec.params))
	})

	t.Run("xbmc booleans never null", func(t *testing.T) {
		require := require.New(t)
		rec := &recordingTransport{result: json.RawMessage(`{}`)}
		_, err := NewClient(rec).XBMC.GetInfoBooleans(ctx)
		require.NoError(err)
		require.JSONEq(`{"booleans":[]}`, string(rec.params))
	})

	t.Run("system properties", func(t *testing.T) {
		require := require.New(t)
		rec := &recordingTransport{result: json.RawMessage(`{"canshutdown":true,"cansuspend":false}`)}
		props, err := NewClient(rec).System.GetProperties(ctx, "canshutdown", "cansuspend")
		require.NoError(err)
		require.True(props["canshutdown"])
		require.False(props["cansuspend"])
	})

	t.Run("setting value", func(t *testing.T) {
		require := require.New(t)
		rec := &recordingTransport{result: json.RawMessage(`{"value":"en_GB"}`)}
		value, err := NewClient(rec).Settings.GetSettingValue(ctx, "locale.language")
		require.NoError(err)
		require.JSONEq(`"en_GB"`, string(value))
		require.JSONEq(`{"setting":"locale.language"}`, string(rec.params))

		rec.result = json.RawMessage(`true`)
		ok, err := NewClient(rec).Settings.SetSettingValue(ctx, "locale.language", "de_DE")
		require.NoError(err)
		require.True(ok)
		require.JSONEq(`{"setting":"locale.language","value":"de_DE"}`, string(rec.params))
	})

	t.Run("files", func(t *testing.T) {
		require := require.New(t)
		rec := &recordingTransport{result: json.RawMessage(`{"sources":[{"file":"/media/movies/","label":"Movies"}],"limits":{"start":0,"end":1,"total":1}}`)}
		sources, err := NewClient(rec).Files.GetSources(ctx, "video")
		require.NoError(err)
		require.Equal([]Source{{File: "/media/movies/", Label: "Movies"}}, sources.Sources)
		require.Equal(1, sources.Limits.Total)

		rec.result = json.RawMessage(`{"protocol":"http","mode":"redirect","details":{"path":"vfs/%2Fmedia%2Fa.mkv"}}`)
		dl, err := NewClient(rec).Files.PrepareDownload(ctx, "/media/a.mkv")
		require.NoError(err)
		require.Equal("redirect", dl.Mode)
		require.Equal("vfs/%2Fmedia%2Fa.mkv", dl.Details.Path)
	})

	t.Run("pvr recordings", func(t *testing.T) {
		require := require.New(t)
		rec := &recordingTransport{result: json.RawMessage(`{"recordings":[],"limits":{"start":0,"end":0,"total":0}}`)}
		_, err := NewClient(rec).PVR.GetRecordings(ctx, []string{"title"}, &Limits{End: 5})
		require.NoError(err)
		require.Equal("PVR.GetRecordings", rec.method)
		require.JSONEq(`{"properties":["title"],"limits":{"start":0,"end":5}}`, string(rec.params))
	})

	t.Run("jsonrpc configuration", func(t *testing.T) {
		require := require.New(t)
		rec := &recordingTransport{result: json.RawMessage(`{"notifications":{"Player":false,"Other":true}}`)}
		off := false
		cfg, err := NewClient(rec).JSONRPC.SetConfiguration(ctx, NotificationConfig{Player: &off})
		require.NoError(err)
		require.JSONEq(`{"notifications":{"Player":false}}`, string(rec.params))
		require.NotNil(cfg.Notifications.Player)
		require.False(*cfg.Notifications.Player)
		require.NotNil(cfg.Notifications.Other)
		require.True(*cfg.Notifications.Other)

		_, err = NewClient(rec).JSONRPC.GetConfiguration(ctx)
		require.NoError(err)
		require.Equal("JSONRPC.GetConfiguration", rec.method)
		require.Nil(rec.params)
	})
}

func TestInputNavigation(t *testing.T) {
	ctx := context.Background()
	rec := &recordingTransport{}
	in := NewClient(rec).Input
	keys := map[string]func(context.Context) error{
		"Input.Back":        in.Back,
		"Input.ContextMenu": in.ContextMenu,
		"Input.Down":        in.Down,
		"Input.Home":        in.Home,
		"Input.Info":        in.Info,
		"Input.Left":        in.Left,
		"Input.Right":       in.Right,
		"Input.Select":      in.Select,
		"Input.ShowOSD":     in.ShowOSD,
		"Input.Up":          in.Up,
	}
	for method, press := range keys {
		require.NoError(t, press(ctx))
		require.Equal(t, method, rec.method)
		require.Nil(t, rec.params)
	}
}
