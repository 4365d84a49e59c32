// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Player controls playback.
type Player struct {
	invoke InvokeFunc
}

// ActivePlayer is an entry of Player.GetActivePlayers.
type ActivePlayer struct {
	PlayerID   int    `json:"playerid"`
	PlayerType string `json:"playertype"`
	Type       string `json:"type"`
}

// PlayerInfo is an entry of Player.GetPlayers.
type PlayerInfo struct {
	Name       string `json:"name"`
	PlaysAudio bool   `json:"playsaudio"`
	PlaysVideo bool   `json:"playsvideo"`
	Type       string `json:"type"`
}

// MediaItem is the item a player is playing.
type MediaItem struct {
	ID    int    `json:"id,omitempty"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	File  string `json:"file,omitempty"`
}

// PlayerSpeed is returned by PlayPause and SetSpeed.
type PlayerSpeed struct {
	Speed int `json:"speed"`
}

// Time is a playback position.
type Time struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	Seconds      int `json:"seconds"`
	Milliseconds int `json:"milliseconds"`
}

// SeekResult is the position reached by Player.Seek.
type SeekResult struct {
	Percentage float64 `json:"percentage"`
	Time       Time    `json:"time"`
	TotalTime  Time    `json:"totaltime"`
}

// OpenItem selects what Player.Open plays. Set exactly one field.
type OpenItem struct {
	File       string `json:"file,omitempty"`
	Directory  string `json:"directory,omitempty"`
	PlaylistID *int   `json:"playlistid,omitempty"`
	Position   *int   `json:"position,omitempty"`
	MovieID    int    `json:"movieid,omitempty"`
	EpisodeID  int    `json:"episodeid,omitempty"`
	SongID     int    `json:"songid,omitempty"`
	AlbumID    int    `json:"albumid,omitempty"`
	ChannelID  int    `json:"channelid,omitempty"`
}

// OpenOptions are the optional arguments of Player.Open.
type OpenOptions struct {
	Repeat  string `json:"repeat,omitempty"`
	Resume  any    `json:"resume,omitempty"`
	Shuffle *bool  `json:"shuffle,omitempty"`
}

type playerParams struct {
	PlayerID int `json:"playerid"`
}

// AddSubtitle loads a subtitle file or URL into the player.
func (p *Player) AddSubtitle(ctx context.Context, playerID int, subtitle string) error {
	return invokeOK(ctx, p.invoke, "Player.AddSubtitle", struct {
		PlayerID int    `json:"playerid"`
		Subtitle string `json:"subtitle"`
	}{playerID, subtitle})
}

// GetActivePlayers returns the players currently playing something.
func (p *Player) GetActivePlayers(ctx context.Context) ([]ActivePlayer, error) {
	return invokeInto[[]ActivePlayer](ctx, p.invoke, "Player.GetActivePlayers", nil)
}

// GetItem returns the item a player is playing.
func (p *Player) GetItem(ctx context.Context, playerID int, properties ...string) (MediaItem, error) {
	out, err := invokeInto[struct {
		Item MediaItem `json:"item"`
	}](ctx, p.invoke, "Player.GetItem", struct {
		PlayerID   int      `json:"playerid"`
		Properties []string `json:"properties,omitempty"`
	}{playerID, properties})
	return out.Item, err
}

// GetPlayers lists the players able to play media ("all", "video" or
// "audio").
func (p *Player) GetPlayers(ctx context.Context, media string) ([]PlayerInfo, error) {
	if media == "" {
		media = "all"
	}
	return invokeInto[[]PlayerInfo](ctx, p.invoke, "Player.GetPlayers", struct {
		Media string `json:"media"`
	}{media})
}

// GetProperties returns the named properties of a player.
func (p *Player) GetProperties(ctx context.Context, playerID int, properties ...string) (Properties, error) {
	return invokeInto[Properties](ctx, p.invoke, "Player.GetProperties", struct {
		PlayerID   int      `json:"playerid"`
		Properties []string `json:"properties"`
	}{playerID, nonNil(properties)})
}

// GoTo jumps to "previous", "next" or a playlist position.
func (p *Player) GoTo(ctx context.Context, playerID int, to any) error {
	return invokeOK(ctx, p.invoke, "Player.GoTo", struct {
		PlayerID int `json:"playerid"`
		To       any `json:"to"`
	}{playerID, to})
}

// Open starts playback of item.
func (p *Player) Open(ctx context.Context, item OpenItem, options *OpenOptions) error {
	return invokeOK(ctx, p.invoke, "Player.Open", struct {
		Item    OpenItem     `json:"item"`
		Options *OpenOptions `json:"options,omitempty"`
	}{item, options})
}

// PlayPause pauses or resumes playback and returns the new speed.
func (p *Player) PlayPause(ctx context.Context, playerID int, play Toggle) (PlayerSpeed, error) {
	return invokeInto[PlayerSpeed](ctx, p.invoke, "Player.PlayPause", struct {
		PlayerID int    `json:"playerid"`
		Play     Toggle `json:"play"`
	}{playerID, play})
}

// Seek moves the playback position. value may be a percentage, a Time, or
// an object such as {"step": "smallforward"}.
func (p *Player) Seek(ctx context.Context, playerID int, value any) (SeekResult, error) {
	return invokeInto[SeekResult](ctx, p.invoke, "Player.Seek", struct {
		PlayerID int `json:"playerid"`
		Value    any `json:"value"`
	}{playerID, value})
}

// SetRepeat sets the repeat mode: "off", "one", "all" or "cycle".
func (p *Player) SetRepeat(ctx context.Context, playerID int, repeat string) error {
	return invokeOK(ctx, p.invoke, "Player.SetRepeat", struct {
		PlayerID int    `json:"playerid"`
		Repeat   string `json:"repeat"`
	}{playerID, repeat})
}

// SetShuffle turns shuffle on or off.
func (p *Player) SetShuffle(ctx context.Context, playerID int, shuffle Toggle) error {
	return invokeOK(ctx, p.invoke, "Player.SetShuffle", struct {
		PlayerID int    `json:"playerid"`
		Shuffle  Toggle `json:"shuffle"`
	}{playerID, shuffle})
}

// SetSpeed sets the playback speed. speed may be an int or "increment"
// or "decrement".
func (p *Player) SetSpeed(ctx context.Context, playerID int, speed any) (PlayerSpeed, error) {
	return invokeInto[PlayerSpeed](ctx, p.invoke, "Player.SetSpeed", struct {
		PlayerID int `json:"playerid"`
		Speed    any `json:"speed"`
	}{playerID, speed})
}

// Stop stops playback.
func (p *Player) Stop(ctx context.Context, playerID int) error {
	return invokeOK(ctx, p.invoke, "Player.Stop", playerParams{playerID})
}

// Zoom zooms the current picture. zoom may be "in", "out" or a level.
func (p *Player) Zoom(ctx context.Context, playerID int, zoom any) error {
	return invokeOK(ctx, p.invoke, "Player.Zoom", struct {
		PlayerID int `json:"playerid"`
		Zoom     any `json:"zoom"`
	}{playerID, zoom})
}
