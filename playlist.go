// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Playlist edits the audio, video and picture playlists.
type Playlist struct {
	invoke InvokeFunc
}

// Well-known playlist ids.
const (
	PlaylistAudio   = 0
	PlaylistVideo   = 1
	PlaylistPicture = 2
)

// PlaylistInfo is an entry of Playlist.GetPlaylists.
type PlaylistInfo struct {
	PlaylistID int    `json:"playlistid"`
	Type       string `json:"type"`
}

// PlaylistItem selects what to add. Set exactly one field.
type PlaylistItem struct {
	File      string `json:"file,omitempty"`
	Directory string `json:"directory,omitempty"`
	MovieID   int    `json:"movieid,omitempty"`
	EpisodeID int    `json:"episodeid,omitempty"`
	SongID    int    `json:"songid,omitempty"`
	AlbumID   int    `json:"albumid,omitempty"`
	ArtistID  int    `json:"artistid,omitempty"`
}

type PlaylistItemsResult struct {
	Items  []MediaItem    `json:"items"`
	Limits LimitsReturned `json:"limits"`
}

// Add appends item to a playlist.
func (p *Playlist) Add(ctx context.Context, playlistID int, item PlaylistItem) error {
	return invokeOK(ctx, p.invoke, "Playlist.Add", struct {
		PlaylistID int          `json:"playlistid"`
		Item       PlaylistItem `json:"item"`
	}{playlistID, item})
}

// Clear empties a playlist.
func (p *Playlist) Clear(ctx context.Context, playlistID int) error {
	return invokeOK(ctx, p.invoke, "Playlist.Clear", struct {
		PlaylistID int `json:"playlistid"`
	}{playlistID})
}

// GetItems lists the items of a playlist.
func (p *Playlist) GetItems(ctx context.Context, playlistID int, query ListQuery) (PlaylistItemsResult, error) {
	return invokeInto[PlaylistItemsResult](ctx, p.invoke, "Playlist.GetItems", struct {
		PlaylistID int `json:"playlistid"`
		ListQuery
	}{playlistID, query})
}

// GetPlaylists lists the existing playlists.
func (p *Playlist) GetPlaylists(ctx context.Context) ([]PlaylistInfo, error) {
	return invokeInto[[]PlaylistInfo](ctx, p.invoke, "Playlist.GetPlaylists", nil)
}

// Insert puts item at position.
func (p *Playlist) Insert(ctx context.Context, playlistID, position int, item PlaylistItem) error {
	return invokeOK(ctx, p.invoke, "Playlist.Insert", struct {
		PlaylistID int          `json:"playlistid"`
		Position   int          `json:"position"`
		Item       PlaylistItem `json:"item"`
	}{playlistID, position, item})
}

// Remove deletes the item at position.
func (p *Playlist) Remove(ctx context.Context, playlistID, position int) error {
	return invokeOK(ctx, p.invoke, "Playlist.Remove", struct {
		PlaylistID int `json:"playlistid"`
		Position   int `json:"position"`
	}{playlistID, position})
}

// Swap exchanges the items at two positions.
func (p *Playlist) Swap(ctx context.Context, playlistID, position1, position2 int) error {
	return invokeOK(ctx, p.invoke, "Playlist.Swap", struct {
		PlaylistID int `json:"playlistid"`
		Position1  int `json:"position1"`
		Position2  int `json:"position2"`
	}{playlistID, position1, position2})
}
