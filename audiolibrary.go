// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// AudioLibrary queries and maintains the music library.
type AudioLibrary struct {
	invoke InvokeFunc
}

// Album is an entry of AudioLibrary.GetAlbums.
type Album struct {
	AlbumID int      `json:"albumid"`
	Label   string   `json:"label"`
	Title   string   `json:"title,omitempty"`
	Artist  []string `json:"artist,omitempty"`
	Year    int      `json:"year,omitempty"`
}

// Artist is an entry of AudioLibrary.GetArtists.
type Artist struct {
	ArtistID int    `json:"artistid"`
	Artist   string `json:"artist"`
	Label    string `json:"label"`
}

// Song is an entry of AudioLibrary.GetSongs.
type Song struct {
	SongID   int      `json:"songid"`
	Label    string   `json:"label"`
	Title    string   `json:"title,omitempty"`
	Artist   []string `json:"artist,omitempty"`
	Album    string   `json:"album,omitempty"`
	Duration int      `json:"duration,omitempty"`
	File     string   `json:"file,omitempty"`
}

// Genre is an entry of AudioLibrary.GetGenres.
type Genre struct {
	GenreID int    `json:"genreid"`
	Label   string `json:"label"`
	Title   string `json:"title,omitempty"`
}

type AlbumsResult struct {
	Albums []Album        `json:"albums"`
	Limits LimitsReturned `json:"limits"`
}

type ArtistsResult struct {
	Artists []Artist       `json:"artists"`
	Limits  LimitsReturned `json:"limits"`
}

type SongsResult struct {
	Songs  []Song         `json:"songs"`
	Limits LimitsReturned `json:"limits"`
}

type GenresResult struct {
	Genres []Genre        `json:"genres"`
	Limits LimitsReturned `json:"limits"`
}

// Clean removes entries for files that no longer exist.
func (a *AudioLibrary) Clean(ctx context.Context, showDialogs bool) error {
	return invokeOK(ctx, a.invoke, "AudioLibrary.Clean", struct {
		ShowDialogs bool `json:"showdialogs"`
	}{showDialogs})
}

// Export writes the library to path, or to separate files when path is
// empty.
func (a *AudioLibrary) Export(ctx context.Context, path string, overwrite, images bool) error {
	type options struct {
		Path      string `json:"path,omitempty"`
		Overwrite bool   `json:"overwrite,omitempty"`
		Images    bool   `json:"images,omitempty"`
	}
	return invokeOK(ctx, a.invoke, "AudioLibrary.Export", struct {
		Options options `json:"options"`
	}{options{path, overwrite, images}})
}

// GetAlbums lists albums.
func (a *AudioLibrary) GetAlbums(ctx context.Context, query ListQuery) (AlbumsResult, error) {
	return invokeInto[AlbumsResult](ctx, a.invoke, "AudioLibrary.GetAlbums", query)
}

// GetArtists lists artists.
func (a *AudioLibrary) GetArtists(ctx context.Context, query ListQuery) (ArtistsResult, error) {
	return invokeInto[ArtistsResult](ctx, a.invoke, "AudioLibrary.GetArtists", query)
}

// GetSongs lists songs.
func (a *AudioLibrary) GetSongs(ctx context.Context, query ListQuery) (SongsResult, error) {
	return invokeInto[SongsResult](ctx, a.invoke, "AudioLibrary.GetSongs", query)
}

// GetGenres lists music genres.
func (a *AudioLibrary) GetGenres(ctx context.Context, properties []string, limits *Limits) (GenresResult, error) {
	return invokeInto[GenresResult](ctx, a.invoke, "AudioLibrary.GetGenres", ListQuery{Properties: properties, Limits: limits})
}

// Scan scans directory, or all sources when it is empty, for new music.
func (a *AudioLibrary) Scan(ctx context.Context, directory string, showDialogs bool) error {
	return invokeOK(ctx, a.invoke, "AudioLibrary.Scan", struct {
		Directory   string `json:"directory,omitempty"`
		ShowDialogs bool   `json:"showdialogs"`
	}{directory, showDialogs})
}
