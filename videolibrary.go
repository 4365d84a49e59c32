// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// VideoLibrary queries and maintains the video library.
type VideoLibrary struct {
	invoke InvokeFunc
}

// Movie is an entry of VideoLibrary.GetMovies.
type Movie struct {
	MovieID int      `json:"movieid"`
	Label   string   `json:"label"`
	Title   string   `json:"title,omitempty"`
	Year    int      `json:"year,omitempty"`
	Genre   []string `json:"genre,omitempty"`
	Rating  float64  `json:"rating,omitempty"`
	File    string   `json:"file,omitempty"`
	Plot    string   `json:"plot,omitempty"`
}

// TVShow is an entry of VideoLibrary.GetTVShows.
type TVShow struct {
	TVShowID int    `json:"tvshowid"`
	Label    string `json:"label"`
	Title    string `json:"title,omitempty"`
	Year     int    `json:"year,omitempty"`
}

// Episode is an entry of VideoLibrary.GetEpisodes.
type Episode struct {
	EpisodeID int    `json:"episodeid"`
	Label     string `json:"label"`
	Title     string `json:"title,omitempty"`
	Season    int    `json:"season,omitempty"`
	Episode   int    `json:"episode,omitempty"`
	ShowTitle string `json:"showtitle,omitempty"`
}

type MoviesResult struct {
	Movies []Movie        `json:"movies"`
	Limits LimitsReturned `json:"limits"`
}

type TVShowsResult struct {
	TVShows []TVShow       `json:"tvshows"`
	Limits  LimitsReturned `json:"limits"`
}

type EpisodesResult struct {
	Episodes []Episode      `json:"episodes"`
	Limits   LimitsReturned `json:"limits"`
}

// Clean removes entries for files that no longer exist.
func (v *VideoLibrary) Clean(ctx context.Context, showDialogs bool) error {
	return invokeOK(ctx, v.invoke, "VideoLibrary.Clean", struct {
		ShowDialogs bool `json:"showdialogs"`
	}{showDialogs})
}

// GetEpisodes lists episodes, of one show and season when tvShowID and
// season are positive.
func (v *VideoLibrary) GetEpisodes(ctx context.Context, tvShowID, season int, query ListQuery) (EpisodesResult, error) {
	return invokeInto[EpisodesResult](ctx, v.invoke, "VideoLibrary.GetEpisodes", struct {
		TVShowID int `json:"tvshowid,omitempty"`
		Season   int `json:"season,omitempty"`
		ListQuery
	}{tvShowID, season, query})
}

// GetMovieDetails returns the named properties of one movie.
func (v *VideoLibrary) GetMovieDetails(ctx context.Context, movieID int, properties ...string) (Movie, error) {
	out, err := invokeInto[struct {
		MovieDetails Movie `json:"moviedetails"`
	}](ctx, v.invoke, "VideoLibrary.GetMovieDetails", struct {
		MovieID    int      `json:"movieid"`
		Properties []string `json:"properties,omitempty"`
	}{movieID, properties})
	return out.MovieDetails, err
}

// GetMovies lists movies.
func (v *VideoLibrary) GetMovies(ctx context.Context, query ListQuery) (MoviesResult, error) {
	return invokeInto[MoviesResult](ctx, v.invoke, "VideoLibrary.GetMovies", query)
}

// GetTVShows lists TV shows.
func (v *VideoLibrary) GetTVShows(ctx context.Context, query ListQuery) (TVShowsResult, error) {
	return invokeInto[TVShowsResult](ctx, v.invoke, "VideoLibrary.GetTVShows", query)
}

// Scan scans directory, or all sources when it is empty, for new videos.
func (v *VideoLibrary) Scan(ctx context.Context, directory string, showDialogs bool) error {
	return invokeOK(ctx, v.invoke, "VideoLibrary.Scan", struct {
		Directory   string `json:"directory,omitempty"`
		ShowDialogs bool   `json:"showdialogs"`
	}{directory, showDialogs})
}
