// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Favourites manages the favourites list.
type Favourites struct {
	invoke InvokeFunc
}

// Favourite is an entry of the favourites list.
type Favourite struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	Path            string `json:"path,omitempty"`
	Window          string `json:"window,omitempty"`
	WindowParameter string `json:"windowparameter,omitempty"`
	Thumbnail       string `json:"thumbnail,omitempty"`
}

type FavouritesResult struct {
	Favourites []Favourite    `json:"favourites"`
	Limits     LimitsReturned `json:"limits"`
}

// AddFavourite adds fav, or removes it if an identical entry exists.
func (f *Favourites) AddFavourite(ctx context.Context, fav Favourite) error {
	return invokeOK(ctx, f.invoke, "Favourites.AddFavourite", fav)
}

// GetFavourites lists favourites, optionally of one type ("media",
// "window", "script" and so on).
func (f *Favourites) GetFavourites(ctx context.Context, typ string, properties ...string) (FavouritesResult, error) {
	return invokeInto[FavouritesResult](ctx, f.invoke, "Favourites.GetFavourites", struct {
		Type       string   `json:"type,omitempty"`
		Properties []string `json:"properties,omitempty"`
	}{typ, properties})
}
