// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Textures manages the texture cache.
type Textures struct {
	invoke InvokeFunc
}

// Texture is a cached image.
type Texture struct {
	TextureID int    `json:"textureid"`
	URL       string `json:"url,omitempty"`
	CachedURL string `json:"cachedurl,omitempty"`
	Size      int    `json:"size,omitempty"`
}

// GetTextures lists cached textures matching filter.
func (t *Textures) GetTextures(ctx context.Context, filter any, properties ...string) ([]Texture, error) {
	out, err := invokeInto[struct {
		Textures []Texture `json:"textures"`
	}](ctx, t.invoke, "Textures.GetTextures", struct {
		Properties []string `json:"properties,omitempty"`
		Filter     any      `json:"filter,omitempty"`
	}{properties, filter})
	return out.Textures, err
}

// RemoveTexture drops a texture from the cache.
func (t *Textures) RemoveTexture(ctx context.Context, textureID int) error {
	return invokeOK(ctx, t.invoke, "Textures.RemoveTexture", struct {
		TextureID int `json:"textureid"`
	}{textureID})
}
