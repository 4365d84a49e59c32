// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// Files browses sources and the file system as Kodi sees it.
type Files struct {
	invoke InvokeFunc
}

// FileItem is an entry of a directory listing.
type FileItem struct {
	File     string `json:"file"`
	FileType string `json:"filetype"`
	Label    string `json:"label"`
	Type     string `json:"type,omitempty"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mimetype,omitempty"`
}

// Source is a configured media source.
type Source struct {
	File  string `json:"file"`
	Label string `json:"label"`
}

type DirectoryResult struct {
	Files  []FileItem     `json:"files"`
	Limits LimitsReturned `json:"limits"`
}

type SourcesResult struct {
	Sources []Source       `json:"sources"`
	Limits  LimitsReturned `json:"limits"`
}

// Download tells how to fetch a file prepared by PrepareDownload.
type Download struct {
	Protocol string `json:"protocol"`
	Mode     string `json:"mode"`
	Details  struct {
		Path string `json:"path"`
	} `json:"details"`
}

// GetDirectory lists directory. media is one of "video", "music",
// "pictures", "files" or "programs".
func (f *Files) GetDirectory(ctx context.Context, directory, media string, properties ...string) (DirectoryResult, error) {
	return invokeInto[DirectoryResult](ctx, f.invoke, "Files.GetDirectory", struct {
		Directory  string   `json:"directory"`
		Media      string   `json:"media,omitempty"`
		Properties []string `json:"properties,omitempty"`
	}{directory, media, properties})
}

// GetFileDetails returns details of one file.
func (f *Files) GetFileDetails(ctx context.Context, file, media string, properties ...string) (FileItem, error) {
	out, err := invokeInto[struct {
		FileDetails FileItem `json:"filedetails"`
	}](ctx, f.invoke, "Files.GetFileDetails", struct {
		File       string   `json:"file"`
		Media      string   `json:"media,omitempty"`
		Properties []string `json:"properties,omitempty"`
	}{file, media, properties})
	return out.FileDetails, err
}

// GetSources lists the sources configured for media.
func (f *Files) GetSources(ctx context.Context, media string) (SourcesResult, error) {
	return invokeInto[SourcesResult](ctx, f.invoke, "Files.GetSources", struct {
		Media string `json:"media"`
	}{media})
}

// PrepareDownload returns how path can be downloaded.
func (f *Files) PrepareDownload(ctx context.Context, path string) (Download, error) {
	return invokeInto[Download](ctx, f.invoke, "Files.PrepareDownload", struct {
		Path string `json:"path"`
	}{path})
}
