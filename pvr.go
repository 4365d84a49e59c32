// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// PVR manages live TV and recordings.
type PVR struct {
	invoke InvokeFunc
}

// ChannelGroup is an entry of PVR.GetChannelGroups.
type ChannelGroup struct {
	ChannelGroupID int    `json:"channelgroupid"`
	ChannelType    string `json:"channeltype"`
	Label          string `json:"label"`
}

// Channel is an entry of PVR.GetChannels.
type Channel struct {
	ChannelID int    `json:"channelid"`
	Channel   string `json:"channel,omitempty"`
	Label     string `json:"label"`
	Hidden    bool   `json:"hidden,omitempty"`
}

// Recording is an entry of PVR.GetRecordings.
type Recording struct {
	RecordingID int    `json:"recordingid"`
	Label       string `json:"label"`
	Title       string `json:"title,omitempty"`
	File        string `json:"file,omitempty"`
}

type ChannelGroupsResult struct {
	ChannelGroups []ChannelGroup `json:"channelgroups"`
	Limits        LimitsReturned `json:"limits"`
}

type ChannelsResult struct {
	Channels []Channel      `json:"channels"`
	Limits   LimitsReturned `json:"limits"`
}

type RecordingsResult struct {
	Recordings []Recording    `json:"recordings"`
	Limits     LimitsReturned `json:"limits"`
}

// GetChannelGroups lists channel groups of channelType, "tv" or "radio".
func (p *PVR) GetChannelGroups(ctx context.Context, channelType string, limits *Limits) (ChannelGroupsResult, error) {
	return invokeInto[ChannelGroupsResult](ctx, p.invoke, "PVR.GetChannelGroups", struct {
		ChannelType string  `json:"channeltype"`
		Limits      *Limits `json:"limits,omitempty"`
	}{channelType, limits})
}

// GetChannels lists the channels of a group. channelGroupID may be an id
// or "alltv" / "allradio".
func (p *PVR) GetChannels(ctx context.Context, channelGroupID any, properties ...string) (ChannelsResult, error) {
	return invokeInto[ChannelsResult](ctx, p.invoke, "PVR.GetChannels", struct {
		ChannelGroupID any      `json:"channelgroupid"`
		Properties     []string `json:"properties,omitempty"`
	}{channelGroupID, properties})
}

// GetProperties returns the named PVR properties, e.g. "available",
// "recording" and "scanning".
func (p *PVR) GetProperties(ctx context.Context, properties ...string) (Properties, error) {
	return invokeInto[Properties](ctx, p.invoke, "PVR.GetProperties", propertiesParams{nonNil(properties)})
}

// GetRecordings lists recordings.
func (p *PVR) GetRecordings(ctx context.Context, properties []string, limits *Limits) (RecordingsResult, error) {
	return invokeInto[RecordingsResult](ctx, p.invoke, "PVR.GetRecordings", ListQuery{Properties: properties, Limits: limits})
}

// Record starts or stops recording a channel. channel may be a channel id
// or "current".
func (p *PVR) Record(ctx context.Context, record Toggle, channel any) error {
	return invokeOK(ctx, p.invoke, "PVR.Record", struct {
		Record  Toggle `json:"record"`
		Channel any    `json:"channel,omitempty"`
	}{record, channel})
}

// Scan starts a channel scan.
func (p *PVR) Scan(ctx context.Context) error {
	return invokeOK(ctx, p.invoke, "PVR.Scan", nil)
}
