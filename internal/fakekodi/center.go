// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fakekodi

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/gorilla/rpc/v2/json2"
)

// Error codes the media center answers with.
const (
	CodeInvalidParams = -32602
	CodeFailed        = -32100
)

var (
	errInvalidParams = &json2.Error{Code: CodeInvalidParams, Message: "Invalid params."}
	errFailed        = &json2.Error{Code: CodeFailed, Message: "Failed to execute method."}
)

// Movie is a library entry served by VideoLibrary.GetMovies.
type Movie struct {
	MovieID int    `json:"movieid"`
	Label   string `json:"label"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	File    string `json:"file"`
}

// Item is what the player is playing.
type Item struct {
	ID    int    `json:"id,omitempty"`
	Label string `json:"label"`
	Type  string `json:"type"`
	File  string `json:"file,omitempty"`
}

// ActivePlayer is an entry of Player.GetActivePlayers.
type ActivePlayer struct {
	PlayerID   int    `json:"playerid"`
	PlayerType string `json:"playertype"`
	Type       string `json:"type"`
}

// center is the media center's state. Every procedure, whichever
// transport it arrives on, runs against the same center.
type center struct {
	mu sync.Mutex

	name    string
	version APIVersion
	volume  int
	muted   bool
	window  string
	movies  []Movie
	addons  map[string]bool

	playing *Item
	speed   int

	// notify pushes a notification to connected WebSocket peers.
	notify func(method string, data any)
}

type APIVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func newCenter() *center {
	return &center{
		name:    "Kodi",
		version: APIVersion{Major: 13, Minor: 5, Patch: 0},
		volume:  100,
		window:  "Home",
		movies: []Movie{
			{MovieID: 1, Label: "Big Buck Bunny", Title: "Big Buck Bunny", Year: 2008, File: "/media/movies/bbb.mkv"},
			{MovieID: 2, Label: "Sintel", Title: "Sintel", Year: 2010, File: "/media/movies/sintel.mkv"},
			{MovieID: 3, Label: "Tears of Steel", Title: "Tears of Steel", Year: 2012, File: "/media/movies/tos.mkv"},
		},
		addons: map[string]bool{
			"plugin.video.youtube":    true,
			"script.globalsearch":     true,
			"metadata.themoviedb.org": true,
		},
		notify: func(string, any) {},
	}
}

func (c *center) announce(method string, data any) {
	c.notify(method, map[string]any{"sender": "xbmc", "data": data})
}

// toggle resolves a boolean-or-"toggle" argument against current.
func toggle(raw json.RawMessage, current bool) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s == "toggle" {
		return !current, nil
	}
	return false, errInvalidParams
}

// Procedure arguments and results, shared by both transports.

type PropertiesArgs struct {
	Properties []string `json:"properties"`
}

type ToggleArgs struct {
	Mute       json.RawMessage `json:"mute"`
	Play       json.RawMessage `json:"play"`
	Fullscreen json.RawMessage `json:"fullscreen"`
}

type VolumeArgs struct {
	Volume json.RawMessage `json:"volume"`
}

type PlayerArgs struct {
	PlayerID int             `json:"playerid"`
	Play     json.RawMessage `json:"play"`
}

type OpenArgs struct {
	Item struct {
		File    string `json:"file"`
		MovieID int    `json:"movieid"`
	} `json:"item"`
}

type NotificationArgs struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type NotifyAllArgs struct {
	Sender  string          `json:"sender"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type ExecuteAddonArgs struct {
	AddonID string          `json:"addonid"`
	Params  json.RawMessage `json:"params"`
	Wait    bool            `json:"wait"`
}

type ListArgs struct {
	Properties []string `json:"properties"`
	Limits     *struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"limits"`
}

type LimitsReturned struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Total int `json:"total"`
}

type MoviesResult struct {
	Movies []Movie        `json:"movies"`
	Limits LimitsReturned `json:"limits"`
}

type SpeedResult struct {
	Speed int `json:"speed"`
}

type ItemResult struct {
	Item Item `json:"item"`
}

type VersionResult struct {
	Version APIVersion `json:"version"`
}

func (c *center) ping() string { return "pong" }

func (c *center) versionInfo() VersionResult {
	return VersionResult{Version: c.version}
}

func (c *center) notifyAll(args *NotifyAllArgs) (string, error) {
	if args.Sender == "" || args.Message == "" {
		return "", errInvalidParams
	}
	var data any
	if len(args.Data) > 0 {
		data = args.Data
	}
	c.notify("Other."+args.Message, map[string]any{"sender": args.Sender, "data": data})
	return "OK", nil
}

func (c *center) applicationProperties(args *PropertiesArgs) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]any, len(args.Properties))
	for _, p := range args.Properties {
		switch p {
		case "volume":
			out[p] = c.volume
		case "muted":
			out[p] = c.muted
		case "name":
			out[p] = c.name
		case "version":
			out[p] = map[string]any{"major": 21, "minor": 0, "tag": "stable"}
		default:
			return nil, errInvalidParams
		}
	}
	return out, nil
}

func (c *center) setMute(args *ToggleArgs) (bool, error) {
	c.mu.Lock()
	muted, err := toggle(args.Mute, c.muted)
	if err != nil {
		c.mu.Unlock()
		return false, err
	}
	c.muted = muted
	volume := c.volume
	c.mu.Unlock()
	c.announce("Application.OnVolumeChanged", map[string]any{"muted": muted, "volume": volume})
	return muted, nil
}

func (c *center) setVolume(args *VolumeArgs) (int, error) {
	c.mu.Lock()
	var level int
	var step string
	switch {
	case json.Unmarshal(args.Volume, &level) == nil:
	case json.Unmarshal(args.Volume, &step) == nil && step == "increment":
		level = c.volume + 1
	case json.Unmarshal(args.Volume, &step) == nil && step == "decrement":
		level = c.volume - 1
	default:
		c.mu.Unlock()
		return 0, errInvalidParams
	}
	level = min(max(level, 0), 100)
	c.volume = level
	muted := c.muted
	c.mu.Unlock()
	c.announce("Application.OnVolumeChanged", map[string]any{"muted": muted, "volume": level})
	return level, nil
}

func (c *center) activePlayers() []ActivePlayer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing == nil {
		return []ActivePlayer{}
	}
	return []ActivePlayer{{PlayerID: 1, PlayerType: "internal", Type: "video"}}
}

func (c *center) open(args *OpenArgs) (string, error) {
	c.mu.Lock()
	var item *Item
	switch {
	case args.Item.MovieID != 0:
		for _, m := range c.movies {
			if m.MovieID == args.Item.MovieID {
				item = &Item{ID: m.MovieID, Label: m.Label, Type: "movie", File: m.File}
			}
		}
	case args.Item.File != "":
		item = &Item{Label: args.Item.File, Type: "unknown", File: args.Item.File}
	}
	if item == nil {
		c.mu.Unlock()
		return "", errInvalidParams
	}
	c.playing = item
	c.speed = 1
	c.mu.Unlock()
	c.announce("Player.OnPlay", map[string]any{"item": item, "player": map[string]any{"playerid": 1, "speed": 1}})
	return "OK", nil
}

func (c *center) playPause(args *PlayerArgs) (SpeedResult, error) {
	c.mu.Lock()
	if c.playing == nil || args.PlayerID != 1 {
		c.mu.Unlock()
		return SpeedResult{}, errFailed
	}
	play := c.speed == 0
	if len(args.Play) > 0 {
		var err error
		if play, err = toggle(args.Play, c.speed != 0); err != nil {
			c.mu.Unlock()
			return SpeedResult{}, err
		}
	}
	if play {
		c.speed = 1
	} else {
		c.speed = 0
	}
	speed, item := c.speed, *c.playing
	c.mu.Unlock()

	event := "Player.OnPause"
	if speed != 0 {
		event = "Player.OnResume"
	}
	c.announce(event, map[string]any{"item": item, "player": map[string]any{"playerid": 1, "speed": speed}})
	return SpeedResult{Speed: speed}, nil
}

func (c *center) stop(args *PlayerArgs) (string, error) {
	c.mu.Lock()
	if c.playing == nil || args.PlayerID != 1 {
		c.mu.Unlock()
		return "", errFailed
	}
	item := *c.playing
	c.playing = nil
	c.speed = 0
	c.mu.Unlock()
	c.announce("Player.OnStop", map[string]any{"item": item, "end": false})
	return "OK", nil
}

func (c *center) item(args *PlayerArgs) (ItemResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing == nil || args.PlayerID != 1 {
		return ItemResult{Item: Item{Label: "", Type: "unknown"}}, nil
	}
	return ItemResult{Item: *c.playing}, nil
}

func (c *center) guiProperties(args *PropertiesArgs) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]any, len(args.Properties))
	for _, p := range args.Properties {
		switch p {
		case "currentwindow":
			out[p] = map[string]any{"id": 10000, "label": c.window}
		case "fullscreen":
			out[p] = false
		case "skin":
			out[p] = map[string]any{"id": "skin.estuary", "name": "Estuary"}
		default:
			return nil, errInvalidParams
		}
	}
	return out, nil
}

func (c *center) showNotification(args *NotificationArgs) (string, error) {
	if args.Title == "" || args.Message == "" {
		return "", errInvalidParams
	}
	return "OK", nil
}

func (c *center) executeAddon(args *ExecuteAddonArgs) (string, error) {
	c.mu.Lock()
	enabled, ok := c.addons[args.AddonID]
	c.mu.Unlock()
	if !ok || !enabled {
		return "", errInvalidParams
	}
	return "OK", nil
}

func (c *center) getMovies(args *ListArgs) MoviesResult {
	c.mu.Lock()
	movies := append([]Movie(nil), c.movies...)
	c.mu.Unlock()
	sort.Slice(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })

	total := len(movies)
	start, end := 0, total
	if args.Limits != nil {
		start = min(max(args.Limits.Start, 0), total)
		if args.Limits.End > 0 {
			end = min(args.Limits.End, total)
		}
		end = max(end, start)
	}
	return MoviesResult{
		Movies: movies[start:end],
		Limits: LimitsReturned{Start: start, End: end, Total: total},
	}
}
