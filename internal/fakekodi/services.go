// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fakekodi

import (
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// Empty is the argument of procedures that take no parameters.
type Empty struct{}

// The services below expose the center over gorilla/rpc. gorilla derives
// "Service.Method" from the registered name and the Go method name, which
// lines up with the media center's own naming.

type JSONRPCService struct{ c *center }

func (s *JSONRPCService) Ping(_ *http.Request, _ *Empty, reply *string) error {
	*reply = s.c.ping()
	return nil
}

func (s *JSONRPCService) Version(_ *http.Request, _ *Empty, reply *VersionResult) error {
	*reply = s.c.versionInfo()
	return nil
}

func (s *JSONRPCService) NotifyAll(_ *http.Request, args *NotifyAllArgs, reply *string) error {
	return assign(reply)(s.c.notifyAll(args))
}

type ApplicationService struct{ c *center }

func (s *ApplicationService) GetProperties(_ *http.Request, args *PropertiesArgs, reply *map[string]any) error {
	return assign(reply)(s.c.applicationProperties(args))
}

func (s *ApplicationService) SetMute(_ *http.Request, args *ToggleArgs, reply *bool) error {
	return assign(reply)(s.c.setMute(args))
}

func (s *ApplicationService) SetVolume(_ *http.Request, args *VolumeArgs, reply *int) error {
	return assign(reply)(s.c.setVolume(args))
}

type PlayerService struct{ c *center }

func (s *PlayerService) GetActivePlayers(_ *http.Request, _ *Empty, reply *[]ActivePlayer) error {
	*reply = s.c.activePlayers()
	return nil
}

func (s *PlayerService) GetItem(_ *http.Request, args *PlayerArgs, reply *ItemResult) error {
	return assign(reply)(s.c.item(args))
}

func (s *PlayerService) Open(_ *http.Request, args *OpenArgs, reply *string) error {
	return assign(reply)(s.c.open(args))
}

func (s *PlayerService) PlayPause(_ *http.Request, args *PlayerArgs, reply *SpeedResult) error {
	return assign(reply)(s.c.playPause(args))
}

func (s *PlayerService) Stop(_ *http.Request, args *PlayerArgs, reply *string) error {
	return assign(reply)(s.c.stop(args))
}

type GUIService struct{ c *center }

func (s *GUIService) GetProperties(_ *http.Request, args *PropertiesArgs, reply *map[string]any) error {
	return assign(reply)(s.c.guiProperties(args))
}

func (s *GUIService) ShowNotification(_ *http.Request, args *NotificationArgs, reply *string) error {
	return assign(reply)(s.c.showNotification(args))
}

type AddonsService struct{ c *center }

func (s *AddonsService) ExecuteAddon(_ *http.Request, args *ExecuteAddonArgs, reply *string) error {
	return assign(reply)(s.c.executeAddon(args))
}

type VideoLibraryService struct{ c *center }

func (s *VideoLibraryService) GetMovies(_ *http.Request, args *ListArgs, reply *MoviesResult) error {
	*reply = s.c.getMovies(args)
	return nil
}

// assign stores a procedure's result in a gorilla reply.
func assign[T any](reply *T) func(T, error) error {
	return func(v T, err error) error {
		if err != nil {
			return err
		}
		*reply = v
		return nil
	}
}

// newRPCServer registers every service with a gorilla JSON-RPC 2.0 server.
func newRPCServer(c *center) (*rpc.Server, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json2.NewCodec(), "application/json")

	services := map[string]any{
		"JSONRPC":      &JSONRPCService{c},
		"Application":  &ApplicationService{c},
		"Player":       &PlayerService{c},
		"GUI":          &GUIService{c},
		"Addons":       &AddonsService{c},
		"VideoLibrary": &VideoLibraryService{c},
	}
	for name, svc := range services {
		if err := server.RegisterService(svc, name); err != nil {
			return nil, err
		}
	}
	return server, nil
}
