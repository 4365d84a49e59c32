// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fakekodi

import (
	"context"
	"net/http"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/luxfi/kodi/internal/wschan"
)

// procedure adapts a center operation to a jrpc2 handler. Failures keep
// the code and message the HTTP side would answer with.
func procedure[A, R any](fn func(*A) (R, error)) jrpc2.Handler {
	return handler.New(func(_ context.Context, args *A) (R, error) {
		if args == nil {
			args = new(A)
		}
		result, err := fn(args)
		if err != nil {
			if e, ok := errors.AsType[*json2.Error](err); ok {
				return result, &jrpc2.Error{Code: jrpc2.Code(e.Code), Message: e.Message}
			}
		}
		return result, err
	})
}

func infallible[A, R any](fn func(*A) R) func(*A) (R, error) {
	return func(args *A) (R, error) { return fn(args), nil }
}

func newMethods(c *center) handler.Map {
	return handler.Map{
		"JSONRPC.Ping":              procedure(infallible(func(*Empty) string { return c.ping() })),
		"JSONRPC.Version":           procedure(infallible(func(*Empty) VersionResult { return c.versionInfo() })),
		"JSONRPC.NotifyAll":         procedure(c.notifyAll),
		"Application.GetProperties": procedure(c.applicationProperties),
		"Application.SetMute":       procedure(c.setMute),
		"Application.SetVolume":     procedure(c.setVolume),
		"Player.GetActivePlayers":   procedure(infallible(func(*Empty) []ActivePlayer { return c.activePlayers() })),
		"Player.GetItem":            procedure(c.item),
		"Player.Open":               procedure(c.open),
		"Player.PlayPause":          procedure(c.playPause),
		"Player.Stop":               procedure(c.stop),
		"GUI.GetProperties":         procedure(c.guiProperties),
		"GUI.ShowNotification":      procedure(c.showNotification),
		"Addons.ExecuteAddon":       procedure(c.executeAddon),
		"VideoLibrary.GetMovies":    procedure(infallible(c.getMovies)),
	}
}

// serveWebSocket runs a push-capable JSON-RPC server on one upgraded
// connection until the peer goes away or the Server closes.
func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := cws.Accept(w, r, &cws.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.log.Warn("websocket accept failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	srv := jrpc2.NewServer(s.methods, &jrpc2.ServerOptions{AllowPush: true})
	s.register(srv)
	defer s.unregister(srv)

	s.log.Debug("websocket peer connected", zap.String("remote", r.RemoteAddr))
	srv.Start(wschan.New(ctx, conn))
	err = srv.Wait()
	s.log.Debug("websocket peer gone", zap.String("remote", r.RemoteAddr), zap.Error(err))
}
