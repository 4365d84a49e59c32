// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fakekodi is an in-process stand-in for a Kodi media center. It
// answers a subset of the JSON-RPC API over HTTP POST and over WebSocket,
// and pushes notifications to WebSocket peers the way Kodi does.
package fakekodi

import (
	"context"
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/gorilla/rpc/v2"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Server serves the fake media center.
type Server struct {
	center  *center
	rpc     *rpc.Server
	methods handler.Map

	username string
	password string
	log      *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.RWMutex
	peers map[*jrpc2.Server]struct{}
}

// Option configures a Server.
type Option func(*Server)

// WithBasicAuth requires credentials on every request and handshake.
func WithBasicAuth(username, password string) Option {
	return func(s *Server) {
		s.username = username
		s.password = password
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New returns a Server with a small movie library and nothing playing.
func New(opts ...Option) (*Server, error) {
	c := newCenter()
	server, err := newRPCServer(c)
	if err != nil {
		return nil, errors.Annotate(err, "register services")
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		center:  c,
		rpc:     server,
		methods: newMethods(c),
		log:     zap.NewNop(),
		ctx:     ctx,
		cancel:  cancel,
		peers:   make(map[*jrpc2.Server]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	c.notify = s.Notify
	return s, nil
}

// ServeHTTP answers JSON-RPC posts and upgrades WebSocket handshakes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="XBMC"`)
		http.Error(w, "401 Unauthorized", http.StatusUnauthorized)
		return
	}
	if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		s.serveWebSocket(w, r)
		return
	}
	s.rpc.ServeHTTP(w, r)
}

func (s *Server) authorized(r *http.Request) bool {
	if s.username == "" && s.password == "" {
		return true
	}
	user, pass, ok := r.BasicAuth()
	return ok &&
		subtle.ConstantTimeCompare([]byte(user), []byte(s.username)) == 1 &&
		subtle.ConstantTimeCompare([]byte(pass), []byte(s.password)) == 1
}

// Notify pushes a notification to every connected WebSocket peer. Peers
// that cannot receive it are dropped.
func (s *Server) Notify(method string, params any) {
	s.mu.RLock()
	peers := make([]*jrpc2.Server, 0, len(s.peers))
	for srv := range s.peers {
		peers = append(peers, srv)
	}
	s.mu.RUnlock()

	for _, srv := range peers {
		if err := srv.Notify(s.ctx, method, params); err != nil {
			s.log.Debug("push failed", zap.String("method", method), zap.Error(err))
			s.unregister(srv)
		}
	}
}

// Peers returns the number of connected WebSocket peers.
func (s *Server) Peers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

func (s *Server) register(srv *jrpc2.Server) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.peers[srv] = struct{}{}
}

func (s *Server) unregister(srv *jrpc2.Server) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.peers, srv)
}

// Close disconnects every WebSocket peer.
func (s *Server) Close() {
	s.cancel()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for srv := range s.peers {
		srv.Stop()
	}
}

// ListenAndServe serves on addr until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Annotatef(err, "listen %s", addr)
	}
	return s.Serve(ctx, l)
}

// Serve serves on l until ctx ends.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		s.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Info("serving", zap.String("addr", l.Addr().String()))
	if err := httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Trace(err)
	}
	return nil
}
