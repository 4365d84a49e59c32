// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luxfi/kodi"
	"github.com/luxfi/kodi/internal/fakekodi"
)

func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call METHOD [PARAMS_JSON]",
		Short: "Invoke any method and print its result",
		Example: `  kodictl call GUI.GetProperties '{"properties":["currentwindow"]}'
  kodictl call Addons.ExecuteAddon '{"addonid":"script.globalsearch","params":{"searchstring":"sintel"}}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params any
			if len(args) == 2 {
				if !json.Valid([]byte(args[1])) {
					return errors.NotValidf("params %q", args[1])
				}
				params = json.RawMessage(args[1])
			}
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			result, err := s.client.Invoke(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that Kodi answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			pong, err := s.client.JSONRPC.Ping(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pong)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the JSON-RPC API version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			v, err := s.client.JSONRPC.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d.%d.%d\n", v.Major, v.Minor, v.Patch)
			return nil
		},
	}
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Control playback",
	}
	var playerID int
	cmd.PersistentFlags().IntVar(&playerID, "player-id", -1, "Player to control (default: the first active player)")

	// resolve picks the player a subcommand acts on.
	resolve := func(cmd *cobra.Command, s *session) (int, error) {
		if playerID >= 0 {
			return playerID, nil
		}
		players, err := s.client.Player.GetActivePlayers(cmd.Context())
		if err != nil {
			return 0, err
		}
		if len(players) == 0 {
			return 0, errors.NotFoundf("active player")
		}
		return players[0].PlayerID, nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "active",
			Short: "List active players",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := openSession(cmd)
				if err != nil {
					return err
				}
				defer s.Close()

				players, err := s.client.Player.GetActivePlayers(cmd.Context())
				if err != nil {
					return err
				}
				for _, p := range players {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.PlayerID, p.Type, p.PlayerType)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "playpause",
			Short: "Toggle pause",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := openSession(cmd)
				if err != nil {
					return err
				}
				defer s.Close()

				id, err := resolve(cmd, s)
				if err != nil {
					return err
				}
				speed, err := s.client.Player.PlayPause(cmd.Context(), id, kodi.ToggleNow)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "speed %d\n", speed.Speed)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop playback",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := openSession(cmd)
				if err != nil {
					return err
				}
				defer s.Close()

				id, err := resolve(cmd, s)
				if err != nil {
					return err
				}
				return s.client.Player.Stop(cmd.Context(), id)
			},
		},
	)
	return cmd
}

func newWatchCmd() *cobra.Command {
	var buffer int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print notifications until interrupted (WebSocket endpoints only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			queue := kodi.NewNotificationQueue(buffer)
			s, err := openSession(cmd, kodi.WithNotificationHandler(queue.Handler()))
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.cfg.IsWebSocket() {
				return errors.NotSupportedf("watch over %s", s.cfg.Endpoint)
			}
			ws := s.client.Transport().(*kodi.WebSocketTransport)
			if err := ws.WaitOpen(cmd.Context()); err != nil {
				return err
			}
			s.log.Info("watching", zap.String("endpoint", s.cfg.Endpoint))

			out := cmd.OutOrStdout()
			for {
				select {
				case n := <-queue.C():
					fmt.Fprintf(out, "%s %s\n", n.Method, n.Params)
				case <-ws.Done():
					if dropped := queue.Dropped(); dropped > 0 {
						s.log.Warn("notifications dropped", zap.Uint64("count", dropped))
					}
					return errors.Trace(kodi.ErrConnectionClosed)
				case <-cmd.Context().Done():
					return nil
				}
			}
		},
	}
	cmd.Flags().IntVar(&buffer, "buffer", 256, "Notifications buffered before new ones are dropped")
	return cmd
}

func newServeFakeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve-fake",
		Short: "Run an in-process fake media center for testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			opts := []fakekodi.Option{fakekodi.WithLogger(log)}
			if cfg.HasBasicAuth() {
				opts = append(opts, fakekodi.WithBasicAuth(cfg.Username, cfg.Password))
			}
			server, err := fakekodi.New(opts...)
			if err != nil {
				return err
			}
			return server.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	return cmd
}
