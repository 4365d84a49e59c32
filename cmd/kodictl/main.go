// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command kodictl drives a Kodi media center over JSON-RPC.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luxfi/kodi"
	"github.com/luxfi/kodi/internal/config"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "kodictl",
	Short: "Control a Kodi media center over JSON-RPC",
	Long: `kodictl sends JSON-RPC calls to Kodi.

The endpoint scheme selects the transport: http(s)://host:8080/jsonrpc posts
each call, ws(s)://host:9090/jsonrpc keeps one socket open and also receives
notifications. Every flag can be set through a KODI_ environment variable
(KODI_ENDPOINT, KODI_USERNAME, ...), a .env file, or --config.`,
	SilenceUsage: true,
}

func init() {
	// Load .env file if it exists
	godotenv.Load()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (YAML, TOML or JSON)")
	flags.String("endpoint", config.DefaultEndpoint, "Kodi JSON-RPC endpoint")
	flags.StringP("username", "u", "", "Username for basic authentication")
	flags.StringP("password", "p", "", "Password for basic authentication")
	flags.Duration("timeout", kodi.DefaultRequestTimeout, "Per-call timeout")
	flags.Duration("open-timeout", kodi.DefaultOpenTimeout, "How long to wait for a WebSocket to open")
	flags.Int("retries", 0, "Retry transport failures this many times")
	flags.Float64("rate-limit", 0, "Maximum calls per second (0 for unlimited)")
	flags.Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newCallCmd(),
		newPingCmd(),
		newVersionCmd(),
		newPlayerCmd(),
		newWatchCmd(),
		newServeFakeCmd(),
	)
}

// loadConfig merges flags, environment and config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.New(configFile)
	if err != nil {
		return nil, err
	}
	bind := map[string]string{
		"endpoint":     "endpoint",
		"username":     "username",
		"password":     "password",
		"timeout":      "timeout",
		"open_timeout": "open-timeout",
		"retries":      "retries",
		"rate_limit":   "rate-limit",
		"debug":        "debug",
	}
	for key, flag := range bind {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, err
		}
	}
	return config.Load(v)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// session is what every client command runs with.
type session struct {
	cfg    *config.Config
	log    *zap.Logger
	client *kodi.Client
}

func openSession(cmd *cobra.Command, extra ...kodi.Option) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.Options(log), extra...)
	client, err := kodi.Dial(cmd.Context(), cfg.Endpoint, opts...)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log, client: client}, nil
}

func (s *session) Close() {
	_ = s.client.Close()
	_ = s.log.Sync()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
