// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads kodictl settings from flags, KODI_* environment
// variables and an optional config file.
package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/luxfi/kodi"
)

// EnvPrefix prefixes every environment variable, e.g. KODI_ENDPOINT.
const EnvPrefix = "KODI"

// DefaultEndpoint is Kodi's stock HTTP JSON-RPC endpoint.
const DefaultEndpoint = "http://localhost:8080/jsonrpc"

// Config holds the settings of a kodictl run.
type Config struct {
	// Connection
	Endpoint string `mapstructure:"endpoint"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// Timeouts
	Timeout     time.Duration `mapstructure:"timeout"`      // HTTP round trip, or per call over WebSocket
	OpenTimeout time.Duration `mapstructure:"open_timeout"` // WebSocket open wait

	// Call policy
	Retries   int     `mapstructure:"retries"`
	RateLimit float64 `mapstructure:"rate_limit"` // calls per second, 0 for unlimited

	Debug bool `mapstructure:"debug"`
}

// New returns a viper instance with defaults and environment binding
// applied, reading configFile when it is set.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("timeout", kodi.DefaultRequestTimeout)
	v.SetDefault("open_timeout", kodi.DefaultOpenTimeout)
	v.SetDefault("retries", 0)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "read config %s", configFile)
		}
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Annotate(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the endpoint and the numeric settings.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return errors.NotValidf("endpoint %q", c.Endpoint)
	}
	if !kodi.HasTransport(u.Scheme) {
		return errors.Annotatef(kodi.ErrUnsupportedScheme, "endpoint %q", c.Endpoint)
	}
	if c.Timeout < 0 || c.OpenTimeout < 0 {
		return errors.NotValidf("negative timeout")
	}
	if c.Retries < 0 {
		return errors.NotValidf("retries %d", c.Retries)
	}
	if c.RateLimit < 0 {
		return errors.NotValidf("rate limit %v", c.RateLimit)
	}
	return nil
}

// HasBasicAuth returns true if credentials are configured.
func (c *Config) HasBasicAuth() bool {
	return c.Username != "" || c.Password != ""
}

// IsWebSocket reports whether the endpoint selects the WebSocket transport.
func (c *Config) IsWebSocket() bool {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == kodi.SchemeWS || u.Scheme == kodi.SchemeWSS
}

// Options translates the settings into client options.
func (c *Config) Options(log *zap.Logger) []kodi.Option {
	opts := []kodi.Option{
		kodi.WithLogger(log),
		kodi.WithRequestTimeout(c.Timeout),
		kodi.WithOpenTimeout(c.OpenTimeout),
	}
	if c.IsWebSocket() {
		opts = append(opts, kodi.WithCallTimeout(c.Timeout))
	}
	if c.HasBasicAuth() {
		opts = append(opts, kodi.WithBasicAuth(c.Username, c.Password))
	}

	middleware := []kodi.Middleware{kodi.Logging(log)}
	if c.RateLimit > 0 {
		middleware = append(middleware, kodi.RateLimit(c.RateLimit, 1))
	}
	if c.Retries > 0 {
		middleware = append(middleware, kodi.Retry(c.Retries, 250*time.Millisecond, nil))
	}
	return append(opts, kodi.WithMiddleware(middleware...))
}
