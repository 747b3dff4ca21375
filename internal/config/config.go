// Package config loads the client configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName  = "spotui"
	tokenEnv = "SPOTUI_ACCESS_TOKEN"
)

type Config struct {
	Service ServiceConfig `koanf:"service"`
	Search  SearchConfig  `koanf:"search"`
	Log     LogConfig     `koanf:"log"`

	// Keys overrides the default bindings, e.g. move_down = ["down", "n"].
	Keys map[string][]string `koanf:"keys"`
}

// ServiceConfig holds the music service connection settings.
type ServiceConfig struct {
	BaseURL        string `koanf:"base_url"`
	AccessToken    string `koanf:"access_token"` // overridden by $SPOTUI_ACCESS_TOKEN
	Market         string `koanf:"market"`       // ISO 3166-1 country code used to filter search results
	PlaylistOwner  string `koanf:"playlist_owner"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// SearchConfig holds the page sizes used when querying the catalogue.
type SearchConfig struct {
	SmallLimit int `koanf:"small_limit"` // per-kind search results
	LargeLimit int `koanf:"large_limit"` // playlist tracks and playlists
}

// LogConfig holds the log file settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/spotui/spotui.log
	Level string `koanf:"level"` // zerolog level name (default: info)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if token := os.Getenv(tokenEnv); token != "" {
		cfg.Service.AccessToken = token
	}

	cfg.Service.BaseURL = strings.TrimSuffix(cfg.Service.BaseURL, "/")

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/spotui/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasAccessToken returns true if a service token is configured.
func (c *Config) HasAccessToken() bool {
	return c.Service.AccessToken != ""
}

// GetServiceConfig returns the service configuration with defaults applied.
func (c *Config) GetServiceConfig() ServiceConfig {
	cfg := c.Service

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.spotify.com/v1"
	}
	if cfg.Market == "" {
		cfg.Market = "GB"
	}
	if cfg.PlaylistOwner == "" {
		cfg.PlaylistOwner = "spotify"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}

	return cfg
}

// Timeout returns the HTTP timeout for service calls.
func (s ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// GetSearchConfig returns the page sizes with defaults applied.
func (c *Config) GetSearchConfig() SearchConfig {
	cfg := c.Search

	if cfg.SmallLimit <= 0 || cfg.SmallLimit > 50 {
		cfg.SmallLimit = 4
	}
	if cfg.LargeLimit <= 0 || cfg.LargeLimit > 50 {
		cfg.LargeLimit = 50
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}

	return cfg
}
