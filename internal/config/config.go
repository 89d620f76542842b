// Package config handles the XDG configuration directory, the optional
// config.yaml in it, and the stored access token.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "todoremote"

	// ConfigFile is the config file name, without extension.
	ConfigFile = "config"

	// TokenFile is the stored access token filename.
	TokenFile = "token.json"

	// EnvPrefix prefixes environment overrides, e.g. TODOREMOTE_SERVER_URL.
	EnvPrefix = "TODOREMOTE"

	// DefaultServerURL is the backend used when none is configured.
	DefaultServerURL = "https://ktor-jib-57lqbht3qa-de.a.run.app"

	// DefaultLatency is the simulated delay of the legacy single-task lookup.
	DefaultLatency = 2000 * time.Millisecond

	// DefaultTimeout bounds every backend request.
	DefaultTimeout = 10 * time.Second
)

// Auth holds OAuth2 client-credentials settings. All three fields must be
// set for the flow to be used.
type Auth struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Enabled reports whether client credentials are fully configured.
func (a Auth) Enabled() bool {
	return a.ClientID != "" && a.ClientSecret != "" && a.TokenURL != ""
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// ServerURL is the backend base URL.
	ServerURL string

	// Latency is the simulated delay before a seed lookup answers.
	// Zero selects DefaultLatency.
	Latency time.Duration

	// Timeout bounds a single backend request.
	Timeout time.Duration

	// Auth configures the client-credentials token flow.
	Auth Auth

	// Debug enables debug logging and HTTP dumps.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config for the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todoremote or
// $HOME/.config/todoremote. Settings come from config.yaml in that
// directory and TODOREMOTE_* environment variables; a missing file is not
// an error.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName(ConfigFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("latency", DefaultLatency)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.client_secret", "")
	v.SetDefault("auth.token_url", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s.yaml: %w", ConfigFile, err)
		}
	}

	cfg := &Config{
		Dir:       dir,
		ServerURL: strings.TrimRight(v.GetString("server_url"), "/"),
		Latency:   v.GetDuration("latency"),
		Timeout:   v.GetDuration("timeout"),
		Auth: Auth{
			ClientID:     v.GetString("auth.client_id"),
			ClientSecret: v.GetString("auth.client_secret"),
			TokenURL:     v.GetString("auth.token_url"),
		},
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server_url must not be empty")
	}
	if cfg.Latency < 0 {
		return nil, fmt.Errorf("latency must not be negative: %s", cfg.Latency)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory with mode 0700 if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
