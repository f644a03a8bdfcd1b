// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// clowngpt-tui.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/clowngpt-tui/internal/util"
)

// configDirName is the per-user directory holding config, env file, and the
// credential.
const configDirName = ".clowngpt"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete clowngpt-tui configuration.
type Config struct {
	// ServerURL is the ClownGPT backend base URL.
	ServerURL string `toml:"server_url"`

	// DefaultModel is the model used for a new draft when the server
	// catalog is empty or unreachable.
	DefaultModel string `toml:"default_model"`

	// RequestTimeoutSecs bounds each API request (0 = default 30s).
	RequestTimeoutSecs int `toml:"request_timeout_secs"`

	// UI holds terminal interface options.
	UI UIConfig `toml:"ui"`
}

// UIConfig contains terminal interface options.
type UIConfig struct {
	// Theme selects the color theme: "auto", "dark", or "light".
	Theme string `toml:"theme"`

	// ShowModelBadges toggles the model name badge next to sidebar chats.
	ShowModelBadges bool `toml:"show_model_badges"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		ServerURL:          "http://localhost:8000",
		DefaultModel:       "clown 1.3",
		RequestTimeoutSecs: 30,
		UI: UIConfig{
			Theme:           "auto",
			ShowModelBadges: true,
		},
	}
}

// RequestTimeout returns the configured request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the per-user configuration directory (~/.clowngpt).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// Path returns the config file path (~/.clowngpt/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration: defaults, then the config file if present,
// then environment overrides, then validation. A missing file is not an
// error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	// ~/.clowngpt/.env feeds the environment before overrides are read.
	if dir, err := Dir(); err == nil {
		_ = godotenv.Load(filepath.Join(dir, ".env"))
	}

	return LoadFromPath(path)
}

// LoadFromPath is Load against an explicit config file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default path with owner-only
// permissions.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit path atomically.
func SaveToPath(cfg *Config, path string) error {
	var b strings.Builder
	b.WriteString("# clowngpt-tui configuration file\n")
	b.WriteString("# Generated by clowngpt - edit with care\n\n")

	enc := toml.NewEncoder(&b)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return util.AtomicWriteFile(path, []byte(b.String()), 0600)
}

// =============================================================================
// OVERRIDES, DEFAULTS, VALIDATION
// =============================================================================

// ApplyEnvOverrides applies CLOWNGPT_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CLOWNGPT_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("CLOWNGPT_MODEL"); v != "" {
		c.DefaultModel = v
	}
	if v := os.Getenv("CLOWNGPT_THEME"); v != "" {
		c.UI.Theme = v
	}
}

func (c *Config) setDefaults() {
	def := Default()
	if c.ServerURL == "" {
		c.ServerURL = def.ServerURL
	}
	if c.DefaultModel == "" {
		c.DefaultModel = def.DefaultModel
	}
	if c.RequestTimeoutSecs <= 0 {
		c.RequestTimeoutSecs = def.RequestTimeoutSecs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// Validate checks the configuration for values that would break the client.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("server_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server_url must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("server_url is missing a host")
	}

	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be auto, dark, or light, got %q", c.UI.Theme)
	}
	return nil
}
