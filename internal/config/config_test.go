// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// clowngpt-tui.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.DefaultModel != "clown 1.3" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
}

func TestLoadFromPath_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
server_url = "https://gpt.example.com"
default_model = "clown 2.0"

[ui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.ServerURL != "https://gpt.example.com" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.DefaultModel != "clown 2.0" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
}

func TestLoadFromPath_EnvOverridesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server_url = "http://from-file:8000"`), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CLOWNGPT_SERVER_URL", "http://from-env:9000")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.ServerURL != "http://from-env:9000" {
		t.Errorf("ServerURL = %q, env override should win", cfg.ServerURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad scheme", func(c *Config) { c.ServerURL = "ftp://example.com" }, true},
		{"missing host", func(c *Config) { c.ServerURL = "http://" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"https ok", func(c *Config) { c.ServerURL = "https://example.com" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveToPath_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.ServerURL = "https://saved.example.com"
	cfg.UI.ShowModelBadges = false

	if err := SaveToPath(cfg, path); err != nil {
		t.Fatalf("SaveToPath: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file perm = %o, want 0600", perm)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.ServerURL != "https://saved.example.com" {
		t.Errorf("ServerURL = %q", loaded.ServerURL)
	}
	if loaded.UI.ShowModelBadges {
		t.Error("ShowModelBadges should survive the round trip as false")
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`default_model = "clown 1.3"`), 0600); err != nil {
		t.Fatal(err)
	}

	updates := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case updates <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`default_model = "clown 2.0"`), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-updates:
		if cfg.DefaultModel != "clown 2.0" {
			t.Errorf("DefaultModel = %q, want 'clown 2.0'", cfg.DefaultModel)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not deliver the updated config")
	}
}
