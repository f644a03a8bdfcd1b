// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - "clowngpt config" command handler.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jeranaias/clowngpt-tui/internal/config"
)

// HandleConfig shows or sets configuration values.
func HandleConfig(args Args) {
	switch args.Subcommand {
	case "", "show":
		showConfig()
	case "set":
		setConfig(args.ConfigKey, args.ConfigVal)
	case "path":
		path, err := config.Path()
		if err != nil {
			fail(err)
		}
		fmt.Println(path)
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args.Subcommand)
		fmt.Fprintln(os.Stderr, "Usage: clowngpt config [show|set KEY VALUE|path]")
		os.Exit(1)
	}
}

func showConfig() {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	fmt.Printf("server_url        = %s\n", cfg.ServerURL)
	fmt.Printf("default_model     = %s\n", cfg.DefaultModel)
	fmt.Printf("request_timeout   = %ds\n", cfg.RequestTimeoutSecs)
	fmt.Printf("ui.theme          = %s\n", cfg.UI.Theme)
	fmt.Printf("ui.model_badges   = %t\n", cfg.UI.ShowModelBadges)
}

func setConfig(key, value string) {
	if key == "" || value == "" {
		fmt.Fprintln(os.Stderr, "Usage: clowngpt config set KEY VALUE")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	switch key {
	case "server_url", "server-url":
		cfg.ServerURL = value
	case "default_model", "model":
		cfg.DefaultModel = value
	case "request_timeout", "timeout":
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			fail(fmt.Errorf("timeout must be a positive number of seconds"))
		}
		cfg.RequestTimeoutSecs = secs
	case "theme", "ui.theme":
		cfg.UI.Theme = value
	case "model_badges", "ui.model_badges":
		on, err := strconv.ParseBool(value)
		if err != nil {
			fail(fmt.Errorf("model_badges must be true or false"))
		}
		cfg.UI.ShowModelBadges = on
	default:
		fail(fmt.Errorf("unknown config key: %s", key))
	}

	if err := cfg.Validate(); err != nil {
		fail(err)
	}
	if err := config.Save(cfg); err != nil {
		fail(err)
	}
	fmt.Printf("%s = %s\n", key, value)
}
