// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/config"
	"github.com/jeranaias/clowngpt-tui/internal/logger"
	"github.com/jeranaias/clowngpt-tui/internal/session"
	"github.com/jeranaias/clowngpt-tui/internal/workspace"
)

// Runtime bundles everything a command handler needs: loaded config, the
// session store, the API client, and the workspace manager.
type Runtime struct {
	Cfg      *config.Config
	Sessions *session.Store
	Client   *api.Client
	WS       *workspace.Manager
}

// NewRuntime loads config, applies CLI overrides, and wires the client.
func NewRuntime(args Args) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if args.ServerURL != "" {
		cfg.ServerURL = args.ServerURL
	}
	if args.Model != "" {
		cfg.DefaultModel = args.Model
	}

	level := ""
	if args.Verbose {
		level = "debug"
	}
	if err := logger.Configure(level, ""); err != nil {
		return nil, err
	}

	sessions, err := session.NewStore()
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	client := api.NewClientWithConfig(sessions, &api.ClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout(),
	})

	return &Runtime{
		Cfg:      cfg,
		Sessions: sessions,
		Client:   client,
		WS:       workspace.NewManager(client),
	}, nil
}

// fail prints an error and exits non-zero.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// requireAuth exits with a hint when no session token is stored.
func requireAuth(rt *Runtime) {
	if !rt.Sessions.IsAuthenticated() {
		fmt.Fprintln(os.Stderr, "Not signed in. Run: clowngpt login")
		os.Exit(1)
	}
}
