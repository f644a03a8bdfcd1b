// clowngpt - a terminal client for the ClownGPT chat service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clowngpt-tui/internal/cli"
	"github.com/jeranaias/clowngpt-tui/internal/config"
	"github.com/jeranaias/clowngpt-tui/internal/logger"
	"github.com/jeranaias/clowngpt-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdLogin:
		cli.HandleLogin(args)
	case cli.CmdRegister:
		cli.HandleRegister(args)
	case cli.CmdLogout:
		cli.HandleLogout(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdPlan:
		cli.HandlePlan(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	rt, err := cli.NewRuntime(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file instead of stderr.
	if dir, err := config.Dir(); err == nil {
		level := ""
		if args.Verbose {
			level = "debug"
		}
		_ = logger.Configure(level, filepath.Join(dir, "clowngpt.log"))
	}

	// Reload config changes (default model, badges) while the TUI runs.
	if path, err := config.Path(); err == nil {
		watcher, err := config.NewWatcher(path, func(next *config.Config) {
			*rt.Cfg = *next
		})
		if err == nil {
			defer watcher.Close()
		}
	}

	m := app.New(rt.Cfg, rt.Sessions, rt.Client, rt.WS)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
