// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - "clowngpt status" command handler.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/ui/styles"
)

var (
	statusOK   = lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true)
	statusBad  = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	statusDim  = lipgloss.NewStyle().Foreground(styles.TextMuted)
	statusHead = lipgloss.NewStyle().Foreground(styles.Purple).Bold(true)
)

// HandleStatus reports server reachability, session state, and workspace
// counts when signed in.
func HandleStatus(args Args) {
	rt, err := NewRuntime(args)
	if err != nil {
		fail(err)
	}
	ctx := context.Background()

	fmt.Println(statusHead.Render("clowngpt status"))
	fmt.Println(statusDim.Render("server: " + rt.Client.BaseURL()))

	if err := rt.Client.Health(ctx); err != nil {
		fmt.Printf("  server     %s  %v\n", statusBad.Render("unreachable"), err)
	} else {
		fmt.Printf("  server     %s\n", statusOK.Render("ok"))
	}

	if !rt.Sessions.IsAuthenticated() {
		fmt.Printf("  session    %s  (run: clowngpt login)\n", statusBad.Render("none"))
		return
	}
	fmt.Printf("  session    %s\n", statusOK.Render("present"))

	snap, err := rt.WS.Reload(ctx)
	if err != nil {
		if api.IsAuthFailure(err) {
			fmt.Printf("  token      %s  (run: clowngpt login)\n", statusBad.Render("rejected"))
			return
		}
		fmt.Printf("  workspace  %s  %v\n", statusBad.Render("error"), err)
		return
	}

	fmt.Printf("  user       %s (%s)\n", snap.Profile.Username, snap.Profile.Role)
	fmt.Printf("  plan       %s\n", snap.Plan)
	fmt.Printf("  models     %d\n", len(snap.Models))
	fmt.Printf("  projects   %d\n", len(snap.Projects))
	fmt.Printf("  chats      %d\n", len(snap.Chats))
}
