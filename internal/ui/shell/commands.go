// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/chat"
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/workspace"
)

// =============================================================================
// MESSAGES
// =============================================================================

// LogoutMsg asks the parent model to clear the session and return to the
// login screen.
type LogoutMsg struct{}

// snapshotMsg carries the result of a workspace reload.
type snapshotMsg struct {
	snap *workspace.Snapshot
	err  error
}

// chatOpenedMsg carries a hydrated controller for a selected chat.
type chatOpenedMsg struct {
	ctl *chat.Controller
}

// sendDoneMsg reports a completed send; the controller already holds the
// appended messages.
type sendDoneMsg struct {
	err error
}

// modelSetMsg reports a model reassignment.
type modelSetMsg struct {
	name string
	err  error
}

// projectCreatedMsg reports an attempted project creation.
type projectCreatedMsg struct {
	project model.Project
	err     error
}

// planSetMsg reports an attempted plan change.
type planSetMsg struct {
	plan model.Plan
	err  error
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// reloadCmd refreshes the workspace snapshot from the server.
func reloadCmd(ws *workspace.Manager) tea.Cmd {
	return func() tea.Msg {
		snap, err := ws.Reload(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

// openChatCmd hydrates the given chat in the background. Opening a chat
// that no longer exists yields a controller in the not-found state, not
// an error.
func openChatCmd(client *api.Client, ws *workspace.Manager, id model.ID) tea.Cmd {
	return func() tea.Msg {
		ctl := chat.Open(context.Background(), client, ws, id)
		return chatOpenedMsg{ctl: ctl}
	}
}

// sendCmd submits the drafted text through the controller. The first send
// of a draft creates the chat server-side before posting.
func sendCmd(ctl *chat.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		return sendDoneMsg{err: ctl.Send(context.Background(), text)}
	}
}

// setModelCmd reassigns the active chat's model.
func setModelCmd(ctl *chat.Controller, name string) tea.Cmd {
	return func() tea.Msg {
		return modelSetMsg{name: name, err: ctl.SetModel(context.Background(), name)}
	}
}

// createProjectCmd creates a project and is followed by a reload on
// success so the sidebar picks it up. Visibility is an enum server-side,
// so an explicit value is always sent.
func createProjectCmd(client *api.Client, name string) tea.Cmd {
	return func() tea.Msg {
		p, err := client.CreateProject(context.Background(), api.ProjectCreate{
			Name:       name,
			Visibility: "private",
		})
		return projectCreatedMsg{project: p, err: err}
	}
}

// setPlanCmd switches the account's plan.
func setPlanCmd(client *api.Client, plan model.Plan) tea.Cmd {
	return func() tea.Msg {
		p, err := client.UpdatePlan(context.Background(), plan)
		return planSetMsg{plan: p, err: err}
	}
}
