// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav defines the client's routes and the workspace guard.
package nav

import (
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/session"
)

// =============================================================================
// ROUTES
// =============================================================================

// Kind identifies a screen in the client.
type Kind int

const (
	KindLogin Kind = iota
	KindRegister
	KindNewChat
	KindChat
	KindProjects
	KindProject
	KindPlan
	KindSettings
)

// Route addresses one screen plus its parameters.
type Route struct {
	Kind Kind

	// ChatID addresses the open chat for KindChat.
	ChatID model.ID

	// ProjectID is the viewed project for KindProject, or the project hint
	// carried into a new draft for KindNewChat.
	ProjectID model.ID
}

// Login is the unauthenticated entry route.
func Login() Route { return Route{Kind: KindLogin} }

// Register is the account creation route.
func Register() Route { return Route{Kind: KindRegister} }

// NewChat opens a fresh draft, optionally hinted at a project.
func NewChat(projectHint model.ID) Route {
	return Route{Kind: KindNewChat, ProjectID: projectHint}
}

// Chat opens an existing conversation.
func Chat(id model.ID) Route { return Route{Kind: KindChat, ChatID: id} }

// Projects lists all projects.
func Projects() Route { return Route{Kind: KindProjects} }

// Project views one project and its chats.
func Project(id model.ID) Route { return Route{Kind: KindProject, ProjectID: id} }

// Plan shows the organization plan screen.
func Plan() Route { return Route{Kind: KindPlan} }

// Settings shows the settings screen.
func Settings() Route { return Route{Kind: KindSettings} }

// RequiresAuth reports whether the route lives inside the workspace.
func (r Route) RequiresAuth() bool {
	switch r.Kind {
	case KindLogin, KindRegister:
		return false
	}
	return true
}

// =============================================================================
// GUARD
// =============================================================================

// Guard gates workspace access on the session store.
type Guard struct {
	sessions *session.Store
}

// NewGuard creates a guard over the given session store.
func NewGuard(sessions *session.Store) Guard {
	return Guard{sessions: sessions}
}

// CanEnterWorkspace reports whether workspace routes are currently
// accessible.
func (g Guard) CanEnterWorkspace() bool {
	return g.sessions.IsAuthenticated()
}

// Resolve returns the route to actually render: workspace routes redirect
// to login while no credential is present. No network is contacted.
func (g Guard) Resolve(r Route) Route {
	if r.RequiresAuth() && !g.sessions.IsAuthenticated() {
		return Login()
	}
	return r
}
