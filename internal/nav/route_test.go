// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav defines the client's routes and the workspace guard.
package nav

import (
	"path/filepath"
	"testing"

	"github.com/jeranaias/clowngpt-tui/internal/session"
)

func newGuard(t *testing.T) (Guard, *session.Store) {
	t.Helper()
	s, err := session.NewStoreWithPath(filepath.Join(t.TempDir(), "credentials"))
	if err != nil {
		t.Fatal(err)
	}
	return NewGuard(s), s
}

func TestRoute_RequiresAuth(t *testing.T) {
	if Login().RequiresAuth() {
		t.Error("login must be reachable without a credential")
	}
	if Register().RequiresAuth() {
		t.Error("register must be reachable without a credential")
	}

	for _, r := range []Route{NewChat(""), Chat("c1"), Projects(), Project("p1"), Plan(), Settings()} {
		if !r.RequiresAuth() {
			t.Errorf("workspace route %v should require auth", r.Kind)
		}
	}
}

func TestGuard_RedirectsUnauthenticated(t *testing.T) {
	guard, _ := newGuard(t)

	if guard.CanEnterWorkspace() {
		t.Error("empty session should not enter the workspace")
	}

	got := guard.Resolve(Chat("c1"))
	if got.Kind != KindLogin {
		t.Errorf("Resolve(chat) = %v, want login redirect", got.Kind)
	}

	// Anonymous routes pass through untouched.
	if got := guard.Resolve(Register()); got.Kind != KindRegister {
		t.Errorf("Resolve(register) = %v, want register", got.Kind)
	}
}

func TestGuard_PassesAuthenticated(t *testing.T) {
	guard, sessions := newGuard(t)
	if err := sessions.SetToken("tok"); err != nil {
		t.Fatal(err)
	}

	if !guard.CanEnterWorkspace() {
		t.Error("credentialed session should enter the workspace")
	}

	got := guard.Resolve(NewChat("p1"))
	if got.Kind != KindNewChat || got.ProjectID != "p1" {
		t.Errorf("Resolve should preserve the route, got %+v", got)
	}
}

func TestGuard_ClearedSessionLocksOut(t *testing.T) {
	guard, sessions := newGuard(t)
	sessions.SetToken("tok")
	sessions.Clear()

	if guard.CanEnterWorkspace() {
		t.Error("cleared session should be locked out again")
	}
}
