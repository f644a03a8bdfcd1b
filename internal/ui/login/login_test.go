// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"testing"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/ui/styles"
)

func TestFocusSkipsEmailInLoginMode(t *testing.T) {
	m := New(styles.NewTheme("dark"), nil, nil)

	if m.focus != fieldUsername {
		t.Fatalf("initial focus = %d, want username", m.focus)
	}
	if next := m.nextField(1); next != fieldPassword {
		t.Errorf("next field in login mode = %d, want password", next)
	}

	m.mode = ModeRegister
	if next := m.nextField(1); next != fieldEmail {
		t.Errorf("next field in register mode = %d, want email", next)
	}
}

func TestToggleModeLeavesValidFocus(t *testing.T) {
	m := New(styles.NewTheme("dark"), nil, nil)
	m.toggleMode()
	if m.mode != ModeRegister {
		t.Fatal("expected register mode")
	}
	m.setFocus(fieldEmail)

	m.toggleMode()
	if m.mode != ModeLogin {
		t.Fatal("expected login mode")
	}
	if m.focus == fieldEmail {
		t.Error("focus left on email after returning to login mode")
	}
}

func TestAuthErrorText(t *testing.T) {
	if got := authErrorText(&api.RequestError{Status: 401, Body: "nope"}); got != "invalid username or password" {
		t.Errorf("401 text = %q", got)
	}
	if got := authErrorText(&api.RequestError{Status: 409, Body: "taken"}); got != "username already taken" {
		t.Errorf("409 text = %q", got)
	}
}
