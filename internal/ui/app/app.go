// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model. It routes between the login
// screen and the workspace shell based on whether a session token exists,
// clearing the session and falling back to login when the server rejects
// the token.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/config"
	"github.com/jeranaias/clowngpt-tui/internal/nav"
	"github.com/jeranaias/clowngpt-tui/internal/session"
	"github.com/jeranaias/clowngpt-tui/internal/ui/login"
	"github.com/jeranaias/clowngpt-tui/internal/ui/shell"
	"github.com/jeranaias/clowngpt-tui/internal/ui/styles"
	"github.com/jeranaias/clowngpt-tui/internal/workspace"
)

// screen names the top-level view currently shown.
type screen int

const (
	screenLogin screen = iota
	screenShell
)

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	theme    styles.Theme
	sessions *session.Store
	client   *api.Client
	ws       *workspace.Manager
	guard    nav.Guard

	screen screen
	login  login.Model
	shell  shell.Model

	width  int
	height int
}

// New wires the application together. A stored token skips the login
// screen; the first reload decides whether it is still valid.
func New(cfg *config.Config, sessions *session.Store, client *api.Client, ws *workspace.Manager) Model {
	theme := styles.NewTheme(cfg.UI.Theme)
	m := Model{
		cfg:      cfg,
		theme:    theme,
		sessions: sessions,
		client:   client,
		ws:       ws,
		guard:    nav.NewGuard(sessions),
		login:    login.New(theme, client, sessions),
		shell:    shell.New(theme, cfg, client, ws),
	}
	if m.guard.CanEnterWorkspace() {
		m.screen = screenShell
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.screen == screenShell {
		return m.shell.Enter()
	}
	return m.login.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Both screens track the size so switching never renders stale
		// dimensions.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		cmds = append(cmds, cmd)
		m.shell, cmd = m.shell.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case login.DoneMsg:
		m.screen = screenShell
		m.shell = shell.New(m.theme, m.cfg, m.client, m.ws)
		var cmd tea.Cmd
		m.shell, cmd = m.shell.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(m.shell.Enter(), cmd)

	case shell.LogoutMsg:
		_ = m.sessions.Clear()
		m.screen = screenLogin
		m.login = login.New(m.theme, m.client, m.sessions)
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(m.login.Init(), cmd)
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenShell:
		m.shell, cmd = m.shell.Update(msg)
	default:
		m.login, cmd = m.login.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.screen == screenShell {
		return m.shell.View()
	}
	return m.login.View()
}
