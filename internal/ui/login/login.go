// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the login and registration form for the TUI.
package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/session"
	"github.com/jeranaias/clowngpt-tui/internal/ui/styles"
)

// =============================================================================
// FORM MODES
// =============================================================================

// Mode selects which form the view shows.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// Field indices into Model.inputs. The email field only participates in
// register mode.
const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// =============================================================================
// MESSAGES
// =============================================================================

// DoneMsg is emitted when authentication succeeds and the token has been
// persisted. The parent model switches to the workspace on receipt.
type DoneMsg struct{}

// resultMsg carries the outcome of a login or register attempt.
type resultMsg struct {
	token string
	err   error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the authentication screen.
type Model struct {
	theme    styles.Theme
	client   *api.Client
	sessions *session.Store

	mode       Mode
	inputs     [fieldCount]textinput.Model
	focus      int
	submitting bool
	errMsg     string

	width  int
	height int
}

// New builds the authentication screen in login mode.
func New(theme styles.Theme, client *api.Client, sessions *session.Store) Model {
	m := Model{
		theme:    theme,
		client:   client,
		sessions: sessions,
		mode:     ModeLogin,
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.inputs[fieldUsername] = username
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = authErrorText(msg.err)
			return m, nil
		}
		if err := m.sessions.SetToken(msg.token); err != nil {
			m.errMsg = "could not save session: " + err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return DoneMsg{} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus(m.nextField(1))
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.nextField(-1))
			return m, nil
		case "ctrl+r":
			m.toggleMode()
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// nextField returns the next focusable field in the given direction,
// skipping email in login mode.
func (m Model) nextField(dir int) int {
	f := m.focus
	for {
		f = (f + dir + fieldCount) % fieldCount
		if f == fieldEmail && m.mode == ModeLogin {
			continue
		}
		return f
	}
}

func (m *Model) setFocus(f int) {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
}

func (m *Model) toggleMode() {
	if m.mode == ModeLogin {
		m.mode = ModeRegister
	} else {
		m.mode = ModeLogin
		if m.focus == fieldEmail {
			m.setFocus(fieldUsername)
		}
	}
	m.errMsg = ""
}

func (m Model) submit() (Model, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if username == "" || password == "" {
		m.errMsg = "username and password are required"
		return m, nil
	}
	if m.mode == ModeRegister && email == "" {
		m.errMsg = "email is required"
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	client := m.client
	mode := m.mode
	return m, func() tea.Msg {
		ctx := context.Background()
		var token string
		var err error
		if mode == ModeRegister {
			token, err = client.Register(ctx, username, email, password)
		} else {
			token, err = client.Login(ctx, username, password)
		}
		return resultMsg{token: token, err: err}
	}
}

// authErrorText maps an API error to a short message for the form.
func authErrorText(err error) string {
	if api.IsAuthFailure(err) {
		return "invalid username or password"
	}
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Status == 409 {
		return "username already taken"
	}
	return err.Error()
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	title := m.theme.SidebarTitle.Render("ClownGPT")

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, m.theme.FormLabel.Render("Username"))
	rows = append(rows, m.inputs[fieldUsername].View())
	if m.mode == ModeRegister {
		rows = append(rows, m.theme.FormLabel.Render("Email"))
		rows = append(rows, m.inputs[fieldEmail].View())
	}
	rows = append(rows, m.theme.FormLabel.Render("Password"))
	rows = append(rows, m.inputs[fieldPassword].View())
	rows = append(rows, "")

	switch {
	case m.submitting:
		rows = append(rows, m.theme.FormHint.Render("signing in..."))
	case m.errMsg != "":
		rows = append(rows, m.theme.FormError.Render(m.errMsg))
	default:
		rows = append(rows, "")
	}

	hint := "enter: sign in  ·  ctrl+r: create account"
	if m.mode == ModeRegister {
		hint = "enter: create account  ·  ctrl+r: back to sign in"
	}
	rows = append(rows, "", m.theme.FormHint.Render(hint))

	form := m.theme.Border.Padding(1, 3).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)

	if m.width == 0 || m.height == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
