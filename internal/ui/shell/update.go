// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/chat"
	"github.com/jeranaias/clowngpt-tui/internal/config"
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/nav"
	"github.com/jeranaias/clowngpt-tui/internal/workspace"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		return m.handleSnapshot(msg)

	case chatOpenedMsg:
		m.controller = msg.ctl
		m.loading = false
		if msg.ctl.State() == chat.StateNotFound {
			m.errMsg = "that chat no longer exists"
		}
		m.refreshTranscript()
		return m, nil

	case sendDoneMsg:
		m.sending = false
		if msg.err != nil {
			if errors.Is(msg.err, chat.ErrChatMissing) {
				m.errMsg = "that chat no longer exists"
			} else {
				m.errMsg = msg.err.Error()
			}
		} else {
			m.errMsg = ""
		}
		m.snap = m.ws.Snapshot()
		m.rebuildSidebar()
		m.refreshTranscript()
		return m, nil

	case modelSetMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.status = "model set to " + msg.name
		}
		m.snap = m.ws.Snapshot()
		m.rebuildSidebar()
		m.refreshTranscript()
		return m, nil

	case projectCreatedMsg:
		m.creatingProject = false
		m.projectInput.Reset()
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "created project " + msg.project.Name
		return m, reloadCmd(m.ws)

	case planSetMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "switched to the " + string(msg.plan) + " plan"
		return m, reloadCmd(m.ws)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateComponents(msg)
}

// =============================================================================
// RESIZE
// =============================================================================

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	contentWidth := m.width - sidebarWidth - 1
	if contentWidth < 20 {
		contentWidth = 20
	}
	vpHeight := m.height - headerLines - inputLines - statusLines
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = contentWidth
	m.viewport.Height = vpHeight
	m.input.Width = contentWidth - 4

	if m.renderer != nil {
		wrap := contentWidth - 2
		if wrap > 100 {
			wrap = 100
		}
		if r, err := glamourRenderer(wrap); err == nil {
			m.renderer = r
		}
	}
	m.refreshTranscript()
}

// =============================================================================
// SNAPSHOT HANDLING
// =============================================================================

func (m Model) handleSnapshot(msg snapshotMsg) (Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		// A reload that never established an identity invalidates the
		// session, whether the server said 401 or simply failed.
		if api.IsAuthFailure(msg.err) || errors.Is(msg.err, workspace.ErrProfileUnavailable) {
			return m, func() tea.Msg { return LogoutMsg{} }
		}
		m.errMsg = msg.err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.snap = msg.snap
	m.rebuildSidebar()

	// First load: seed a fresh draft so the user can type immediately.
	if m.controller == nil && m.route.Kind == nav.KindNewChat {
		m.controller = chat.NewDraft(m.client, m.ws, m.route.ProjectID, m.cfg.DefaultModel)
		m.input.Focus()
	}
	m.refreshTranscript()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Keys that work regardless of focus.
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, func() tea.Msg { return LogoutMsg{} }
	case "ctrl+r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(reloadCmd(m.ws), m.spinner.Tick)
	case "tab":
		if m.focus == focusSidebar {
			m.focus = focusContent
			if m.route.Kind == nav.KindChat || m.route.Kind == nav.KindNewChat {
				m.input.Focus()
			}
		} else {
			m.focus = focusSidebar
			m.input.Blur()
		}
		return m, nil
	}

	if m.focus == focusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleContentKey(msg)
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "n":
		return m.navigate(nav.NewChat(m.currentProjectHint()))
	case "enter":
		return m.navigate(m.selectedRoute())
	}
	return m, nil
}

func (m Model) handleContentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.route.Kind {
	case nav.KindChat, nav.KindNewChat:
		return m.handleChatKey(msg)
	case nav.KindProjects:
		return m.handleProjectsKey(msg)
	case nav.KindProject:
		return m.handleProjectKey(msg)
	case nav.KindPlan:
		return m.handlePlanKey(msg)
	case nav.KindSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusSidebar
		m.input.Blur()
		return m, nil
	case "ctrl+o":
		return m.cycleModel()
	case "enter":
		if m.sending || m.controller == nil {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.sending = true
		m.status = ""
		m.input.Reset()
		return m, tea.Batch(sendCmd(m.controller, text), m.spinner.Tick)
	case "up", "pgup":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case "down", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleModel reassigns the active chat to the next active model in the
// catalog. The controller is not safe for concurrent use, so no
// reassignment may start while a send or an open is still in flight.
func (m Model) cycleModel() (Model, tea.Cmd) {
	if m.sending || m.loading {
		return m, nil
	}
	if m.controller == nil || m.snap == nil || len(m.snap.Models) == 0 {
		return m, nil
	}
	active := make([]model.Model, 0, len(m.snap.Models))
	for _, mm := range m.snap.Models {
		if mm.IsActive {
			active = append(active, mm)
		}
	}
	if len(active) == 0 {
		return m, nil
	}
	next := active[0]
	for i, mm := range active {
		if mm.Name == m.controller.ModelName() {
			next = active[(i+1)%len(active)]
			break
		}
	}
	return m, setModelCmd(m.controller, next.Name)
}

func (m Model) handleProjectsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.creatingProject {
		switch msg.String() {
		case "esc":
			m.creatingProject = false
			m.projectInput.Reset()
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.projectInput.Value())
			if name == "" {
				return m, nil
			}
			return m, createProjectCmd(m.client, name)
		}
		var cmd tea.Cmd
		m.projectInput, cmd = m.projectInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.focus = focusSidebar
		return m, nil
	case "n":
		m.creatingProject = true
		m.projectInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleProjectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	chats := m.projectChats()
	switch msg.String() {
	case "esc":
		m.focus = focusSidebar
		return m, nil
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
		return m, nil
	case "down", "j":
		if m.listCursor < len(chats)-1 {
			m.listCursor++
		}
		return m, nil
	case "n":
		return m.navigate(nav.NewChat(m.route.ProjectID))
	case "enter":
		if m.listCursor >= 0 && m.listCursor < len(chats) {
			return m.navigate(nav.Chat(chats[m.listCursor].ID))
		}
	}
	return m, nil
}

func (m Model) handlePlanKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusSidebar
		return m, nil
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
		return m, nil
	case "down", "j":
		if m.listCursor < len(model.Plans)-1 {
			m.listCursor++
		}
		return m, nil
	case "enter":
		target := model.Plans[m.listCursor]
		if m.snap != nil && target == m.snap.Plan {
			return m, nil
		}
		return m, setPlanCmd(m.client, target)
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusSidebar
		return m, nil
	case "t":
		m.cfg.UI.Theme = nextTheme(m.cfg.UI.Theme)
		if err := config.Save(m.cfg); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "theme set to " + m.cfg.UI.Theme + " (restart to apply)"
		}
		return m, nil
	case "b":
		m.cfg.UI.ShowModelBadges = !m.cfg.UI.ShowModelBadges
		if err := config.Save(m.cfg); err != nil {
			m.errMsg = err.Error()
		}
		m.rebuildSidebar()
		return m, nil
	}
	return m, nil
}

func nextTheme(t string) string {
	switch t {
	case "auto":
		return "dark"
	case "dark":
		return "light"
	default:
		return "auto"
	}
}

// =============================================================================
// NAVIGATION
// =============================================================================

// navigate switches the content pane to the given route, hydrating chats
// in the background.
func (m Model) navigate(r nav.Route) (Model, tea.Cmd) {
	m.errMsg = ""
	m.status = ""
	m.listCursor = 0

	switch r.Kind {
	case nav.KindNewChat:
		m.route = r
		m.controller = chat.NewDraft(m.client, m.ws, r.ProjectID, m.cfg.DefaultModel)
		m.focus = focusContent
		m.input.Focus()
		m.refreshTranscript()
		return m, textinput.Blink

	case nav.KindChat:
		m.route = r
		m.loading = true
		m.controller = nil
		m.focus = focusContent
		m.input.Focus()
		m.refreshTranscript()
		return m, tea.Batch(openChatCmd(m.client, m.ws, r.ChatID), m.spinner.Tick, textinput.Blink)

	default:
		m.route = r
		m.focus = focusContent
		m.input.Blur()
		if r.Kind == nav.KindPlan {
			m.listCursor = m.planIndex()
		}
		return m, nil
	}
}

// planIndex returns the position of the current plan in the selectable
// list, so the plan pane opens with the active plan highlighted.
func (m Model) planIndex() int {
	current := model.PlanFree
	if m.snap != nil {
		current = m.snap.Plan
	}
	for i, p := range model.Plans {
		if p == current {
			return i
		}
	}
	return 0
}

// projectChats returns the chats of the project being viewed.
func (m Model) projectChats() []model.Chat {
	if m.snap == nil || m.route.Kind != nav.KindProject {
		return nil
	}
	return m.snap.ChatsForProject(m.route.ProjectID)
}

// =============================================================================
// COMPONENT FALLTHROUGH
// =============================================================================

func (m Model) updateComponents(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}
