// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clowngpt-tui/internal/chat"
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/nav"
	"github.com/jeranaias/clowngpt-tui/internal/util"
)

// glamourRenderer builds a markdown renderer wrapped at the given width.
func glamourRenderer(wrap int) (*glamour.TermRenderer, error) {
	if wrap < 20 {
		wrap = 20
	}
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
}

// =============================================================================
// MAIN RENDER
// =============================================================================

// View implements tea.Model.
// Layout: sidebar | content, where content is header + body + input + status.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sidebar := m.renderSidebar()
	content := m.renderContent()

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
}

func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 1
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderContent() string {
	switch m.route.Kind {
	case nav.KindChat, nav.KindNewChat:
		return m.renderChatPane()
	case nav.KindProjects:
		return m.renderProjectsPane()
	case nav.KindProject:
		return m.renderProjectPane()
	case nav.KindPlan:
		return m.renderPlanPane()
	case nav.KindSettings:
		return m.renderSettingsPane()
	}
	return ""
}

// =============================================================================
// CHAT PANE
// =============================================================================

// renderChatPane stacks header, transcript viewport, input line and status
// bar. The viewport height is fixed by handleResize; the header and footer
// heights here must stay in sync with the layout constants.
func (m Model) renderChatPane() string {
	header := m.renderChatHeader()
	input := m.renderInput()
	status := m.renderStatusBar()

	headerHeight := lipgloss.Height(header)
	inputHeight := lipgloss.Height(input)
	statusHeight := lipgloss.Height(status)

	available := m.height - headerHeight - inputHeight - statusHeight
	if available < 1 {
		available = 1
	}

	body := m.viewport.View()
	if lipgloss.Height(body) != available {
		body = lipgloss.NewStyle().
			Height(available).
			MaxHeight(available).
			Width(m.contentWidth()).
			Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, input, status)
}

func (m Model) renderChatHeader() string {
	title := model.DefaultChatTitle
	modelName := m.cfg.DefaultModel
	if m.controller != nil {
		title = m.controller.Title()
		modelName = m.controller.ModelName()
	}
	title = util.TruncateWidth(title, m.contentWidth()-20)

	left := m.theme.ChatHeader.Render(title)
	var right string
	if m.cfg.UI.ShowModelBadges && modelName != "" {
		right = m.theme.ModelBadge.Render(modelName)
	}

	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return lipgloss.JoinVertical(lipgloss.Left, line, "")
}

func (m Model) renderInput() string {
	if m.controller != nil && m.controller.State() == chat.StateNotFound {
		return m.theme.Muted.Render("this chat is gone; pick another from the sidebar")
	}
	return m.theme.InputPrompt.Render("> ") + m.input.View()
}

func (m Model) renderStatusBar() string {
	switch {
	case m.sending:
		return m.theme.StatusBar.Render(m.spinner.View() + " waiting for " + m.modelLabel())
	case m.loading:
		return m.theme.StatusBar.Render(m.spinner.View() + " loading...")
	case m.errMsg != "":
		return m.theme.FormError.Render(m.errMsg)
	case m.status != "":
		return m.theme.StatusBar.Render(m.status)
	}
	return m.theme.StatusBar.Render("enter: send  ·  ctrl+o: switch model  ·  tab: sidebar  ·  ctrl+l: log out")
}

func (m Model) modelLabel() string {
	if m.controller != nil && m.controller.ModelName() != "" {
		return m.controller.ModelName()
	}
	return "the model"
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshTranscript re-renders the conversation into the viewport. Called
// from Update only, so View never touches the controller while a send is
// in flight.
func (m *Model) refreshTranscript() {
	if m.controller == nil {
		m.transcript = ""
		m.viewport.SetContent(m.theme.Muted.Render("loading..."))
		return
	}

	switch m.controller.State() {
	case chat.StateLoading:
		m.viewport.SetContent(m.theme.Muted.Render("loading conversation..."))
		return
	case chat.StateNotFound:
		m.viewport.SetContent(m.theme.FormError.Render("This chat no longer exists on the server.") +
			"\n\n" + m.theme.Muted.Render("It may have been deleted elsewhere. Pick another chat or start a new one."))
		return
	}

	msgs := m.controller.Messages()
	if len(msgs) == 0 {
		m.viewport.SetContent(m.theme.Muted.Render("No messages yet. Say something."))
		return
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		if msg.IsUser() {
			b.WriteString(m.theme.UserLabel.Render("You"))
			b.WriteString("\n")
			b.WriteString(msg.Content)
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.theme.AssistantLabel.Render(m.modelLabel()))
		b.WriteString("\n")
		b.WriteString(m.renderMarkdown(msg.Content))
	}
	m.transcript = b.String()
	m.viewport.SetContent(m.transcript)
	m.viewport.GotoBottom()
}

func (m Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text + "\n"
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// =============================================================================
// PROJECTS PANE
// =============================================================================

func (m Model) renderProjectsPane() string {
	var rows []string
	rows = append(rows, m.theme.ChatHeader.Render("Projects"), "")

	if m.snap == nil || len(m.snap.Projects) == 0 {
		rows = append(rows, m.theme.Muted.Render("No projects yet."))
	} else {
		for _, p := range m.snap.Projects {
			count := m.snap.ProjectChatCount(p.ID)
			line := fmt.Sprintf("%s  %s",
				m.theme.SidebarItem.Render(p.Name),
				m.theme.SidebarBadge.Render(fmt.Sprintf("(%d chats)", count)))
			rows = append(rows, line)
			if p.Description != "" {
				rows = append(rows, "  "+m.theme.Muted.Render(p.Description))
			}
		}
	}

	rows = append(rows, "")
	if m.creatingProject {
		rows = append(rows, m.theme.FormLabel.Render("New project name:"))
		rows = append(rows, m.projectInput.View())
		rows = append(rows, m.theme.FormHint.Render("enter: create  ·  esc: cancel"))
	} else {
		rows = append(rows, m.theme.FormHint.Render("n: new project  ·  esc: sidebar"))
	}
	return m.paneWithStatus(rows)
}

// =============================================================================
// PROJECT PANE
// =============================================================================

func (m Model) renderProjectPane() string {
	var rows []string
	name := "Project"
	if m.snap != nil {
		if p, ok := m.snap.Project(m.route.ProjectID); ok {
			name = p.Name
			rows = append(rows, m.theme.ChatHeader.Render(name))
			if p.Description != "" {
				rows = append(rows, m.theme.Muted.Render(p.Description))
			}
			rows = append(rows, "")
		}
	}
	if len(rows) == 0 {
		rows = append(rows, m.theme.ChatHeader.Render(name), "")
	}

	chats := m.projectChats()
	if len(chats) == 0 {
		rows = append(rows, m.theme.Muted.Render("No chats in this project yet."))
	} else {
		for i, c := range chats {
			label := util.TruncateWidth(c.Title, m.contentWidth()-16)
			if m.cfg.UI.ShowModelBadges && c.ModelName != "" {
				label += "  " + m.theme.SidebarBadge.Render(c.ModelName)
			}
			if i == m.listCursor {
				rows = append(rows, m.theme.SidebarSelected.Render("> "+label))
			} else {
				rows = append(rows, m.theme.SidebarItem.Render("  "+label))
			}
		}
	}

	rows = append(rows, "", m.theme.FormHint.Render("enter: open  ·  n: new chat here  ·  esc: sidebar"))
	return m.paneWithStatus(rows)
}

// =============================================================================
// PLAN PANE
// =============================================================================

func (m Model) renderPlanPane() string {
	var rows []string
	rows = append(rows, m.theme.ChatHeader.Render("Plan"), "")

	current := model.PlanFree
	if m.snap != nil {
		current = m.snap.Plan
	}

	for i, p := range model.Plans {
		label := string(p)
		style := m.theme.PlanOther
		if p == current {
			label += "  (current)"
			style = m.theme.PlanCurrent
		}
		if i == m.listCursor {
			rows = append(rows, style.Render("> "+label))
		} else {
			rows = append(rows, style.Render("  "+label))
		}
	}

	rows = append(rows, "", m.theme.FormHint.Render("enter: switch plan  ·  esc: sidebar"))
	return m.paneWithStatus(rows)
}

// =============================================================================
// SETTINGS PANE
// =============================================================================

func (m Model) renderSettingsPane() string {
	var rows []string
	rows = append(rows, m.theme.ChatHeader.Render("Settings"), "")

	rows = append(rows, m.settingRow("Server", m.cfg.ServerURL))
	rows = append(rows, m.settingRow("Default model", m.cfg.DefaultModel))
	rows = append(rows, m.settingRow("Theme", m.cfg.UI.Theme))
	rows = append(rows, m.settingRow("Model badges", onOff(m.cfg.UI.ShowModelBadges)))
	if m.snap != nil {
		rows = append(rows, "")
		rows = append(rows, m.settingRow("Signed in as", m.snap.Profile.Username))
		rows = append(rows, m.settingRow("Role", m.snap.Profile.Role))
	}

	rows = append(rows, "", m.theme.FormHint.Render("t: cycle theme  ·  b: toggle badges  ·  esc: sidebar"))
	return m.paneWithStatus(rows)
}

func (m Model) settingRow(label, value string) string {
	return m.theme.FormLabel.Render(label+":") + " " + value
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// paneWithStatus pads a list-style pane to full height and pins the status
// bar to the bottom row.
func (m Model) paneWithStatus(rows []string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	status := m.renderListStatus()

	bodyHeight := m.height - lipgloss.Height(status)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Width(m.contentWidth()).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (m Model) renderListStatus() string {
	switch {
	case m.loading:
		return m.theme.StatusBar.Render(m.spinner.View() + " loading...")
	case m.errMsg != "":
		return m.theme.FormError.Render(m.errMsg)
	case m.status != "":
		return m.theme.StatusBar.Render(m.status)
	}
	return m.theme.StatusBar.Render("tab: sidebar  ·  ctrl+r: refresh  ·  ctrl+l: log out")
}
