// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clowngpt-tui/internal/util"
)

// =============================================================================
// SIDEBAR RENDER
// =============================================================================

func (m Model) renderSidebar() string {
	var rows []string
	rows = append(rows, m.theme.SidebarTitle.Render("ClownGPT"), "")

	labelWidth := sidebarWidth - 4

	for i, e := range m.entries {
		if e.section {
			rows = append(rows, "", m.theme.SidebarSection.Render(strings.ToUpper(e.label)))
			continue
		}

		label := util.TruncateWidth(e.label, labelWidth)
		line := label
		if e.badge != "" {
			badge := m.theme.SidebarBadge.Render(e.badge)
			gap := labelWidth - lipgloss.Width(label) - lipgloss.Width(badge)
			if gap < 1 {
				gap = 1
			}
			line = label + strings.Repeat(" ", gap) + badge
		}

		if i == m.cursor && m.focus == focusSidebar {
			rows = append(rows, m.theme.SidebarSelected.Render("> "+line))
		} else {
			rows = append(rows, m.theme.SidebarItem.Render("  "+line))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	footer := m.renderSidebarFooter()

	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderSidebarFooter() string {
	who := "not signed in"
	if m.snap != nil {
		who = m.snap.Profile.Username
		if m.snap.Profile.Role != "" && m.snap.Profile.Role != "member" {
			who += " · " + m.snap.Profile.Role
		}
	}
	return m.theme.SidebarFooter.Width(sidebarWidth).Render(who)
}
