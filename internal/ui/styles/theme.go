// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ============================================================================
// THEME
// ============================================================================

// Theme bundles the styles the UI renders with. Build one with NewTheme
// at startup and pass it down; styles are cheap to copy.
type Theme struct {
	// Sidebar.
	SidebarTitle    lipgloss.Style
	SidebarSection  lipgloss.Style
	SidebarItem     lipgloss.Style
	SidebarSelected lipgloss.Style
	SidebarBadge    lipgloss.Style
	SidebarFooter   lipgloss.Style

	// Chat view.
	ChatHeader     lipgloss.Style
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	ModelBadge     lipgloss.Style
	StatusBar      lipgloss.Style
	InputPrompt    lipgloss.Style

	// Forms and general chrome.
	FormLabel   lipgloss.Style
	FormError   lipgloss.Style
	FormHint    lipgloss.Style
	PlanCurrent lipgloss.Style
	PlanOther   lipgloss.Style
	Border      lipgloss.Style
	Muted       lipgloss.Style
}

// NewTheme builds the theme for the given mode: "dark", "light", or
// "auto" (detect from the terminal). Unknown modes fall back to auto.
func NewTheme(mode string) Theme {
	switch mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}

	return Theme{
		SidebarTitle: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true),
		SidebarSection: lipgloss.NewStyle().
			Foreground(TextMuted).
			Bold(true),
		SidebarItem: lipgloss.NewStyle().
			Foreground(TextSecondary),
		SidebarSelected: lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(SurfaceBright).
			Bold(true),
		SidebarBadge: lipgloss.NewStyle().
			Foreground(Cyan),
		SidebarFooter: lipgloss.NewStyle().
			Foreground(TextMuted),

		ChatHeader: lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true),
		UserLabel: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),
		AssistantLabel: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true),
		ModelBadge: lipgloss.NewStyle().
			Foreground(Cyan).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(TextMuted),
		InputPrompt: lipgloss.NewStyle().
			Foreground(Emerald).
			Bold(true),

		FormLabel: lipgloss.NewStyle().
			Foreground(TextSecondary),
		FormError: lipgloss.NewStyle().
			Foreground(Rose),
		FormHint: lipgloss.NewStyle().
			Foreground(TextMuted),
		PlanCurrent: lipgloss.NewStyle().
			Foreground(Emerald).
			Bold(true),
		PlanOther: lipgloss.NewStyle().
			Foreground(TextSecondary),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay),
		Muted: lipgloss.NewStyle().
			Foreground(TextMuted),
	}
}
