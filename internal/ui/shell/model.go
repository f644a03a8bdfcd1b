// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/chat"
	"github.com/jeranaias/clowngpt-tui/internal/config"
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/nav"
	"github.com/jeranaias/clowngpt-tui/internal/ui/styles"
	"github.com/jeranaias/clowngpt-tui/internal/workspace"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

const (
	sidebarWidth = 30

	// Fixed vertical chrome in the content pane: header, input, status.
	// renderContent measures actual heights with lipgloss.Height; these
	// feed the initial viewport size on resize.
	headerLines = 2
	inputLines  = 1
	statusLines = 1
)

// =============================================================================
// FOCUS
// =============================================================================

// focusArea tracks which pane receives key input.
type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the workspace shell.
type Model struct {
	theme  styles.Theme
	cfg    *config.Config
	client *api.Client
	ws     *workspace.Manager

	// Navigation.
	route nav.Route
	focus focusArea

	// Workspace data.
	snap    *workspace.Snapshot
	loading bool

	// Active chat.
	controller *chat.Controller
	transcript string // rendered transcript, refreshed in Update only
	sending    bool

	// Sidebar.
	entries []sidebarEntry
	cursor  int

	// Components.
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	// Inline project creation on the projects view.
	creatingProject bool
	projectInput    textinput.Model

	// Cursor for list-style content views (project chats, plan options).
	listCursor int

	// Transient status line and last error.
	status string
	errMsg string

	width  int
	height int
}

// sidebarEntry is one selectable row in the sidebar.
type sidebarEntry struct {
	route   nav.Route
	label   string
	badge   string
	section bool // section headers render but are skipped by the cursor
}

// New builds the workspace shell. The first snapshot arrives via Enter.
func New(theme styles.Theme, cfg *config.Config, client *api.Client, ws *workspace.Manager) Model {
	input := textinput.New()
	input.Placeholder = "Message ClownGPT..."
	input.CharLimit = 4000

	projectInput := textinput.New()
	projectInput.Placeholder = "project name"
	projectInput.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Muted

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer = nil
	}

	return Model{
		theme:        theme,
		cfg:          cfg,
		client:       client,
		ws:           ws,
		route:        nav.NewChat(""),
		focus:        focusContent,
		loading:      true,
		viewport:     viewport.New(0, 0),
		input:        input,
		projectInput: projectInput,
		spinner:      sp,
		renderer:     renderer,
	}
}

// Enter returns the commands that run when the shell becomes active:
// the initial workspace reload and the spinner tick.
func (m Model) Enter() tea.Cmd {
	return tea.Batch(reloadCmd(m.ws), m.spinner.Tick, textinput.Blink)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Enter()
}

// =============================================================================
// SIDEBAR CONSTRUCTION
// =============================================================================

// rebuildSidebar recomputes the sidebar rows from the current snapshot,
// keeping the cursor on a selectable row.
func (m *Model) rebuildSidebar() {
	prev := m.selectedRoute()
	m.entries = m.entries[:0]

	m.entries = append(m.entries, sidebarEntry{route: nav.NewChat(""), label: "+ New chat"})

	m.entries = append(m.entries, sidebarEntry{section: true, label: "Projects"})
	m.entries = append(m.entries, sidebarEntry{route: nav.Projects(), label: "All projects"})
	if m.snap != nil {
		for _, p := range m.snap.Projects {
			m.entries = append(m.entries, sidebarEntry{
				route: nav.Project(p.ID),
				label: p.Name,
				badge: countBadge(m.snap.ProjectChatCount(p.ID)),
			})
		}
	}

	m.entries = append(m.entries, sidebarEntry{section: true, label: "Chats"})
	if m.snap != nil {
		for _, c := range m.snap.ChatsWithoutProject() {
			badge := ""
			if m.cfg.UI.ShowModelBadges {
				badge = c.ModelName
			}
			m.entries = append(m.entries, sidebarEntry{
				route: nav.Chat(c.ID),
				label: c.Title,
				badge: badge,
			})
		}
	}

	m.entries = append(m.entries, sidebarEntry{section: true, label: "Account"})
	planLabel := "Plan"
	if m.snap != nil {
		planLabel = "Plan: " + string(m.snap.Plan)
	}
	m.entries = append(m.entries, sidebarEntry{route: nav.Plan(), label: planLabel})
	m.entries = append(m.entries, sidebarEntry{route: nav.Settings(), label: "Settings"})

	// Restore the cursor to the previously selected route when it still
	// exists, otherwise land on the first selectable row.
	m.cursor = -1
	for i, e := range m.entries {
		if e.section {
			continue
		}
		if m.cursor == -1 {
			m.cursor = i
		}
		if sameRoute(e.route, prev) {
			m.cursor = i
			break
		}
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (e sidebarEntry) selectable() bool { return !e.section }

func (m Model) selectedRoute() nav.Route {
	if m.cursor >= 0 && m.cursor < len(m.entries) {
		return m.entries[m.cursor].route
	}
	return nav.Route{}
}

// moveCursor advances the cursor by dir, skipping section headers.
func (m *Model) moveCursor(dir int) {
	if len(m.entries) == 0 {
		return
	}
	i := m.cursor
	for {
		i += dir
		if i < 0 || i >= len(m.entries) {
			return
		}
		if m.entries[i].selectable() {
			m.cursor = i
			return
		}
	}
}

func sameRoute(a, b nav.Route) bool {
	return a.Kind == b.Kind && a.ChatID == b.ChatID && a.ProjectID == b.ProjectID
}

func countBadge(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// currentProjectHint returns the project to seed a new draft with: the
// project being viewed, or none.
func (m Model) currentProjectHint() model.ID {
	if m.route.Kind == nav.KindProject {
		return m.route.ProjectID
	}
	return ""
}
