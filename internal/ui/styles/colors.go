// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// ============================================================================
// COLOR PALETTE
// ============================================================================

var (
	// Accent colors.
	Purple  = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	Blue    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	Cyan    = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
	Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	Amber   = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	Rose    = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

	// Surfaces.
	Surface       = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#1E1E2E"}
	SurfaceDim    = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#181825"}
	SurfaceBright = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#313244"}
	Overlay       = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#45475A"}

	// Text.
	TextPrimary   = lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#CDD6F4"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#A6ADC8"}
	TextMuted     = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#6C7086"}
)
