// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles holds the color palette and lipgloss styles shared by
// the terminal UI. Colors are adaptive: each carries a light and dark
// variant and lipgloss picks the right one for the detected background.
package styles
