// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command handlers: login, logout,
// status, the plain-terminal chat REPL, and config/plan management.
package cli
