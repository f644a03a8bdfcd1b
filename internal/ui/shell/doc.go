// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell provides the authenticated workspace view: a sidebar of
// projects and chats next to a content pane that shows the active chat,
// the project list, the plan screen, or settings.
//
// The shell never mutates server state from View; every network call runs
// in a tea.Cmd and reports back with a message, and the rendered chat
// transcript is cached in the model so View stays read-only.
package shell
