// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat drives one open conversation through its lifecycle.
//
// A conversation starts as a draft that exists only in memory; the first
// message send persists it on the server and rebinds the controller to the
// server-assigned id, so reopening the conversation never creates a
// duplicate. Opening an existing id resolves it against the workspace
// snapshot and hydrates the transcript; an id the server does not know is
// terminal - the controller reports the chat as missing rather than quietly
// starting a new draft that would orphan the user's messages.
package chat
