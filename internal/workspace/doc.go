// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workspace maintains the client's in-memory view of the server:
// profile, model catalog, projects, chats, and plan.
//
// Consistency comes from full re-fetch, not incremental patching: every
// mutation elsewhere in the client is followed by Reload, which fetches all
// five fields and publishes them as one immutable Snapshot. This trades
// efficiency for simplicity and eliminates drift between the local view and
// the server.
package workspace
