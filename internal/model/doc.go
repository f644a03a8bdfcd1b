// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the ClownGPT
// backend: profiles, models, projects, chats, messages, and plans.
//
// All server-assigned identifiers are normalized into the canonical ID type
// at the JSON boundary, so the rest of the client compares ids directly
// without worrying about whether the server sent a number or a string.
package model
