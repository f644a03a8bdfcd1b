// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the bearer credential for the active ClownGPT
// session.
//
// The credential is persisted to a fixed path under the user's home
// directory so it survives client restarts, and is cleared on logout or when
// the server rejects it. The store makes no network calls and is safe to
// construct before any other component.
package session
