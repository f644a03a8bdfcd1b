// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav defines the client's routes and the guard that keeps
// unauthenticated users out of the workspace.
//
// The guard consults only the session store; it never touches the network.
// Login and register store the credential before navigating into the
// workspace, so the guard passes on first render.
package nav
