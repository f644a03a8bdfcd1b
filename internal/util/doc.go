// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across clowngpt-tui.
//
// This package contains the small helpers used throughout the client for
// string manipulation and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-width aware truncation for terminal columns
//   - CollapseWhitespace: fold whitespace runs into single spaces
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
