// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// clowngpt-tui.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides, in precedence order:
//   - CLOWNGPT_* environment variables
//   - ~/.clowngpt/.env (loaded into the environment first)
//   - ~/.clowngpt/config.toml
//   - Built-in defaults
package config
