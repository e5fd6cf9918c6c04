// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the chat widget host.
//
// Supports TOML configuration files with sensible defaults, environment
// variable overrides (CHATBUBBLE_* prefix), and validation.
package config
