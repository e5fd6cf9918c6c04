// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui binds the headless widget runtime to a Bubble Tea terminal
// shell: a floating chat panel that toggles open and closed over the host
// application, renders the conversation, and forwards input to the
// conversation controller.
package ui
