// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package widget holds the runtime state machines of the chat widget: the
// conversation controller that drives one question/answer exchange at a
// time, and the visibility machine that governs the open/closed/minimized
// presentation states. Both are headless; the ui package binds them to a
// terminal shell.
package widget
