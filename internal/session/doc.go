// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session manages the widget's conversational identity: a
// time-bounded session per widget id, persisted in a pluggable client-side
// store so it survives remounts until the validity window lapses.
package session
