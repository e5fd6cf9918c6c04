// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for widget conversations:
// messages, senders, suggestions, and the append-only transcript.
package model
