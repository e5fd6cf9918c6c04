// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides conversation export functionality for the chat
// widget. Supports exporting transcripts to HTML, Markdown, and JSON.
package export
