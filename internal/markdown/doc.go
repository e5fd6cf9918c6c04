// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown is the message pipeline: it turns raw text into the
// rendered artifact a message carries. Incoming bot text goes through a
// pluggable markdown renderer and gets its anchors hardened; outgoing user
// text is escaped literally so it can never smuggle markup.
package markdown
