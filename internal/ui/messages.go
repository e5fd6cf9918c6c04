// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/jeranaias/chatbubble/internal/backend"
)

// =============================================================================
// BUBBLE TEA MESSAGES
// =============================================================================

// chatResponseMsg carries the outcome of one exchange back into the update
// loop. Exactly one of resp/err is meaningful.
type chatResponseMsg struct {
	resp *backend.ChatResponse
	err  error
}

// transitionDoneMsg fires when the open/close transition duration elapses.
type transitionDoneMsg struct{}

// scrollMsg requests a scroll to the bottom of the transcript. Deferred by a
// zero-delay tick so layout settles before the viewport moves.
type scrollMsg struct{}
