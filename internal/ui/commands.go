// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbubble/internal/backend"
	"github.com/jeranaias/chatbubble/internal/widget"
)

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

// askCmd sends one accepted exchange to the answer service off the update
// loop. The controller has already appended the user message; the command
// only reports the outcome.
func askCmd(client *backend.Client, botID string, ex widget.Exchange, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Ask(ctx, ex.Question, botID, ex.SessionID)
		return chatResponseMsg{resp: resp, err: err}
	}
}

// finishTransitionCmd schedules the settle of an in-flight open/close
// transition.
func finishTransitionCmd() tea.Cmd {
	return tea.Tick(widget.TransitionDuration, func(time.Time) tea.Msg {
		return transitionDoneMsg{}
	})
}

// deferredScrollCmd scrolls the transcript on the next event-loop pass.
func deferredScrollCmd() tea.Cmd {
	return tea.Tick(0, func(time.Time) tea.Msg {
		return scrollMsg{}
	})
}
