// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbubble/internal/widget"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update implements tea.Model.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.resizeViewport()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)

	case chatResponseMsg:
		s.controller.Complete(msg.resp, msg.err)
		s.focusIndex = noSuggestion
		s.refreshTranscript()
		return s, deferredScrollCmd()

	case scrollMsg:
		s.viewport.GotoBottom()
		return s, nil

	case transitionDoneMsg:
		state := s.visibility.FinishTransition()
		if state == widget.StateOpen {
			s.refreshTranscript()
			s.viewport.GotoBottom()
			s.input.Focus()
		}
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

// handleKey routes keyboard input by visibility state: global shortcuts
// always apply, everything else only reaches an open widget.
func (s *Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keyMap.Quit):
		return s, tea.Quit

	case key.Matches(msg, s.keyMap.Toggle):
		if _, ok := s.visibility.Toggle(); ok {
			s.input.Blur()
			return s, finishTransitionCmd()
		}
		return s, nil

	case key.Matches(msg, s.keyMap.Minimize):
		s.visibility.ToggleMinimize()
		return s, nil
	}

	if s.visibility.State() != widget.StateOpen {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keyMap.CycleFocus):
		s.cycleFocus()
		return s, nil

	case key.Matches(msg, s.keyMap.Submit):
		return s, s.submit()

	case key.Matches(msg, s.keyMap.ScrollUp):
		s.viewport.HalfViewUp()
		return s, nil

	case key.Matches(msg, s.keyMap.ScrollDown):
		s.viewport.HalfViewDown()
		return s, nil
	}

	if s.focusIndex == noSuggestion {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit dispatches either the focused suggestion or the typed input.
func (s *Shell) submit() tea.Cmd {
	var (
		ex widget.Exchange
		ok bool
	)

	if i := s.focusIndex; i != noSuggestion {
		suggestions := s.controller.Suggestions()
		if i < 0 || i >= len(suggestions) {
			s.focusIndex = noSuggestion
			return nil
		}
		ex, ok = s.controller.SelectSuggestion(suggestions[i])
	} else {
		ex, ok = s.controller.Submit(s.input.Value())
	}

	if !ok {
		return nil
	}

	s.input.Reset()
	s.focusIndex = noSuggestion
	s.refreshTranscript()
	s.viewport.GotoBottom()

	return askCmd(s.client, s.controller.BotID(), ex, s.reqTimeout)
}

// cycleFocus moves focus input -> chip 0 -> chip 1 -> ... -> input.
func (s *Shell) cycleFocus() {
	n := len(s.controller.Suggestions())
	if n == 0 {
		s.focusIndex = noSuggestion
		s.input.Focus()
		return
	}

	s.focusIndex++
	if s.focusIndex >= n {
		s.focusIndex = noSuggestion
		s.input.Focus()
		return
	}
	s.input.Blur()
}

func (s *Shell) resizeViewport() {
	w := panelWidth - 4
	if s.width > 0 && s.width < panelWidth {
		w = s.width - 4
	}
	h := s.height - 10
	if h < minPanelHeight-8 {
		h = minPanelHeight - 8
	}
	s.viewport.Width = w
	s.viewport.Height = h
	s.refreshTranscript()
}
