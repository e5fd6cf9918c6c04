// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/chatbubble/internal/markdown"
	"github.com/jeranaias/chatbubble/internal/model"
	"github.com/jeranaias/chatbubble/internal/util"
	"github.com/jeranaias/chatbubble/internal/widget"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (s *Shell) View() string {
	switch s.visibility.State() {
	case widget.StateClosed:
		return s.viewClosed()
	case widget.StateOpening, widget.StateClosing:
		return s.viewTransitioning()
	default:
		return s.viewOpen()
	}
}

// viewClosed shows only the toggle bubble, the widget's footprint on the
// host while closed.
func (s *Shell) viewClosed() string {
	bubble := s.styles.ToggleBubble.Render("💬 " + s.title())
	hint := s.styles.Timestamp.Render("ctrl+t to open")
	return lipgloss.JoinVertical(lipgloss.Left, bubble, hint)
}

// viewTransitioning shows the faded panel frame while the open/close
// transition plays.
func (s *Shell) viewTransitioning() string {
	label := "opening..."
	if s.visibility.State() == widget.StateClosing {
		label = "closing..."
	}
	body := lipgloss.Place(panelWidth-4, 3, lipgloss.Center, lipgloss.Center, label)
	return s.styles.PanelFading.Render(body)
}

// viewOpen renders the full panel, or just its header when minimized.
func (s *Shell) viewOpen() string {
	header := s.viewHeader()

	if s.visibility.Density() == widget.DensityMinimized {
		sections := []string{header}
		if last := s.controller.Transcript().Last(); last != nil {
			sections = append(sections,
				s.styles.Timestamp.Render(last.Preview(panelWidth-8)))
		}
		return s.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	sections := []string{
		header,
		s.viewport.View(),
	}
	if s.controller.Awaiting() {
		sections = append(sections, s.spinner.View()+s.styles.TypingDots.Render(" typing..."))
	}
	if chips := s.viewSuggestions(); chips != "" {
		sections = append(sections, chips)
	}
	sections = append(sections, s.styles.InputBox.Render(s.input.View()))
	if s.themeCfg.ShowPoweredBy {
		sections = append(sections, s.styles.PoweredBy.Render(s.themeCfg.PoweredByMessage))
	}

	return s.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (s *Shell) viewHeader() string {
	title := s.styles.HeaderTitle.Render(util.Truncate(s.title(), panelWidth-12))
	if env := s.themeCfg.Environment; env != "" {
		title += " " + s.styles.EnvTag.Render("["+env+"]")
	}
	return s.styles.Header.Width(panelWidth - 4).Render(title)
}

// viewSuggestions lays the follow-up prompts out as chips, the focused one
// highlighted. Long prompts are truncated to keep one chip per line.
func (s *Shell) viewSuggestions() string {
	suggestions := s.controller.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	chips := make([]string, 0, len(suggestions))
	for i, text := range suggestions {
		label := runewidth.Truncate(text, panelWidth-10, "...")
		style := s.styles.Suggestion
		if i == s.focusIndex {
			style = s.styles.SuggestionFocused
		}
		chips = append(chips, style.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, chips...)
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshTranscript rebuilds the viewport content from the conversation.
func (s *Shell) refreshTranscript() {
	msgs := s.controller.Transcript().Messages()
	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		blocks = append(blocks, s.renderMessage(m))
	}
	s.viewport.SetContent(strings.Join(blocks, "\n"))
}

// renderMessage renders one bubble: sender and clock caption, then the body.
// Bot text goes through the terminal markdown renderer; user text is shown
// exactly as typed.
func (s *Shell) renderMessage(m *model.Message) string {
	caption := s.styles.Timestamp.Render(
		m.Sender.DisplayName() + " · " + markdown.FormatTimestamp(m.Timestamp))

	body := m.Text
	if m.Sender == model.SenderBot && s.mdRenderer != nil {
		if rendered, err := s.mdRenderer.Render(m.Text); err == nil {
			body = strings.TrimSpace(rendered)
		}
	}

	bubble := s.styles.BotBubble
	if m.Sender == model.SenderUser {
		bubble = s.styles.UserBubble
	}

	return lipgloss.JoinVertical(lipgloss.Left, caption, bubble.Render(body))
}

func (s *Shell) title() string {
	if s.themeCfg.Name != "" {
		return s.themeCfg.Name
	}
	return defaultBotTitle
}
