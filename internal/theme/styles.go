// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// TERMINAL STYLES
// =============================================================================

// Styles holds the lipgloss styles the shell renders the widget with,
// derived from a resolved Config. Like the Config, styles are built once at
// mount and never change.
type Styles struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Chrome
	Panel       lipgloss.Style
	PanelFading lipgloss.Style
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	EnvTag      lipgloss.Style

	// Messages
	UserBubble lipgloss.Style
	BotBubble  lipgloss.Style
	Timestamp  lipgloss.Style

	// Pending indicator
	TypingDots lipgloss.Style

	// Suggestions
	Suggestion        lipgloss.Style
	SuggestionFocused lipgloss.Style

	// Input area
	InputBox lipgloss.Style

	// Footer and closed-state bubble
	PoweredBy    lipgloss.Style
	ToggleBubble lipgloss.Style
}

// NewStyles derives terminal styles from a resolved theme configuration.
func NewStyles(cfg Config) *Styles {
	primary := lipgloss.Color(cfg.PrimaryColor)
	senderBg := lipgloss.Color(cfg.SenderBackgroundColor)
	senderFg := lipgloss.Color(cfg.SenderTextColor)
	receiverBg := lipgloss.Color(cfg.ReceiverBackground)
	receiverFg := lipgloss.Color(cfg.ReceiverTextColor)

	s := &Styles{
		IsDark:       termenv.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
	}

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)

	// Shown while the open/close transition is playing.
	s.PanelFading = s.Panel.
		BorderForeground(lipgloss.Color("240")).
		Faint(true)

	s.Header = lipgloss.NewStyle().
		Background(primary).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1)

	s.HeaderTitle = lipgloss.NewStyle().Bold(true)

	s.EnvTag = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Faint(true)

	s.UserBubble = lipgloss.NewStyle().
		Background(senderBg).
		Foreground(senderFg).
		Padding(0, 1).
		Align(lipgloss.Right)

	s.BotBubble = lipgloss.NewStyle().
		Background(receiverBg).
		Foreground(receiverFg).
		Padding(0, 1)

	s.Timestamp = lipgloss.NewStyle().Faint(true)

	s.TypingDots = lipgloss.NewStyle().Foreground(primary)

	s.Suggestion = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Foreground(primary).
		Padding(0, 1)

	s.SuggestionFocused = s.Suggestion.
		Background(primary).
		Foreground(lipgloss.Color("#ffffff"))

	s.InputBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color("240"))

	s.PoweredBy = lipgloss.NewStyle().
		Foreground(primary).
		Faint(true).
		Align(lipgloss.Center)

	s.ToggleBubble = lipgloss.NewStyle().
		Background(primary).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 2).
		Bold(true)

	return s
}
