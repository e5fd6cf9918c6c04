// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Bot"
	default:
		return string(s)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single unit of conversation.
//
// Text is the source content as submitted or received. RenderedHTML is the
// HTML-safe rendered form produced by the message pipeline: user messages are
// escaped literal text, bot messages are rendered markdown with hardened
// anchors. Messages are never edited after creation.
type Message struct {
	ID           string    `json:"id"`
	Sender       Sender    `json:"sender"`
	Text         string    `json:"text"`
	RenderedHTML string    `json:"rendered_html"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(sender Sender, text, renderedHTML string) *Message {
	return &Message{
		ID:           generateID(),
		Sender:       sender,
		Text:         text,
		RenderedHTML: renderedHTML,
		Timestamp:    time.Now(),
	}
}

// NewUserMessage creates a message submitted by the user.
func NewUserMessage(text, renderedHTML string) *Message {
	return NewMessage(SenderUser, text, renderedHTML)
}

// NewBotMessage creates a message received from the answer service.
func NewBotMessage(text, renderedHTML string) *Message {
	return NewMessage(SenderBot, text, renderedHTML)
}

// IsBot reports whether the message came from the answer service.
func (m *Message) IsBot() bool {
	return m.Sender == SenderBot
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
