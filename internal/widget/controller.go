// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"io"
	"log"
	"strings"
	"sync"

	"github.com/jeranaias/chatbubble/internal/backend"
	"github.com/jeranaias/chatbubble/internal/markdown"
	"github.com/jeranaias/chatbubble/internal/model"
	"github.com/jeranaias/chatbubble/internal/session"
)

// =============================================================================
// CONVERSATION CONTROLLER
// =============================================================================

// FallbackAnswer is appended as a bot message when an exchange fails. The
// failure itself is absorbed; it never reaches the host.
const FallbackAnswer = "Sorry, I encountered an error. Please try again later."

// Controller orchestrates one request/response exchange at a time:
// idle -> awaiting-response -> idle. It validates input, refreshes the
// session, appends messages through the pipeline, and swaps the suggestion
// set on each response.
//
// Submissions are guarded by a single in-flight slot: a Submit while a
// previous exchange is still awaiting its response is rejected.
type Controller struct {
	mu sync.Mutex

	botID    string
	sessions *session.Manager
	pipeline *markdown.Pipeline
	logger   *log.Logger

	transcript  *model.Transcript
	suggestions []string
	awaiting    bool
}

// NewController wires the conversation controller to its collaborators.
// logger may be nil to discard warnings.
func NewController(botID string, sessions *session.Manager, pipeline *markdown.Pipeline, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		botID:      botID,
		sessions:   sessions,
		pipeline:   pipeline,
		logger:     logger,
		transcript: model.NewTranscript(),
	}
}

// Exchange describes one accepted submission, ready to be sent to the
// answer service.
type Exchange struct {
	Question  string
	SessionID string
}

// =============================================================================
// SUBMISSION
// =============================================================================

// Submit starts a message exchange. It trims the input, rejects empty or
// concurrent submissions, refreshes the session, optimistically appends the
// user message, and clears the now-stale suggestion set. The returned
// Exchange carries what the transport layer must send; the caller completes
// the cycle with Complete.
func (c *Controller) Submit(raw string) (Exchange, bool) {
	question := strings.TrimSpace(raw)
	if question == "" {
		return Exchange{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.awaiting {
		return Exchange{}, false
	}

	sess := c.sessions.EnsureFresh(c.botID)

	c.transcript.Append(model.NewUserMessage(question, c.pipeline.RenderOutgoing(question)))
	c.suggestions = nil
	c.awaiting = true

	return Exchange{Question: question, SessionID: sess.ID}, true
}

// SelectSuggestion submits a follow-up prompt exactly as if the user had
// typed it: same validation, same session refresh, same failure handling.
func (c *Controller) SelectSuggestion(text string) (Exchange, bool) {
	return c.Submit(text)
}

// Complete finishes the exchange started by Submit. On success the answer is
// rendered through the incoming pipeline and the suggestion set is replaced
// wholesale by the response's follow-ups. On failure a single fallback bot
// message is appended, suggestions are cleared, and the error goes no
// further.
func (c *Controller) Complete(resp *backend.ChatResponse, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.awaiting = false

	if err != nil || resp == nil {
		c.logger.Printf("warning: chat exchange failed: %v", err)
		c.transcript.Append(model.NewBotMessage(FallbackAnswer, c.pipeline.RenderIncoming(FallbackAnswer)))
		c.suggestions = nil
		return
	}

	c.transcript.Append(model.NewBotMessage(resp.Answer, c.pipeline.RenderIncoming(resp.Answer)))

	if len(resp.Questions) == 0 {
		c.suggestions = nil
		return
	}
	c.suggestions = append([]string(nil), resp.Questions...)
}

// SeedWelcome appends the theme's welcome text as the opening bot message.
// Called once by the shell while mounting.
func (c *Controller) SeedWelcome(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript.Append(model.NewBotMessage(text, c.pipeline.RenderIncoming(text)))
}

// =============================================================================
// STATE ACCESSORS
// =============================================================================

// Awaiting reports whether an exchange is in flight (the pending-indicator
// condition).
func (c *Controller) Awaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.awaiting
}

// Suggestions returns the current follow-up prompts in order.
func (c *Controller) Suggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.suggestions...)
}

// Transcript exposes the conversation for rendering and export.
func (c *Controller) Transcript() *model.Transcript {
	return c.transcript
}

// BotID returns the widget identity this controller converses as.
func (c *Controller) BotID() string {
	return c.botID
}
