// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"html"
	"log"
	"strings"
	"time"
)

// =============================================================================
// MESSAGE PIPELINE
// =============================================================================

// Pipeline converts raw message text into its rendered form. A nil renderer
// (the formatting capability failed to load) degrades bot messages to
// escaped literal text instead of preventing the widget from mounting.
type Pipeline struct {
	renderer Renderer
	logger   *log.Logger
}

// NewPipeline creates a pipeline over the given renderer. renderer may be
// nil; logger may be nil to discard warnings.
func NewPipeline(renderer Renderer, logger *log.Logger) *Pipeline {
	return &Pipeline{renderer: renderer, logger: logger}
}

// RenderIncoming renders bot markdown to HTML and hardens every anchor so
// rendered links open in a new context with no opener back-reference.
func (p *Pipeline) RenderIncoming(raw string) string {
	if p.renderer == nil {
		return p.RenderOutgoing(raw)
	}

	rendered, err := p.renderer.Render(raw)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("warning: markdown render failed, falling back to plain text: %v", err)
		}
		return p.RenderOutgoing(raw)
	}
	return HardenAnchors(rendered)
}

// RenderOutgoing returns the user's text as escaped literal content. No
// markup in the input is ever interpreted.
func (p *Pipeline) RenderOutgoing(raw string) string {
	return "<p>" + html.EscapeString(raw) + "</p>"
}

// HardenAnchors rewrites every anchor tag to carry target="_blank" and
// rel="noopener noreferrer", regardless of what the source markup declared.
func HardenAnchors(rendered string) string {
	return strings.ReplaceAll(rendered, "<a ", `<a target="_blank" rel="noopener noreferrer" `)
}

// FormatTimestamp formats a message time for display: localized hour and
// minute, no seconds, no date.
func FormatTimestamp(t time.Time) string {
	return t.Format("15:04")
}
