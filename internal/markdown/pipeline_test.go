// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	r, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewPipeline(r, nil)
}

// =============================================================================
// INCOMING RENDERING
// =============================================================================

func TestRenderIncoming_Markdown(t *testing.T) {
	p := newTestPipeline(t)

	tests := []struct {
		name     string
		source   string
		contains []string
	}{
		{
			name:     "bold",
			source:   "Hi **there**",
			contains: []string{"<strong>there</strong>"},
		},
		{
			name:     "single newline becomes line break",
			source:   "line one\nline two",
			contains: []string{"<br"},
		},
		{
			name:     "fenced code",
			source:   "```\ncode here\n```",
			contains: []string{"<pre>", "code here"},
		},
		{
			name:     "table syntax",
			source:   "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.RenderIncoming(tc.source)
			for _, want := range tc.contains {
				if !strings.Contains(got, want) {
					t.Errorf("RenderIncoming(%q) = %q, want to contain %q", tc.source, got, want)
				}
			}
		})
	}
}

func TestRenderIncoming_AnchorsHardened(t *testing.T) {
	p := newTestPipeline(t)

	sources := []string{
		"[click me](https://example.com)",
		"visit https://example.com today",
		"two links: [a](https://a.example) and [b](https://b.example)",
	}

	for _, source := range sources {
		got := p.RenderIncoming(source)

		openTags := strings.Count(got, "<a ")
		if openTags == 0 {
			t.Fatalf("expected anchors in %q", got)
		}
		if n := strings.Count(got, `target="_blank"`); n != openTags {
			t.Errorf("%d of %d anchors carry target=_blank in %q", n, openTags, got)
		}
		if n := strings.Count(got, `rel="noopener noreferrer"`); n != openTags {
			t.Errorf("%d of %d anchors carry rel=noopener-noreferrer in %q", n, openTags, got)
		}
	}
}

func TestHardenAnchors_RawHTML(t *testing.T) {
	got := HardenAnchors(`<p><a href="https://example.com">x</a></p>`)
	if !strings.Contains(got, `target="_blank" rel="noopener noreferrer"`) {
		t.Errorf("HardenAnchors left anchor unhardened: %q", got)
	}
}

// =============================================================================
// OUTGOING RENDERING
// =============================================================================

func TestRenderOutgoing_EscapesMarkup(t *testing.T) {
	p := newTestPipeline(t)

	got := p.RenderOutgoing(`<script>alert("hi")</script> & <b>bold</b>`)

	if strings.Contains(got, "<script>") || strings.Contains(got, "<b>") {
		t.Errorf("outgoing text must not carry interpreted markup: %q", got)
	}
	for _, want := range []string{"&lt;script&gt;", "&amp;"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderOutgoing = %q, want to contain %q", got, want)
		}
	}
}

func TestRenderOutgoing_MarkdownStaysLiteral(t *testing.T) {
	p := newTestPipeline(t)

	got := p.RenderOutgoing("Hi **there**")
	if strings.Contains(got, "<strong>") {
		t.Errorf("user markdown must not be interpreted: %q", got)
	}
	if !strings.Contains(got, "Hi **there**") {
		t.Errorf("literal text missing from %q", got)
	}
}

// =============================================================================
// DEGRADED MODES
// =============================================================================

type brokenRenderer struct{}

func (brokenRenderer) Render(string) (string, error) { return "", errors.New("render exploded") }

func TestRenderIncoming_NilRendererFallsBack(t *testing.T) {
	p := NewPipeline(nil, nil)

	got := p.RenderIncoming("Hi **there** <b>x</b>")
	if strings.Contains(got, "<strong>") || strings.Contains(got, "<b>") {
		t.Errorf("nil renderer should degrade to escaped literal text: %q", got)
	}
}

func TestRenderIncoming_RendererErrorFallsBack(t *testing.T) {
	p := NewPipeline(brokenRenderer{}, nil)

	got := p.RenderIncoming("**bold**")
	if !strings.Contains(got, "**bold**") {
		t.Errorf("renderer failure should yield literal text, got %q", got)
	}
}

func TestLoad_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx); err == nil {
		t.Error("Load with cancelled context should fail")
	}
}

// =============================================================================
// TIMESTAMPS
// =============================================================================

func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 5, 42, 0, time.Local)
	if got := FormatTimestamp(at); got != "09:05" {
		t.Errorf("FormatTimestamp = %q, want 09:05", got)
	}
}
