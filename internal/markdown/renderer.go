// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"context"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// =============================================================================
// RENDERER CAPABILITY
// =============================================================================

// Renderer is the text-formatting capability the pipeline depends on.
// Implementations convert markdown source to HTML; the pipeline applies its
// own safety post-processing on top.
type Renderer interface {
	Render(source string) (string, error)
}

// Load performs the explicit initialization step for the default renderer.
// It is the seam where a host could swap in a different formatting
// capability; loading respects context cancellation but otherwise cannot
// fail for the built-in implementation.
func Load(ctx context.Context) (Renderer, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return gomarkdownRenderer{}, nil
}

// =============================================================================
// GOMARKDOWN RENDERER
// =============================================================================

// gomarkdownRenderer renders with single-newline line breaks and the common
// extended syntax set (tables, fenced code, autolinks, strikethrough).
type gomarkdownRenderer struct{}

// Render implements Renderer. A parser instance is single-use in gomarkdown,
// so one is built per call.
func (gomarkdownRenderer) Render(source string) (string, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return string(markdown.ToHTML([]byte(source), p, r)), nil
}
