// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jeranaias/chatbubble/internal/markdown"
	"github.com/jeranaias/chatbubble/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports conversations to HTML with embedded CSS derived from
// the widget's theme. Message bodies are emitted from their pipeline-rendered
// form, so bot markdown arrives as markup and user text arrives escaped.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a conversation to HTML format.
func (e *HTMLExporter) Export(conv *Conversation) ([]byte, error) {
	if err := validate(conv); err != nil {
		return nil, err
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(e.title(conv))))
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", time.Now().Format(time.RFC3339)))
	sb.WriteString(e.getCSS(conv))
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
	sb.WriteString("    <div class=\"container\">\n")

	sb.WriteString("        <header class=\"header\">\n")
	sb.WriteString(fmt.Sprintf("            <h1>%s</h1>\n", html.EscapeString(e.title(conv))))
	sb.WriteString("        </header>\n")

	sb.WriteString("        <main class=\"conversation\">\n")
	for _, msg := range conv.Messages {
		sb.WriteString(e.renderMessage(msg))
	}
	sb.WriteString("        </main>\n")

	if conv.Theme.ShowPoweredBy && conv.Theme.PoweredByMessage != "" {
		sb.WriteString("        <footer class=\"footer\">\n")
		sb.WriteString(fmt.Sprintf("            <p>%s</p>\n", html.EscapeString(conv.Theme.PoweredByMessage)))
		sb.WriteString("        </footer>\n")
	}

	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// =============================================================================
// RENDERING FUNCTIONS
// =============================================================================

// renderMessage renders one message bubble. RenderedHTML is trusted markup
// produced by the message pipeline; it is emitted as-is.
func (e *HTMLExporter) renderMessage(msg *model.Message) string {
	var sb strings.Builder

	class := "bot"
	if msg.Sender == model.SenderUser {
		class = "user"
	}

	sb.WriteString(fmt.Sprintf("            <div class=\"message %s\">\n", class))
	sb.WriteString(fmt.Sprintf("                <div class=\"sender\">%s</div>\n",
		html.EscapeString(msg.Sender.DisplayName())))
	sb.WriteString(fmt.Sprintf("                <div class=\"bubble\">%s</div>\n", msg.RenderedHTML))
	if e.options.IncludeTimestamps {
		sb.WriteString(fmt.Sprintf("                <div class=\"timestamp\">%s</div>\n",
			markdown.FormatTimestamp(msg.Timestamp)))
	}
	sb.WriteString("            </div>\n")

	return sb.String()
}

// getCSS emits the embedded stylesheet, colored from the widget theme.
func (e *HTMLExporter) getCSS(conv *Conversation) string {
	t := conv.Theme
	return fmt.Sprintf(`    <style>
        body {
            font-family: %s;
            background: %s;
            margin: 0;
        }
        .container { max-width: 640px; margin: 0 auto; padding: 16px; }
        .header h1 { color: %s; }
        .message { margin: 12px 0; }
        .message.user { text-align: right; }
        .message .sender { font-size: 12px; opacity: 0.7; }
        .message .bubble {
            display: inline-block;
            padding: 8px 12px;
            border-radius: 12px;
            text-align: left;
        }
        .message.user .bubble { background: %s; color: %s; }
        .message.bot .bubble { background: %s; color: %s; }
        .message .timestamp { font-size: 11px; opacity: 0.5; }
        .footer { text-align: center; font-size: 12px; opacity: 0.6; }
    </style>
`,
		t.ReceiverFont,
		t.ChatBackground,
		t.PrimaryColor,
		t.SenderBackgroundColor, t.SenderTextColor,
		t.ReceiverBackground, t.ReceiverTextColor,
	)
}

func (e *HTMLExporter) title(conv *Conversation) string {
	if conv.Title != "" {
		return conv.Title
	}
	return "Chat Transcript"
}
