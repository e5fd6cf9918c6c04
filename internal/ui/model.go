// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/chatbubble/internal/backend"
	"github.com/jeranaias/chatbubble/internal/markdown"
	"github.com/jeranaias/chatbubble/internal/session"
	"github.com/jeranaias/chatbubble/internal/theme"
	"github.com/jeranaias/chatbubble/internal/widget"
)

// Panel geometry. The widget floats over the host, so it claims a fixed
// fraction of the terminal rather than the whole screen.
const (
	panelWidth      = 46
	minPanelHeight  = 16
	inputCharLimit  = 500
	noSuggestion    = -1 // focusIndex value meaning the input field has focus
	mountTimeout    = 15 * time.Second
	defaultBotTitle = "Chat Support"
)

// =============================================================================
// SHELL OPTIONS
// =============================================================================

// Options configures a widget mount. Zero values select production defaults.
type Options struct {
	// BotID identifies the widget instance; it scopes session persistence
	// and theme resolution.
	BotID string

	// APIEndpoint overrides the answer service base URL.
	APIEndpoint string

	// BackendEndpoint overrides the style-configuration service base URL.
	BackendEndpoint string

	// SessionTTL overrides the session validity window.
	SessionTTL time.Duration

	// RequestTimeout bounds one exchange request. Zero selects the client
	// default.
	RequestTimeout time.Duration

	// Store persists sessions across mounts. Nil selects an in-memory
	// store.
	Store session.Store

	// Logger receives degradation warnings. Nil discards them.
	Logger *log.Logger
}

// =============================================================================
// SHELL MODEL
// =============================================================================

// Shell is the Bubble Tea model for the widget: the conversation controller
// and visibility machine plus the terminal components that present them.
type Shell struct {
	controller *widget.Controller
	visibility *widget.Visibility
	client     *backend.Client
	reqTimeout time.Duration

	themeCfg theme.Config
	styles   *theme.Styles

	// mdRenderer renders bot markdown for terminal display. Nil degrades
	// to plain text.
	mdRenderer *glamour.TermRenderer

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	keyMap   KeyMap

	width  int
	height int

	// focusIndex is the focused suggestion chip, or noSuggestion when the
	// input field has focus.
	focusIndex int

	logger *log.Logger
}

// Mount assembles the widget against its remote services and returns a shell
// ready to hand to a Bubble Tea program. Theme resolution and the formatting
// capability both degrade rather than fail: an unreachable style service
// yields the default theme, a failed renderer yields plain-text messages.
// Only an empty BotID is a hard error.
func Mount(ctx context.Context, opts Options) (*Shell, error) {
	if opts.BotID == "" {
		return nil, fmt.Errorf("mount widget: BotID is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ctx, cancel := context.WithTimeout(ctx, mountTimeout)
	defer cancel()

	store := opts.Store
	if store == nil {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, session.Config{
		TTL:    opts.SessionTTL,
		Logger: logger,
	})

	renderer, err := markdown.Load(ctx)
	if err != nil {
		logger.Printf("warning: markdown renderer unavailable, using plain text: %v", err)
		renderer = nil
	}
	pipeline := markdown.NewPipeline(renderer, logger)

	controller := widget.NewController(opts.BotID, sessions, pipeline, logger)

	cfg := theme.NewResolver(opts.BackendEndpoint, logger).Resolve(ctx, opts.BotID)
	controller.SeedWelcome(cfg.WelcomeMessage)

	// Establish the session eagerly so a still-valid one is reused before
	// the first message refreshes it.
	sessions.GetOrCreate(opts.BotID)

	reqTimeout := opts.RequestTimeout
	if reqTimeout <= 0 {
		reqTimeout = backend.DefaultTimeout
	}

	s := &Shell{
		controller: controller,
		visibility: widget.NewVisibility(),
		client:     backend.NewClient(opts.APIEndpoint),
		reqTimeout: reqTimeout,
		themeCfg:   cfg,
		styles:     theme.NewStyles(cfg),
		keyMap:     DefaultKeyMap(),
		focusIndex: noSuggestion,
		logger:     logger,
	}

	s.mdRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(panelWidth-6),
	)
	if err != nil {
		logger.Printf("warning: terminal markdown styling unavailable: %v", err)
		s.mdRenderer = nil
	}

	s.input = textinput.New()
	s.input.Placeholder = "Type your message..."
	s.input.CharLimit = inputCharLimit
	s.input.Width = panelWidth - 6

	s.spinner = spinner.New()
	s.spinner.Spinner = spinner.Dot
	s.spinner.Style = s.styles.TypingDots

	s.viewport = viewport.New(panelWidth-4, minPanelHeight-8)

	return s, nil
}

// Init implements tea.Model.
func (s *Shell) Init() tea.Cmd {
	return s.spinner.Tick
}

// Controller exposes the conversation state, e.g. for transcript export.
func (s *Shell) Controller() *widget.Controller {
	return s.controller
}

// Theme returns the resolved theme configuration.
func (s *Shell) Theme() theme.Config {
	return s.themeCfg
}
