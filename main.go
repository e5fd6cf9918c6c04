// chatbubble - An embeddable chat widget for terminal applications.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbubble/internal/config"
	"github.com/jeranaias/chatbubble/internal/export"
	"github.com/jeranaias/chatbubble/internal/session"
	"github.com/jeranaias/chatbubble/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		botID      = flag.String("bot", "", "widget identity (overrides config)")
		exportDir  = flag.String("export", "", "export the transcript to this directory on exit")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Printf("chatbubble %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if err := run(*configPath, *botID, *exportDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, botID, exportDir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if botID != "" {
		cfg.BotID = botID
	}

	store, cleanup, err := openStore(cfg.Session)
	if err != nil {
		return err
	}
	defer cleanup()

	logger := log.New(os.Stderr, "chatbubble: ", log.LstdFlags)

	shell, err := ui.Mount(context.Background(), ui.Options{
		BotID:           cfg.BotID,
		APIEndpoint:     cfg.API.Endpoint,
		BackendEndpoint: cfg.Backend.Endpoint,
		SessionTTL:      cfg.Session.TTL(),
		RequestTimeout:  cfg.API.Timeout(),
		Store:           store,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(shell, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run widget: %w", err)
	}

	if exportDir != "" {
		return exportTranscript(shell, exportDir)
	}
	return nil
}

// openStore builds the configured session store. The cleanup closes any
// underlying handle.
func openStore(cfg config.SessionConfig) (session.Store, func(), error) {
	switch cfg.Store {
	case "memory":
		return session.NewMemoryStore(), func() {}, nil
	case "file":
		return session.NewFileStore(cfg.Path), func() {}, nil
	case "sqlite":
		store, err := session.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open session store: %w", err)
		}
		return store, func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// exportTranscript writes the finished conversation as HTML.
func exportTranscript(shell *ui.Shell, dir string) error {
	controller := shell.Controller()
	conv := &export.Conversation{
		BotID:    controller.BotID(),
		Title:    shell.Theme().Name,
		Theme:    shell.Theme(),
		Messages: controller.Transcript().Messages(),
	}

	path, err := export.ExportToFile(conv, export.NewHTMLExporter(nil), &export.Options{
		OutputDir:         dir,
		IncludeTimestamps: true,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Transcript exported to %s\n", path)
	return nil
}
