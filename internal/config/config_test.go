// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BotID != "default" {
		t.Errorf("BotID = %q", cfg.BotID)
	}
	if cfg.Session.TTL() != time.Hour {
		t.Errorf("TTL = %v, want 1h", cfg.Session.TTL())
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.API.Timeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
bot_id = "acme"

[api]
endpoint = "https://api.example.com"

[session]
ttl_minutes = 30
store = "memory"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BotID != "acme" {
		t.Errorf("BotID = %q", cfg.BotID)
	}
	if cfg.API.Endpoint != "https://api.example.com" {
		t.Errorf("API.Endpoint = %q", cfg.API.Endpoint)
	}
	if cfg.Session.TTL() != 30*time.Minute {
		t.Errorf("TTL = %v", cfg.Session.TTL())
	}
	// Keys absent from the file keep defaults.
	if cfg.Backend.Endpoint != "" {
		t.Errorf("Backend.Endpoint = %q, want default", cfg.Backend.Endpoint)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`bot_id = "from-file"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHATBUBBLE_BOT_ID", "from-env")
	t.Setenv("CHATBUBBLE_SESSION_STORE", "memory")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BotID != "from-env" {
		t.Errorf("BotID = %q, want env override", cfg.BotID)
	}
	if cfg.Session.Store != "memory" {
		t.Errorf("Store = %q", cfg.Session.Store)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty bot id", func(c *Config) { c.BotID = " " }, true},
		{"bad api scheme", func(c *Config) { c.API.Endpoint = "ftp://x.com" }, true},
		{"hostless backend", func(c *Config) { c.Backend.Endpoint = "https://" }, true},
		{"negative ttl", func(c *Config) { c.Session.TTLMinutes = -1 }, true},
		{"negative timeout", func(c *Config) { c.API.TimeoutSeconds = -1 }, true},
		{"unknown store", func(c *Config) { c.Session.Store = "redis" }, true},
		{"file store without path", func(c *Config) { c.Session.Path = "" }, true},
		{"memory store without path", func(c *Config) { c.Session.Store = "memory"; c.Session.Path = "" }, false},
		{"sqlite store", func(c *Config) { c.Session.Store = "sqlite"; c.Session.Path = "s.db" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
