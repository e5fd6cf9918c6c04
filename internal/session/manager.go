// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"io"
	"log"
	"sync"
	"time"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager owns session identity and its time-based expiry for one store.
//
// Every failure mode fails open: an unreadable or unparsable record is
// treated as "no session" and triggers creation, and a failed persist is
// logged but still yields a usable in-memory session. The manager never
// returns an error to callers.
type Manager struct {
	mu     sync.Mutex
	store  Store
	ttl    time.Duration
	logger *log.Logger

	// now is swappable for tests.
	now func() time.Time
}

// Config holds configuration for the session manager.
type Config struct {
	// TTL is the session validity window (default: one hour).
	TTL time.Duration

	// Logger receives fail-open warnings. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{TTL: DefaultTTL}
}

// NewManager creates a session manager over the given store.
func NewManager(store Store, cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		store:  store,
		ttl:    cfg.TTL,
		logger: logger,
		now:    time.Now,
	}
}

// TTL returns the configured validity window.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// =============================================================================
// SESSION LIFECYCLE
// =============================================================================

// GetOrCreate returns the persisted session for widgetID if it is still
// inside its validity window, otherwise creates, persists, and returns a
// fresh one.
func (m *Manager) GetOrCreate(widgetID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getOrCreateLocked(widgetID)
}

// EnsureFresh re-validates the session immediately before an outgoing
// message, rotating it when the window has lapsed. Idempotent: repeated
// calls within the validity window return the same session.
func (m *Manager) EnsureFresh(widgetID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getOrCreateLocked(widgetID)
}

func (m *Manager) getOrCreateLocked(widgetID string) Session {
	now := m.now()

	if sess, ok := m.readStored(widgetID); ok && sess.ValidAt(now, m.ttl) {
		return sess
	}
	return m.createLocked(widgetID, now)
}

// readStored loads and parses the persisted record for widgetID. Any read or
// parse failure is reported as absence.
func (m *Manager) readStored(widgetID string) (Session, bool) {
	data, ok, err := m.store.Get(storageKey(widgetID))
	if err != nil {
		m.logger.Printf("warning: session store read failed for %q: %v", widgetID, err)
		return Session{}, false
	}
	if !ok {
		return Session{}, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		m.logger.Printf("warning: discarding unparsable session record for %q: %v", widgetID, err)
		return Session{}, false
	}
	if rec.SessionID == "" {
		return Session{}, false
	}

	return Session{
		ID:        rec.SessionID,
		WidgetID:  widgetID,
		CreatedAt: time.UnixMilli(rec.Timestamp),
	}, true
}

// createLocked mints a new session and persists it best-effort.
func (m *Manager) createLocked(widgetID string, now time.Time) Session {
	sess := Session{
		ID:        newSessionID(widgetID, now),
		WidgetID:  widgetID,
		CreatedAt: now,
	}

	data, err := json.Marshal(record{
		SessionID: sess.ID,
		Timestamp: now.UnixMilli(),
	})
	if err == nil {
		err = m.store.Put(storageKey(widgetID), data)
	}
	if err != nil {
		// The session is still usable for this mount; it just won't
		// survive a remount.
		m.logger.Printf("warning: failed to persist session for %q: %v", widgetID, err)
	}

	return sess
}
