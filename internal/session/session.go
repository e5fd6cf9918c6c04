// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION TYPE
// =============================================================================

// DefaultTTL is how long a session stays valid after creation.
const DefaultTTL = time.Hour

// Session is one conversational identity tied to a widget instance.
type Session struct {
	ID        string
	WidgetID  string
	CreatedAt time.Time
}

// ValidAt reports whether the session is still inside its validity window.
func (s Session) ValidAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) < ttl
}

// =============================================================================
// PERSISTED RECORD
// =============================================================================

// record is the stored session shape: an opaque id plus a millisecond epoch
// creation timestamp, keyed by "chatbot_session_<widgetID>".
type record struct {
	SessionID string `json:"sessionId"`
	Timestamp int64  `json:"timestamp"`
}

// storageKey returns the store key for a widget's session record.
func storageKey(widgetID string) string {
	return "chatbot_session_" + widgetID
}

// newSessionID derives a fresh opaque identifier from the widget id, the
// current time, and a random suffix to avoid collisions across tabs.
func newSessionID(widgetID string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "session-" + widgetID + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
