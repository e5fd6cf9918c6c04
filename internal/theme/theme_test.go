// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// MERGE TESTS
// =============================================================================

func TestMerge_RemoteWinsPerKey(t *testing.T) {
	raw := []byte(`{"name":"Acme Support","primaryColor":"#ff0000"}`)

	merged, err := Merge(Defaults(), raw)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if merged.Name != "Acme Support" {
		t.Errorf("Name = %q, want remote value", merged.Name)
	}
	if merged.PrimaryColor != "#ff0000" {
		t.Errorf("PrimaryColor = %q, want remote value", merged.PrimaryColor)
	}
	// Keys absent from the override keep their defaults.
	if merged.WelcomeMessage != Defaults().WelcomeMessage {
		t.Errorf("WelcomeMessage should keep default, got %q", merged.WelcomeMessage)
	}
	if !merged.ShowPoweredBy {
		t.Error("ShowPoweredBy should keep default true")
	}
}

func TestMerge_BooleanOverride(t *testing.T) {
	merged, err := Merge(Defaults(), []byte(`{"show_powered_by":false}`))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged.ShowPoweredBy {
		t.Error("remote false should override default true")
	}
}

func TestMerge_UnknownKeysIgnored(t *testing.T) {
	merged, err := Merge(Defaults(), []byte(`{"shiny_new_option":"x"}`))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged != Defaults() {
		t.Error("unknown keys should leave the configuration unchanged")
	}
}

func TestMerge_NotAnObject(t *testing.T) {
	if _, err := Merge(Defaults(), []byte(`[1,2,3]`)); err == nil {
		t.Error("array body should be rejected")
	}
	if _, err := Merge(Defaults(), []byte(`not json`)); err == nil {
		t.Error("junk body should be rejected")
	}
}

// =============================================================================
// RESOLVER TESTS
// =============================================================================

func TestResolve_AppliesOverride(t *testing.T) {
	var requestedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(`{"name":"Acme Support"}`))
	}))
	defer srv.Close()

	cfg := NewResolver(srv.URL, nil).Resolve(context.Background(), "widget-a")

	if requestedPath != "/assistants/get-styles/widget-a/" {
		t.Errorf("requested %q", requestedPath)
	}
	if cfg.Name != "Acme Support" {
		t.Errorf("Name = %q, want override applied", cfg.Name)
	}
	if cfg.PrimaryColor != Defaults().PrimaryColor {
		t.Error("untouched keys should keep defaults")
	}
}

func TestResolve_UnreachableEndpointIsIdempotent(t *testing.T) {
	// Closed server: every request fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	r := NewResolver(srv.URL, nil)
	first := r.Resolve(context.Background(), "widget-a")
	second := r.Resolve(context.Background(), "widget-a")

	if first != Defaults() {
		t.Error("unreachable endpoint should yield defaults")
	}
	if first != second {
		t.Error("resolving twice should yield identical defaults")
	}
}

func TestResolve_FailuresFallBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"name":`))
		}},
		{"non-object body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"just a string"`))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			cfg := NewResolver(srv.URL, nil).Resolve(context.Background(), "widget-a")
			if cfg != Defaults() {
				t.Error("failure should yield defaults unchanged")
			}
		})
	}
}

func TestResolve_SingleAttempt(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	NewResolver(srv.URL, nil).Resolve(context.Background(), "widget-a")
	if calls != 1 {
		t.Errorf("resolver made %d requests, want exactly 1", calls)
	}
}
