// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"path/filepath"
	"testing"
)

// storeUnderTest runs the shared store contract against an implementation.
func storeUnderTest(t *testing.T, store Store) {
	t.Helper()

	// Missing key.
	_, ok, err := store.Get("absent")
	if err != nil {
		t.Fatalf("Get(absent): %v", err)
	}
	if ok {
		t.Fatal("Get(absent) reported a value")
	}

	// Round trip.
	if err := store.Put("k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	value, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get(k): ok=%v err=%v", ok, err)
	}
	if string(value) != `{"v":1}` {
		t.Errorf("Get(k) = %q", value)
	}

	// Last write wins.
	if err := store.Put("k", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	value, _, _ = store.Get("k")
	if string(value) != `{"v":2}` {
		t.Errorf("after overwrite Get(k) = %q", value)
	}
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	storeUnderTest(t, NewFileStore(path))
}

func TestFileStore_SharedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first := NewFileStore(path)
	if err := first.Put("a", []byte(`"one"`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// A second handle over the same file sees the write.
	second := NewFileStore(path)
	value, ok, err := second.Get("a")
	if err != nil || !ok {
		t.Fatalf("Get via second handle: ok=%v err=%v", ok, err)
	}
	if string(value) != `"one"` {
		t.Errorf("value = %q", value)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	storeUnderTest(t, store)
}
