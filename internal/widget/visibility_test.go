// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import "testing"

func TestVisibility_InitialState(t *testing.T) {
	v := NewVisibility()
	if v.State() != StateClosed {
		t.Errorf("initial state = %v, want closed", v.State())
	}
	if v.Density() != DensityNormal {
		t.Errorf("initial density = %v, want normal", v.Density())
	}
	if v.IsVisible() {
		t.Error("closed widget should not be visible")
	}
}

func TestVisibility_ToggleCycle(t *testing.T) {
	v := NewVisibility()

	if st, ok := v.Toggle(); !ok || st != StateOpening {
		t.Fatalf("Toggle from closed = %v, %v", st, ok)
	}
	if st := v.FinishTransition(); st != StateOpen {
		t.Fatalf("FinishTransition = %v, want open", st)
	}
	if st, ok := v.Toggle(); !ok || st != StateClosing {
		t.Fatalf("Toggle from open = %v, %v", st, ok)
	}
	if st := v.FinishTransition(); st != StateClosed {
		t.Fatalf("FinishTransition = %v, want closed", st)
	}
}

func TestVisibility_ToggleIgnoredMidTransition(t *testing.T) {
	v := NewVisibility()
	v.Toggle() // opening

	if st, ok := v.Toggle(); ok || st != StateOpening {
		t.Errorf("Toggle mid-transition = %v, %v; want ignored", st, ok)
	}
	v.FinishTransition()
	v.Toggle() // closing
	if _, ok := v.Toggle(); ok {
		t.Error("Toggle during close should be ignored")
	}
}

func TestVisibility_MinimizeOnlyWhileOpen(t *testing.T) {
	v := NewVisibility()

	if v.ToggleMinimize() {
		t.Error("minimize applied while closed")
	}
	v.Toggle()
	if v.ToggleMinimize() {
		t.Error("minimize applied while opening")
	}
	v.FinishTransition()

	if !v.ToggleMinimize() {
		t.Fatal("minimize rejected while open")
	}
	if v.Density() != DensityMinimized {
		t.Errorf("density = %v, want minimized", v.Density())
	}
	if !v.ToggleMinimize() {
		t.Fatal("restore rejected while open")
	}
	if v.Density() != DensityNormal {
		t.Errorf("density = %v, want normal", v.Density())
	}
}

func TestVisibility_CloseResetsDensity(t *testing.T) {
	v := NewVisibility()
	v.Toggle()
	v.FinishTransition()
	v.ToggleMinimize()

	v.Toggle()
	v.FinishTransition()

	if v.Density() != DensityNormal {
		t.Error("density should reset to normal on close")
	}

	v.Toggle()
	v.FinishTransition()
	if v.Density() != DensityNormal {
		t.Error("reopened widget should show the full panel")
	}
}

func TestVisibility_IsVisibleDuringTransition(t *testing.T) {
	v := NewVisibility()
	v.Toggle()
	if !v.IsVisible() {
		t.Error("opening widget should be visible")
	}
	v.FinishTransition()
	v.Toggle()
	if !v.IsVisible() {
		t.Error("closing widget should still be visible")
	}
	v.FinishTransition()
	if v.IsVisible() {
		t.Error("closed widget should not be visible")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateClosed, "closed"},
		{StateOpening, "opening"},
		{StateClosing, "closing"},
		{StateOpen, "open"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
