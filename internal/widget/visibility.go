// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"sync"
	"time"
)

// =============================================================================
// VISIBILITY STATE MACHINE
// =============================================================================

// TransitionDuration is how long the open/close transition plays before the
// widget settles in its target state.
const TransitionDuration = 300 * time.Millisecond

// State is the widget's visibility state.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateClosing
	StateOpen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateClosing:
		return "closing"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Density is the size mode of an open widget.
type Density int

const (
	DensityNormal Density = iota
	DensityMinimized
)

// Visibility governs the widget's presentation state. The widget starts
// closed and has no terminal state; it persists for the life of the host.
type Visibility struct {
	mu      sync.Mutex
	state   State
	density Density
}

// NewVisibility creates the machine in its initial state: closed, normal
// density.
func NewVisibility() *Visibility {
	return &Visibility{state: StateClosed, density: DensityNormal}
}

// Toggle flips between closed and open, entering the corresponding
// transition state. The caller is responsible for invoking
// FinishTransition once the transition duration has elapsed. A toggle
// during an in-flight transition is ignored.
func (v *Visibility) Toggle() (State, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case StateClosed:
		v.state = StateOpening
		return v.state, true
	case StateOpen:
		v.state = StateClosing
		return v.state, true
	default:
		return v.state, false
	}
}

// FinishTransition settles an in-flight transition into its target state.
// Settling into closed resets density so a reopened widget always shows the
// full panel.
func (v *Visibility) FinishTransition() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case StateOpening:
		v.state = StateOpen
	case StateClosing:
		v.state = StateClosed
		v.density = DensityNormal
	}
	return v.state
}

// ToggleMinimize flips density between normal and minimized. Only valid
// while fully open; reports whether the toggle applied.
func (v *Visibility) ToggleMinimize() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateOpen {
		return false
	}
	if v.density == DensityNormal {
		v.density = DensityMinimized
	} else {
		v.density = DensityNormal
	}
	return true
}

// State returns the current visibility state.
func (v *Visibility) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Density returns the current density.
func (v *Visibility) Density() Density {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.density
}

// IsVisible reports whether any part of the panel is showing (open or mid
// transition).
func (v *Visibility) IsVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state != StateClosed
}
