package tui

import (
	"time"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// HoldTracker infers key-down state from a terminal's key repeat.
// Terminals send no release events, so a key counts as held until no
// repeat has arrived for the release window.
type HoldTracker struct {
	window time.Duration
	now    func() time.Time
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given release window. A nil
// clock uses time.Now.
func NewHoldTracker(window time.Duration, now func() time.Time) *HoldTracker {
	if now == nil {
		now = time.Now
	}
	return &HoldTracker{
		window: window,
		now:    now,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key press or repeat.
func (h *HoldTracker) Press(a core.Action) {
	h.last[a] = h.now()
}

// Held reports whether the action is still considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if h.now().Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Apply marks every held action as assumed down in the frame. A key event
// in the same frame still reports it as pressed.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a := range h.last {
		if h.Held(a) {
			frame.AssumeHeld(a)
		}
	}
}

// Release forgets all held keys, e.g. when a screen loses input.
func (h *HoldTracker) Release() {
	clear(h.last)
}
