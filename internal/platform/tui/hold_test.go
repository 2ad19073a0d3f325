package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestHoldTrackerWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	h := NewHoldTracker(500*time.Millisecond, clock.now)

	if h.Held(core.ActionThrow) {
		t.Fatal("nothing pressed yet")
	}

	h.Press(core.ActionThrow)
	clock.advance(400 * time.Millisecond)
	if !h.Held(core.ActionThrow) {
		t.Error("key should be held inside the window")
	}

	// A repeat extends the hold.
	h.Press(core.ActionThrow)
	clock.advance(400 * time.Millisecond)
	if !h.Held(core.ActionThrow) {
		t.Error("repeat should extend the hold")
	}

	clock.advance(200 * time.Millisecond)
	if h.Held(core.ActionThrow) {
		t.Error("key should be released after the window passes")
	}
}

func TestHoldTrackerApply(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	h := NewHoldTracker(100*time.Millisecond, clock.now)

	h.Press(core.ActionThrow)
	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.Assumed(core.ActionThrow) {
		t.Error("Apply should mark held keys as assumed down")
	}
	if frame.Held(core.ActionThrow) {
		t.Error("Apply should not report a key event")
	}

	clock.advance(time.Second)
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if frame.Assumed(core.ActionThrow) {
		t.Error("released key should not be applied")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(time.Hour, nil)
	h.Press(core.ActionThrow)
	h.Release()
	if h.Held(core.ActionThrow) {
		t.Error("Release should forget held keys")
	}
}
