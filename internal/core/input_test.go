package core

import "testing"

func TestInputFramePressedAndHeld(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionThrow) || f.Held(ActionThrow) {
		t.Fatal("empty frame should report nothing")
	}

	f.Set(ActionGrab)
	if !f.Has(ActionGrab) {
		t.Error("Has(Grab) should be true after Set")
	}
	if !f.Held(ActionGrab) {
		t.Error("a pressed action also counts as held")
	}

	f.Hold(ActionThrow)
	if f.Has(ActionThrow) {
		t.Error("Hold should not mark the action as pressed")
	}
	if !f.Held(ActionThrow) {
		t.Error("Held(Throw) should be true after Hold")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionPause) || f.Held(ActionPause) {
		t.Error("zero frame should report nothing")
	}

	f.Set(ActionPause)
	f.Hold(ActionThrow)
	if !f.Has(ActionPause) || !f.Held(ActionThrow) {
		t.Error("zero frame should lazily allocate its maps")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionGrab)
	f.Hold(ActionThrow)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionGrab) || f.Held(ActionThrow) {
		t.Error("Clear should drop pressed and held actions")
	}
	if !clone.Has(ActionGrab) || !clone.Held(ActionThrow) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameAssumed(t *testing.T) {
	f := NewInputFrame()
	f.AssumeHeld(ActionThrow)
	if !f.Assumed(ActionThrow) {
		t.Error("Assumed(Throw) should be true after AssumeHeld")
	}
	if f.Held(ActionThrow) || f.Has(ActionThrow) {
		t.Error("an assumed action is neither pressed nor held")
	}

	f.Set(ActionThrow)
	if f.Assumed(ActionThrow) {
		t.Error("a pressed action is reported, not assumed")
	}

	clone := f.Clone()
	f.Clear()
	if f.Assumed(ActionThrow) {
		t.Error("Clear should drop assumed actions")
	}
	if clone.Assume[ActionThrow] != true {
		t.Error("Clone should copy assumed actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionThrow.String() != "Throw" {
		t.Errorf("ActionThrow.String() = %q, expected Throw", ActionThrow.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown, got %q", Action(999).String())
	}
}
