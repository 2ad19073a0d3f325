// Package screens is the top-level navigation of the game: the start menu,
// instructions, difficulty selection and the game itself, and the state
// machine that swaps between them.
package screens

import (
	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
)

// ID names a top-level screen.
type ID int

const (
	Start ID = iota
	Instructions
	Difficulty
	Game
)

func (id ID) String() string {
	switch id {
	case Start:
		return "START"
	case Instructions:
		return "INSTRUCTIONS"
	case Difficulty:
		return "DIFFICULTY"
	case Game:
		return "GAME"
	default:
		return "UNKNOWN"
	}
}

// Transition is a request to move to another screen. Difficulty is only
// meaningful when To is Game.
type Transition struct {
	To         ID
	Difficulty config.Difficulty
}

// Screen is one top-level screen. Only the attached screen receives input.
type Screen interface {
	ID() ID
	AttachControl()
	DetachControl()
	Attached() bool
	// Handle feeds a menu-level action and returns a navigation request.
	// Detached screens ignore input.
	Handle(a core.Action) (Transition, bool)
	Dispose()
}

// control is the attach/detach bookkeeping shared by all screens.
type control struct {
	attached bool
	disposed bool
}

func (c *control) AttachControl() {
	if !c.disposed {
		c.attached = true
	}
}

func (c *control) DetachControl() { c.attached = false }

func (c *control) Attached() bool { return c.attached }

func (c *control) Dispose() {
	c.attached = false
	c.disposed = true
}

// Disposed reports whether the screen has released its resources.
func (c *control) Disposed() bool { return c.disposed }
