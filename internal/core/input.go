package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // menu cursor up
	ActionDown                // menu cursor down
	ActionConfirm             // Enter - confirm menu selection
	ActionBack                // B - back to the previous menu
	ActionMoveForward         // W - walk forward
	ActionMoveBack            // S - walk backward
	ActionStrafeLeft          // A - step left
	ActionStrafeRight         // D - step right
	ActionTurnLeft            // Left arrow - look left
	ActionTurnRight           // Right arrow - look right
	ActionLookUp              // Up arrow - look up
	ActionLookDown            // Down arrow - look down
	ActionGrab                // E, F - primary action, pick up the ball
	ActionThrow               // Space - hold to charge, let go to throw
	ActionPause               // P, Esc - pause/resume the round
	ActionMainMenu            // M - back to the main menu after the round ends
	ActionQuit                // Q, Ctrl+C - leave the program
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionMoveForward: "MoveForward",
	ActionMoveBack:    "MoveBack",
	ActionStrafeLeft:  "StrafeLeft",
	ActionStrafeRight: "StrafeRight",
	ActionTurnLeft:    "TurnLeft",
	ActionTurnRight:   "TurnRight",
	ActionLookUp:      "LookUp",
	ActionLookDown:    "LookDown",
	ActionGrab:        "Grab",
	ActionThrow:       "Throw",
	ActionPause:       "Pause",
	ActionMainMenu:    "MainMenu",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input state for one simulation tick.
//
// Pressed actions fired during the tick. Held actions are still down at the
// end of the tick. Assumed actions had no key event this tick but have not
// been seen released either; terminals report no key-up events, so the
// platform layer guesses those from key repeat.
type InputFrame struct {
	Actions map[Action]bool
	Down    map[Action]bool
	Assume  map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Down:    make(map[Action]bool),
		Assume:  make(map[Action]bool),
	}
}

// Set marks an action as pressed during this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held at the end of this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Down == nil {
		f.Down = make(map[Action]bool)
	}
	f.Down[a] = true
}

// AssumeHeld marks an action as probably still down with no key event
// this frame.
func (f *InputFrame) AssumeHeld(a Action) {
	if f.Assume == nil {
		f.Assume = make(map[Action]bool)
	}
	f.Assume[a] = true
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Held returns true if the action is down, either pressed this frame or
// still held from an earlier one.
func (f InputFrame) Held(a Action) bool {
	return f.Has(a) || (f.Down != nil && f.Down[a])
}

// Assumed returns true if the action is only assumed down: not pressed or
// held this frame, but not known to be released.
func (f InputFrame) Assumed(a Action) bool {
	return !f.Held(a) && f.Assume != nil && f.Assume[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Down)
	clear(f.Assume)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Down {
		clone.Down[k] = v
	}
	for k, v := range f.Assume {
		clone.Assume[k] = v
	}
	return clone
}
