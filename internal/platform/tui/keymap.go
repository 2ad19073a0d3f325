package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// KeyMap holds every binding the app reacts to. Menu and game bindings
// overlap on purpose: W moves the cursor in a menu and walks in a game.
type KeyMap struct {
	Quit key.Binding

	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Back    key.Binding

	Forward     key.Binding
	Backward    key.Binding
	StrafeLeft  key.Binding
	StrafeRight key.Binding
	TurnLeft    key.Binding
	TurnRight   key.Binding
	LookUp      key.Binding
	LookDown    key.Binding
	Grab        key.Binding
	Throw       key.Binding
	Pause       key.Binding
	MainMenu    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),

		Up:      key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),

		Forward:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w/s", "walk")),
		Backward:    key.NewBinding(key.WithKeys("s")),
		StrafeLeft:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a/d", "strafe")),
		StrafeRight: key.NewBinding(key.WithKeys("d")),
		TurnLeft:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "turn")),
		TurnRight:   key.NewBinding(key.WithKeys("right")),
		LookUp:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "look")),
		LookDown:    key.NewBinding(key.WithKeys("down")),
		Grab:        key.NewBinding(key.WithKeys("e", "f"), key.WithHelp("e", "grab")),
		Throw:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hold to throw")),
		Pause:       key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		MainMenu:    key.NewBinding(key.WithKeys("m", "enter"), key.WithHelp("m", "main menu")),
	}
}

// MenuAction translates a key to a menu action.
func (k KeyMap) MenuAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// GameAction translates a key to a gameplay action. After the round ends
// only leaving is possible.
func (k KeyMap) GameAction(msg tea.KeyMsg, gameOver bool) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}
	if gameOver {
		if key.Matches(msg, k.MainMenu) {
			return core.ActionMainMenu
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Forward):
		return core.ActionMoveForward
	case key.Matches(msg, k.Backward):
		return core.ActionMoveBack
	case key.Matches(msg, k.StrafeLeft):
		return core.ActionStrafeLeft
	case key.Matches(msg, k.StrafeRight):
		return core.ActionStrafeRight
	case key.Matches(msg, k.TurnLeft):
		return core.ActionTurnLeft
	case key.Matches(msg, k.TurnRight):
		return core.ActionTurnRight
	case key.Matches(msg, k.LookUp):
		return core.ActionLookUp
	case key.Matches(msg, k.LookDown):
		return core.ActionLookDown
	case key.Matches(msg, k.Grab):
		return core.ActionGrab
	case key.Matches(msg, k.Throw):
		return core.ActionThrow
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// menuHelp lists the bindings shown under a menu.
type menuHelp KeyMap

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Up, h.Down, h.Confirm, h.Back, h.Quit}
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// gameHelp lists the bindings shown under the court.
type gameHelp struct {
	keys     KeyMap
	gameOver bool
}

func (h gameHelp) ShortHelp() []key.Binding {
	k := h.keys
	if h.gameOver {
		return []key.Binding{k.MainMenu, k.Quit}
	}
	return []key.Binding{k.Forward, k.StrafeLeft, k.TurnLeft, k.LookUp, k.Grab, k.Throw, k.Pause, k.Quit}
}

func (h gameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
