package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMenuAction(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"j", runeKey('j'), core.ActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.MenuAction(tt.msg); got != tt.want {
				t.Errorf("MenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestGameAction(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		gameOver bool
		want     core.Action
	}{
		{"w walks", runeKey('w'), false, core.ActionMoveForward},
		{"s backs up", runeKey('s'), false, core.ActionMoveBack},
		{"a strafes", runeKey('a'), false, core.ActionStrafeLeft},
		{"d strafes", runeKey('d'), false, core.ActionStrafeRight},
		{"left turns", tea.KeyMsg{Type: tea.KeyLeft}, false, core.ActionTurnLeft},
		{"right turns", tea.KeyMsg{Type: tea.KeyRight}, false, core.ActionTurnRight},
		{"up looks", tea.KeyMsg{Type: tea.KeyUp}, false, core.ActionLookUp},
		{"down looks", tea.KeyMsg{Type: tea.KeyDown}, false, core.ActionLookDown},
		{"e grabs", runeKey('e'), false, core.ActionGrab},
		{"space throws", tea.KeyMsg{Type: tea.KeySpace}, false, core.ActionThrow},
		{"p pauses", runeKey('p'), false, core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, false, core.ActionPause},
		{"m ignored in play", runeKey('m'), false, core.ActionNone},
		{"m leaves after the round", runeKey('m'), true, core.ActionMainMenu},
		{"enter leaves after the round", tea.KeyMsg{Type: tea.KeyEnter}, true, core.ActionMainMenu},
		{"walking ignored after the round", runeKey('w'), true, core.ActionNone},
		{"q quits after the round", runeKey('q'), true, core.ActionQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.GameAction(tt.msg, tt.gameOver); got != tt.want {
				t.Errorf("GameAction(%q, %v) = %v, expected %v", tt.msg.String(), tt.gameOver, got, tt.want)
			}
		})
	}
}
