package screens

import (
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/hoops"
)

// GameScreen hosts a round of play.
type GameScreen struct {
	control
	game *hoops.Game
}

// NewGameScreen wraps a loaded game.
func NewGameScreen(g *hoops.Game) *GameScreen {
	return &GameScreen{game: g}
}

// ID returns Game.
func (s *GameScreen) ID() ID { return Game }

// Game returns the hosted game.
func (s *GameScreen) Game() *hoops.Game { return s.game }

// GameOver reports whether the round has ended.
func (s *GameScreen) GameOver() bool {
	return s.game.State().GameOver
}

// Handle only offers the way back to the main menu, once the round is over.
func (s *GameScreen) Handle(a core.Action) (Transition, bool) {
	if !s.attached || !s.GameOver() {
		return Transition{}, false
	}
	if a == core.ActionMainMenu || a == core.ActionConfirm {
		return Transition{To: Start}, true
	}
	return Transition{}, false
}

// Step runs one frame. A detached screen gets no input but the world keeps
// moving.
func (s *GameScreen) Step(in core.InputFrame) hoops.StepResult {
	if s.disposed {
		return hoops.StepResult{State: s.game.State()}
	}
	if !s.attached {
		in = core.NewInputFrame()
	}
	return s.game.Step(in)
}

// SecondTick forwards the one-second clock to the game.
func (s *GameScreen) SecondTick() hoops.StepResult {
	if s.disposed {
		return hoops.StepResult{State: s.game.State()}
	}
	return s.game.SecondTick()
}

// Dispose releases the game.
func (s *GameScreen) Dispose() {
	if s.disposed {
		return
	}
	s.game.Dispose()
	s.control.Dispose()
}
