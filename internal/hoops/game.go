package hoops

import (
	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/physics"
)

// StepResult is returned from Game.Step and Game.SecondTick.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Game is a playable round: a session plus the HUD it writes to, driven
// one frame at a time by the platform layer.
type Game struct {
	session *Session
	hud     *HUD
	config  core.RuntimeConfig
}

// New creates a game on a built court. The ball is added separately once
// loaded; until then ball operations do nothing.
func New(cfg config.HoopsConfig, d config.Difficulty, court *Court) *Game {
	hud := &HUD{}
	return &Game{
		session: NewSession(cfg, d, court, hud),
		hud:     hud,
		config:  core.DefaultConfig(),
	}
}

// AddBall places the loaded ball into play.
func (g *Game) AddBall(mesh physics.MeshID) error {
	return g.session.AddBall(mesh)
}

// Reset applies the runtime configuration (screen size, tick rate).
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) StepResult {
	events := g.session.Step(in, g.config.FrameSeconds())
	return StepResult{State: g.State(), Events: events}
}

// SecondTick advances the round clock by one second.
func (g *Game) SecondTick() StepResult {
	events := g.session.SecondTick()
	return StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:            g.session.Points(),
		RemainingSeconds: g.session.RemainingSeconds(),
		GameOver:         g.session.GameOver(),
		Paused:           g.session.Paused(),
		BallHeld:         g.session.BallHeld(),
	}
}

// HUD returns a copy of the overlay values.
func (g *Game) HUD() HUD {
	return *g.hud
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Difficulty returns the round's difficulty.
func (g *Game) Difficulty() config.Difficulty {
	return g.session.Difficulty()
}

// Court returns the court being played.
func (g *Game) Court() *Court {
	return g.session.Court()
}

// Dispose releases the round.
func (g *Game) Dispose() {
	g.session.Dispose()
}
