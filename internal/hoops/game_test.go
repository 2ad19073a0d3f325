package hoops

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/physics"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	court, w := newTestCourt(t)
	g := New(defaultCfg(), config.DifficultyEasy, court)
	ball := w.AddSphere("ball", inReach, 0.2)
	if err := g.AddBall(ball); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGameStepAndState(t *testing.T) {
	g := newTestGame(t)
	g.Reset(core.DefaultConfig())

	res := g.Step(input(core.ActionGrab))
	if countKind(res.Events, EventGrab) != 1 || !res.State.BallHeld {
		t.Errorf("Step(grab) = %+v, expected a held ball", res)
	}

	res = g.SecondTick()
	if res.State.RemainingSeconds != 89 {
		t.Errorf("RemainingSeconds = %d, expected 89", res.State.RemainingSeconds)
	}
	if g.HUD().TimerText != "1:29" {
		t.Errorf("TimerText = %q, expected 1:29", g.HUD().TimerText)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Step(core.NewInputFrame())
	g.Render(screen)

	top := screen.Row(0)
	if !strings.Contains(top, "Score: 0") || !strings.Contains(top, "1:30") {
		t.Errorf("HUD row = %q, expected score and timer", top)
	}
	if !strings.Contains(screen.String(), string(RimChar)) {
		t.Error("rim should be drawn")
	}
	if !strings.Contains(screen.Row(23), "Grab") {
		t.Errorf("prompt row = %q, expected the grab prompt", screen.Row(23))
	}

	g.Step(input(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause box")
	}
}

func TestGameRenderClampsToCourt(t *testing.T) {
	g := newTestGame(t)
	w := g.Court().Phys.(*physics.World)
	if err := w.SetPosition(g.Session().Ball().Mesh, mgl64.Vec3{30, 1, 40}); err != nil {
		t.Fatal(err)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Court length runs left to right, width top to bottom: the far corner
	// is the bottom-right cell inside the outline.
	if got := screen.Get(78, 21); got != BallChar {
		t.Errorf("cell (78, 21) = %q, expected the ball pinned to the court edge", got)
	}
}

func TestGameRenderTimeUp(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 90; i++ {
		g.SecondTick()
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), TimeUpText) {
		t.Error("finished game should show the time's up box")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(4, 2)
	g.Render(screen)
	if !strings.HasPrefix(screen.Row(0), "Term") {
		t.Errorf("tiny screen row = %q, expected a size warning", screen.Row(0))
	}
}

func TestGameDispose(t *testing.T) {
	g := newTestGame(t)
	g.Dispose()
	if res := g.Step(input(core.ActionGrab)); len(res.Events) != 0 {
		t.Errorf("disposed game produced events %v", res.Events)
	}
	if res := g.SecondTick(); res.State.RemainingSeconds != 90 {
		t.Errorf("disposed game timer moved to %d", res.State.RemainingSeconds)
	}
}

func TestBallRespawnsWhenOutOfPlay(t *testing.T) {
	s, w, _ := newTestSession(t)
	_ = w.SetPosition(s.Ball().Mesh, mgl64.Vec3{30, 1, 0})

	events := s.Step(core.NewInputFrame(), frame)
	if countKind(events, EventBallRespawn) != 1 {
		t.Fatalf("events = %v, expected a respawn", events)
	}
	pos, _ := w.Position(s.Ball().Mesh)
	if pos != s.Court().BallSpawn {
		t.Errorf("ball at %v, expected spawn %v", pos, s.Court().BallSpawn)
	}
}

// stuckPhysics refuses to move meshes.
type stuckPhysics struct {
	Physics
}

func (stuckPhysics) SetPosition(physics.MeshID, mgl64.Vec3) error {
	return errors.New("stuck")
}

func TestFailedRespawnKeepsBallSimulated(t *testing.T) {
	court, w := newTestCourt(t)
	court.Phys = stuckPhysics{Physics: w}
	s := NewSession(defaultCfg(), config.DifficultyEasy, court, nil)
	ball := w.AddSphere("ball", inReach, 0.2)
	if err := s.AddBall(ball); err != nil {
		t.Fatal(err)
	}
	_ = w.SetPosition(ball, mgl64.Vec3{30, 1, 0})

	events := s.Step(core.NewInputFrame(), frame)
	if countKind(events, EventBallRespawn) != 0 {
		t.Errorf("events = %v, expected no respawn", events)
	}
	if !w.HasBody(ball) {
		t.Error("ball should keep its body after a failed respawn")
	}
}
