package hoops

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/physics"
)

const frame = 1.0 / 60

var (
	rimCenter = mgl64.Vec3{0, 4.07, 10.95}
	inReach   = mgl64.Vec3{0, 1, -4} // two meters in front of the start
)

// newTestCourt builds a one-hoop court with the player at (0, 1, -6)
// facing +z.
func newTestCourt(t *testing.T) (*Court, *physics.World) {
	t.Helper()
	cfg := config.DefaultConfig()
	w := physics.NewWorld(cfg.Physics.Gravity, cfg.Physics.RestThreshold)
	w.AddBox("floor", mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{7.62, 0.5, 14.325})
	w.AddRing("rim-north", rimCenter, 0.375, 0.025)
	zone := w.AddZone("zone-north", rimCenter, cfg.Scoring.ZoneRadius)

	return &Court{
		ID:   "test",
		Name: "Test",
		Phys: w,
		Floor: Area{
			MinX: -7.62, MaxX: 7.62,
			MinZ: -14.325, MaxZ: 14.325,
		},
		Hoops:       []Hoop{{Name: "north", Rim: rimCenter, RimRadius: 0.375, Zone: zone}},
		BallSpawn:   mgl64.Vec3{0, 6, 1.25},
		PlayerStart: mgl64.Vec3{0, 1, -6},
	}, w
}

// newTestSession returns a medium session with its ball within reach.
func newTestSession(t *testing.T) (*Session, *physics.World, *HUD) {
	t.Helper()
	court, w := newTestCourt(t)
	hud := &HUD{}
	s := NewSession(config.DefaultConfig(), config.DifficultyMedium, court, hud)
	ball := w.AddSphere("ball", inReach, config.DefaultConfig().Ball.Radius)
	if err := s.AddBall(ball); err != nil {
		t.Fatalf("AddBall: %v", err)
	}
	return s, w, hud
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func holding(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// dropThroughRim puts the free ball above the rim falling straight down and
// runs half a second of frames.
func dropThroughRim(t *testing.T, s *Session, w *physics.World, vy float64) []Event {
	t.Helper()
	mesh := s.Ball().Mesh
	if err := w.SetPosition(mesh, rimCenter.Add(mgl64.Vec3{0, 1, 0})); err != nil {
		t.Fatal(err)
	}
	if err := w.SetVelocity(mesh, mgl64.Vec3{0, vy, 0}); err != nil {
		t.Fatal(err)
	}
	var events []Event
	for i := 0; i < 30; i++ {
		events = append(events, s.Step(core.NewInputFrame(), frame)...)
	}
	return events
}

// grabAndThrow grabs the ball and throws it with the given charge ticks.
func grabAndThrow(t *testing.T, s *Session, ticks int) []Event {
	t.Helper()
	if ev := s.PrimaryAction(); countKind(ev, EventGrab) != 1 {
		t.Fatalf("grab failed, events %v", ev)
	}
	for i := 0; i < ticks; i++ {
		s.Step(holding(core.ActionThrow), frame)
	}
	return s.Step(core.NewInputFrame(), frame)
}

func defaultCfg() config.HoopsConfig {
	return config.DefaultConfig()
}
