package assets

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/physics"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

func TestEmbeddedCourtsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "compact"} {
		if !registry.Exists(id) {
			t.Errorf("court %q not registered", id)
		}
	}
}

func TestCourtLookup(t *testing.T) {
	c, err := Court("", "")
	if err != nil {
		t.Fatalf("Court: %v", err)
	}
	if c.ID != registry.DefaultCourt {
		t.Errorf("Court(\"\").ID = %q, expected %q", c.ID, registry.DefaultCourt)
	}

	if _, err := Court("nope", ""); err == nil {
		t.Error("unknown court should fail")
	}

	path := filepath.Join(t.TempDir(), "mine.yaml")
	data := []byte(`
id: mine
name: Mine
width: 10
length: 10
ball_spawn: {x: 0, y: 3, z: 0}
player_start: {x: 0, y: 1, z: -3}
hoops:
  - name: only
    rim: {x: 0, y: 3, z: 4}
    rim_radius: 0.375
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Court("classic", path)
	if err != nil {
		t.Fatalf("Court from file: %v", err)
	}
	if c.ID != "mine" {
		t.Errorf("file court ID = %q, expected \"mine\"", c.ID)
	}
}

func TestRegisteredCourtIsACopy(t *testing.T) {
	a, _ := registry.Create("classic")
	a.Hoops[0].Name = "changed"
	b, _ := registry.Create("classic")
	if b.Hoops[0].Name == "changed" {
		t.Error("mutating a created court changed the registered layout")
	}
}

func TestBuildCourtMeshes(t *testing.T) {
	cc, _ := registry.Create("classic")
	court, err := BuildCourt(config.DefaultConfig(), cc)
	if err != nil {
		t.Fatalf("BuildCourt: %v", err)
	}

	w := court.Phys.(*physics.World)
	kinds := map[physics.Kind]int{}
	for _, m := range w.Meshes() {
		kinds[m.Kind]++
	}
	// floor, four walls, two backboards
	if kinds[physics.KindBox] != 7 {
		t.Errorf("boxes = %d, expected 7", kinds[physics.KindBox])
	}
	if kinds[physics.KindRing] != 2 || kinds[physics.KindZone] != 2 {
		t.Errorf("rings, zones = %d, %d, expected 2, 2", kinds[physics.KindRing], kinds[physics.KindZone])
	}

	if len(court.Hoops) != 2 {
		t.Fatalf("hoops = %d, expected 2", len(court.Hoops))
	}
	h := court.Hoops[0]
	if h.Rim.Y() != 4.07 || h.Rim.Z() != 10.95 {
		t.Errorf("north rim = %v, expected y 4.07 z 10.95", h.Rim)
	}
	zone, err := w.Info(h.Zone)
	if err != nil || zone.Kind != physics.KindZone {
		t.Errorf("hoop zone = %v, %v, expected a zone mesh", zone, err)
	}
	if h.BoardHalf.X() != 1.5 {
		t.Errorf("backboard half width = %v, expected 1.5", h.BoardHalf.X())
	}
	if court.Floor.MaxX != 7.62 || court.Floor.MaxZ != 14.325 {
		t.Errorf("floor = %+v, expected half extents 7.62 x 14.325", court.Floor)
	}
}

func TestBuildCourtInvalid(t *testing.T) {
	_, err := BuildCourt(config.DefaultConfig(), config.CourtConfig{ID: "bad"})
	if !errors.Is(err, config.ErrInvalidCourt) {
		t.Errorf("BuildCourt error = %v, expected ErrInvalidCourt", err)
	}
}

func TestLoadGame(t *testing.T) {
	cc, _ := registry.Create("classic")
	l := NewLoader(config.DefaultConfig(), cc)

	g, err := l.LoadGame(context.Background(), config.DifficultyHard)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	defer g.Dispose()

	if g.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty = %v, expected hard", g.Difficulty())
	}
	if got := g.State().RemainingSeconds; got != 30 {
		t.Errorf("RemainingSeconds = %d, expected 30", got)
	}

	s := g.Session()
	if s.Ball() == nil || s.BallHeld() {
		t.Fatal("ball should be loaded and free")
	}

	w := g.Court().Phys.(*physics.World)
	pos, _ := w.Position(s.Ball().Mesh)
	if pos != cc.BallSpawn.Vec3() {
		t.Errorf("ball position = %v, expected spawn %v", pos, cc.BallSpawn.Vec3())
	}

	// Five seconds of frames: the ball drops from the spawn and settles on
	// the floor.
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}
	pos, _ = w.Position(s.Ball().Mesh)
	radius := config.DefaultConfig().Ball.Radius
	if math.Abs(pos.Y()-radius) > 0.05 {
		t.Errorf("ball rest height = %.3f, expected about %.2f", pos.Y(), radius)
	}
}

func TestLoadGameCancelled(t *testing.T) {
	cc, _ := registry.Create("compact")
	l := NewLoader(config.DefaultConfig(), cc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := l.LoadGame(ctx, config.DifficultyEasy)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LoadGame error = %v, expected context.Canceled", err)
	}
	if g != nil {
		t.Error("cancelled load should return no game")
	}
}
