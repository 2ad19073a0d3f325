// Package assets builds playable courts from layouts: the static physics
// meshes, the scoring zones and the ball.
package assets

import (
	"context"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/hoops"
	"github.com/vovakirdan/tui-hoops/internal/physics"
)

const (
	rimTube       = 0.025
	wallThickness = 1.0
	floorDepth    = 1.0
)

// Loader builds a fresh game for each round. It implements
// screens.GameLoader.
type Loader struct {
	cfg   config.HoopsConfig
	court config.CourtConfig
}

// NewLoader returns a loader for one court layout.
func NewLoader(cfg config.HoopsConfig, court config.CourtConfig) *Loader {
	return &Loader{cfg: cfg, court: court}
}

// CourtID returns the id of the court this loader builds.
func (l *Loader) CourtID() string { return l.court.ID }

// LoadGame builds the court, then the round, then drops the ball in.
// The context is checked between stages; a cancelled load returns the
// context error and nothing else.
func (l *Loader) LoadGame(ctx context.Context, d config.Difficulty) (*hoops.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	court, w, err := buildCourt(l.cfg, l.court)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	game := hoops.New(l.cfg, d, court)
	ball := w.AddSphere("ball", court.BallSpawn, l.cfg.Ball.Radius)
	if err := game.AddBall(ball); err != nil {
		game.Dispose()
		return nil, fmt.Errorf("assets: add ball: %w", err)
	}

	if err := ctx.Err(); err != nil {
		game.Dispose()
		return nil, err
	}
	return game, nil
}

// BuildCourt creates the physics world for a layout: floor, boundary walls,
// backboards, rims and one scoring zone per rim.
func BuildCourt(cfg config.HoopsConfig, cc config.CourtConfig) (*hoops.Court, error) {
	court, _, err := buildCourt(cfg, cc)
	return court, err
}

func buildCourt(cfg config.HoopsConfig, cc config.CourtConfig) (*hoops.Court, *physics.World, error) {
	if err := cc.Validate(); err != nil {
		return nil, nil, err
	}

	w := physics.NewWorld(cfg.Physics.Gravity, cfg.Physics.RestThreshold)
	hw, hl := cc.Width/2, cc.Length/2

	w.AddBox("floor", mgl64.Vec3{0, -floorDepth / 2, 0}, mgl64.Vec3{hw, floorDepth / 2, hl})

	if cc.WallHeight > 0 {
		hh := cc.WallHeight / 2
		t := wallThickness / 2
		w.AddBox("wall-north", mgl64.Vec3{0, hh, hl + t}, mgl64.Vec3{hw + wallThickness, hh, t})
		w.AddBox("wall-south", mgl64.Vec3{0, hh, -hl - t}, mgl64.Vec3{hw + wallThickness, hh, t})
		w.AddBox("wall-east", mgl64.Vec3{hw + t, hh, 0}, mgl64.Vec3{t, hh, hl})
		w.AddBox("wall-west", mgl64.Vec3{-hw - t, hh, 0}, mgl64.Vec3{t, hh, hl})
	}

	court := &hoops.Court{
		ID:          cc.ID,
		Name:        cc.Name,
		Phys:        w,
		Floor:       hoops.Area{MinX: -hw, MaxX: hw, MinZ: -hl, MaxZ: hl},
		BallSpawn:   cc.BallSpawn.Vec3(),
		PlayerStart: cc.PlayerStart.Vec3(),
		PlayerYaw:   mgl64.DegToRad(cc.PlayerYaw),
	}

	for _, h := range cc.Hoops {
		rim := h.Rim.Vec3()
		hoop := hoops.Hoop{
			Name:      h.Name,
			Rim:       rim,
			RimRadius: h.RimRadius,
		}
		if size := h.Backboard.Size.Vec3(); size.X() > 0 && size.Y() > 0 && size.Z() > 0 {
			hoop.Backboard = h.Backboard.Center.Vec3()
			hoop.BoardHalf = size.Mul(0.5)
			w.AddBox("board-"+h.Name, hoop.Backboard, hoop.BoardHalf)
		}
		w.AddRing("rim-"+h.Name, rim, h.RimRadius, rimTube)
		hoop.Zone = w.AddZone("zone-"+h.Name, rim, math.Min(cfg.Scoring.ZoneRadius, h.RimRadius))
		court.Hoops = append(court.Hoops, hoop)
	}

	return court, w, nil
}
