package hoops

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/physics"
)

// Player is the camera-controlled actor. Yaw 0 looks along +z and positive
// yaw turns toward +x. Pitch is positive looking up.
type Player struct {
	Eye             mgl64.Vec3
	Yaw             float64 // radians
	Pitch           float64 // radians
	MaxGrabDistance float64
	MaxPitch        float64 // radians, pitch is clamped to ±MaxPitch
}

// Facing returns the unit view direction.
func (p *Player) Facing() mgl64.Vec3 {
	cp := math.Cos(p.Pitch)
	return mgl64.Vec3{
		math.Sin(p.Yaw) * cp,
		math.Sin(p.Pitch),
		math.Cos(p.Yaw) * cp,
	}
}

// Right returns the horizontal unit vector to the player's right.
func (p *Player) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(p.Yaw), 0, -math.Sin(p.Yaw)}
}

// Ground returns the horizontal forward direction, ignoring pitch.
func (p *Player) Ground() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(p.Yaw), 0, math.Cos(p.Yaw)}
}

// Ray is the forward ray from the eye.
func (p *Player) Ray() physics.Ray {
	return physics.Ray{Origin: p.Eye, Dir: p.Facing()}
}

// Anchor maps an offset in the player's frame (right, up, forward) to world
// space. Held balls are parented through it.
func (p *Player) Anchor(offset mgl64.Vec3) mgl64.Vec3 {
	return p.Eye.
		Add(p.Right().Mul(offset.X())).
		Add(mgl64.Vec3{0, offset.Y(), 0}).
		Add(p.Facing().Mul(offset.Z()))
}

// Walk moves the player on the floor plane and keeps the eye inside area.
func (p *Player) Walk(forward, strafe float64, area Area) {
	step := p.Ground().Mul(forward).Add(p.Right().Mul(strafe))
	next := p.Eye.Add(step)
	p.Eye = area.Clamp(next)
}

// Turn changes yaw, wrapping to (-π, π].
func (p *Player) Turn(delta float64) {
	p.Yaw = math.Remainder(p.Yaw+delta, 2*math.Pi)
}

// Look changes pitch, clamped to ±MaxPitch.
func (p *Player) Look(delta float64) {
	limit := p.MaxPitch
	if limit <= 0 {
		limit = math.Pi / 2
	}
	p.Pitch = mgl64.Clamp(p.Pitch+delta, -limit, limit)
}

// Area is a rectangle on the floor plane.
type Area struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Contains reports whether the point's floor projection lies inside.
func (a Area) Contains(v mgl64.Vec3) bool {
	return v.X() >= a.MinX && v.X() <= a.MaxX && v.Z() >= a.MinZ && v.Z() <= a.MaxZ
}

// Clamp moves the point's floor projection inside the area.
func (a Area) Clamp(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(v.X(), a.MinX, a.MaxX),
		v.Y(),
		mgl64.Clamp(v.Z(), a.MinZ, a.MaxZ),
	}
}

// Inset shrinks the area by d on every side.
func (a Area) Inset(d float64) Area {
	return Area{MinX: a.MinX + d, MaxX: a.MaxX - d, MinZ: a.MinZ + d, MaxZ: a.MaxZ - d}
}
