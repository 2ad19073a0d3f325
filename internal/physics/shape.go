// Package physics is a small rigid-body and ray-test world for the court.
//
// Dynamic bodies are spheres. Boxes and rings are static colliders, zones are
// sensor spheres that only report overlaps. Meshes without a body can be
// parented to a moving transform and follow it every step.
package physics

import "github.com/go-gl/mathgl/mgl64"

// MeshID identifies a mesh in a World.
type MeshID int

// Kind is the shape family of a mesh.
type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindRing
	KindZone
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindRing:
		return "ring"
	case KindZone:
		return "zone"
	default:
		return "unknown"
	}
}

// BodyParams configures a simulated rigid body.
type BodyParams struct {
	Mass        float64
	Restitution float64 // fraction of normal speed kept after a bounce
	Friction    float64 // 0..1, tangential damping on contact
}

// Transform is something a mesh can be parented to.
// Anchor maps a local offset to a world position.
type Transform interface {
	Anchor(offset mgl64.Vec3) mgl64.Vec3
}

// MeshInfo is a read-only snapshot of a mesh, used for drawing.
type MeshInfo struct {
	ID       MeshID
	Name     string
	Kind     Kind
	Position mgl64.Vec3
	Radius   float64    // spheres, zones and rings
	Half     mgl64.Vec3 // boxes
	HasBody  bool
}

type mesh struct {
	id     MeshID
	name   string
	kind   Kind
	pos    mgl64.Vec3
	radius float64
	tube   float64 // ring cross-section radius
	half   mgl64.Vec3

	body *body

	parent Transform
	offset mgl64.Vec3
}

type body struct {
	params BodyParams
	vel    mgl64.Vec3
}

func (m *mesh) info() MeshInfo {
	return MeshInfo{
		ID:       m.id,
		Name:     m.name,
		Kind:     m.kind,
		Position: m.pos,
		Radius:   m.radius,
		Half:     m.half,
		HasBody:  m.body != nil,
	}
}
