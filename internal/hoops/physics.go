package hoops

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/physics"
)

// Physics is the rendering/physics service the game core drives.
// *physics.World implements it.
type Physics interface {
	RayIntersects(r physics.Ray, id physics.MeshID) (bool, error)
	Position(id physics.MeshID) (mgl64.Vec3, error)
	SetPosition(id physics.MeshID, p mgl64.Vec3) error
	AttachBody(id physics.MeshID, p physics.BodyParams) error
	DetachBody(id physics.MeshID) error
	ApplyImpulse(id physics.MeshID, impulse, point mgl64.Vec3) error
	Velocity(id physics.MeshID) (mgl64.Vec3, error)
	SetParent(id physics.MeshID, t physics.Transform, offset mgl64.Vec3) error
	ClearParent(id physics.MeshID) error
	AddTrigger(mover, zone physics.MeshID) (physics.TriggerID, error)
	RemoveTrigger(id physics.TriggerID)
	Step(dt float64) []physics.TriggerEvent
}

var _ Physics = (*physics.World)(nil)
