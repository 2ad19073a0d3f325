package hoops

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/physics"
)

// Hoop is one basket. Immutable once the court is built.
type Hoop struct {
	Name      string
	Rim       mgl64.Vec3
	RimRadius float64
	Zone      physics.MeshID // sensor at the rim center
	Backboard mgl64.Vec3     // center, zero if the court has none
	BoardHalf mgl64.Vec3
}

// Court is a built court: the physics service plus the layout the game
// needs to place things and draw them.
type Court struct {
	ID          string
	Name        string
	Phys        Physics
	Floor       Area
	Hoops       []Hoop
	BallSpawn   mgl64.Vec3
	PlayerStart mgl64.Vec3
	PlayerYaw   float64 // radians
}

// OutOfPlay reports whether a free ball has left the court and should be
// put back at the spawn point.
func (c *Court) OutOfPlay(p mgl64.Vec3) bool {
	return !c.Floor.Inset(-1).Contains(p) || p.Y() < -2
}
