package hoops

import "github.com/vovakirdan/tui-hoops/internal/physics"

// BallMode is either HeldBall or FreeBall.
type BallMode interface {
	ballMode()
}

// HeldBall is the kinematic mode: no body, parented to the holder.
type HeldBall struct {
	Holder *Player
}

// FreeBall is the dynamic mode: position and velocity belong to the
// physics body.
type FreeBall struct{}

func (HeldBall) ballMode() {}
func (FreeBall) ballMode() {}

// Ball is the single ball of a session.
type Ball struct {
	Mesh physics.MeshID
	Mode BallMode
}

// Held reports whether the ball is attached to a player.
func (b *Ball) Held() bool {
	if b == nil {
		return false
	}
	_, ok := b.Mode.(HeldBall)
	return ok
}
