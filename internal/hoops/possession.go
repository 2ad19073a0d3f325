package hoops

import "github.com/vovakirdan/tui-hoops/internal/physics"

// PossessionTracker decides whether the ball is within reach and in view,
// and keeps the grab indicator in sync. It is polled every frame.
type PossessionTracker struct {
	phys      Physics
	indicator bool
}

// NewPossessionTracker creates a tracker over the given physics service.
func NewPossessionTracker(phys Physics) *PossessionTracker {
	return &PossessionTracker{phys: phys}
}

// CheckGrabEligible is true iff the player's forward ray hits the ball and
// the ball is within MaxGrabDistance of the eye. A missing ball is never
// eligible.
func (t *PossessionTracker) CheckGrabEligible(p *Player, b *Ball) bool {
	if p == nil || b == nil {
		return false
	}
	pos, err := t.phys.Position(b.Mesh)
	if err != nil {
		return false
	}
	if physics.Distance(p.Eye, pos) > p.MaxGrabDistance {
		return false
	}
	hit, err := t.phys.RayIntersects(p.Ray(), b.Mesh)
	return err == nil && hit
}

// Poll recomputes the grab indicator: shown when the ball is grabbable and
// not already held.
func (t *PossessionTracker) Poll(p *Player, b *Ball) bool {
	t.indicator = !b.Held() && t.CheckGrabEligible(p, b)
	return t.indicator
}

// Indicator returns the result of the last Poll.
func (t *PossessionTracker) Indicator() bool {
	return t.indicator
}

// Hide clears the indicator, e.g. while paused.
func (t *PossessionTracker) Hide() {
	t.indicator = false
}
