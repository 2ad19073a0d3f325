package hoops

import (
	"github.com/vovakirdan/tui-hoops/internal/physics"
)

// ScoreVerdict is the outcome of a ball entering a hoop zone.
type ScoreVerdict int

const (
	VerdictScored ScoreVerdict = iota
	VerdictAscending
	VerdictLatched
	VerdictPaused
	VerdictGameOver
)

func (v ScoreVerdict) String() string {
	switch v {
	case VerdictScored:
		return "scored"
	case VerdictAscending:
		return "ascending"
	case VerdictLatched:
		return "already scored this throw"
	case VerdictPaused:
		return "paused"
	case VerdictGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ScoreDetector watches for the ball entering a hoop zone and decides
// whether it counts. A throw cycle scores at most once.
type ScoreDetector struct {
	phys     Physics
	hoops    map[physics.MeshID]Hoop
	triggers []physics.TriggerID
	latched  bool
}

// NewScoreDetector creates a detector for the court's hoops.
func NewScoreDetector(phys Physics, hoops []Hoop) *ScoreDetector {
	d := &ScoreDetector{
		phys:  phys,
		hoops: make(map[physics.MeshID]Hoop, len(hoops)),
	}
	for _, h := range hoops {
		d.hoops[h.Zone] = h
	}
	return d
}

// Arm registers one trigger per hoop zone that follows the ball for a new
// throw cycle. Triggers from the previous cycle are removed first.
func (d *ScoreDetector) Arm(ball physics.MeshID) error {
	d.Disarm()
	for zone := range d.hoops {
		id, err := d.phys.AddTrigger(ball, zone)
		if err != nil {
			d.Disarm()
			return err
		}
		d.triggers = append(d.triggers, id)
	}
	return nil
}

// Disarm removes all triggers.
func (d *ScoreDetector) Disarm() {
	for _, id := range d.triggers {
		d.phys.RemoveTrigger(id)
	}
	d.triggers = nil
}

// Armed reports whether triggers are registered.
func (d *ScoreDetector) Armed() bool {
	return len(d.triggers) > 0
}

// ResetLatch reopens scoring. Only a new grab calls it.
func (d *ScoreDetector) ResetLatch() {
	d.latched = false
}

// Latched reports whether the current throw already scored.
func (d *ScoreDetector) Latched() bool {
	return d.latched
}

// Hoop returns the hoop owning a zone mesh.
func (d *ScoreDetector) Hoop(zone physics.MeshID) (Hoop, bool) {
	h, ok := d.hoops[zone]
	return h, ok
}

// Evaluate judges an entry with vertical velocity vy. Only a descending
// ball scores, and only once per throw; the latch is set on success.
func (d *ScoreDetector) Evaluate(vy float64, paused, gameOver bool) ScoreVerdict {
	switch {
	case gameOver:
		return VerdictGameOver
	case paused:
		return VerdictPaused
	case d.latched:
		return VerdictLatched
	case vy >= 0:
		return VerdictAscending
	}
	d.latched = true
	return VerdictScored
}
