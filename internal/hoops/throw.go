package hoops

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ThrowPhase is the state of one throw cycle.
type ThrowPhase int

const (
	ThrowIdle ThrowPhase = iota
	ThrowCharging
	ThrowReleased
)

func (p ThrowPhase) String() string {
	switch p {
	case ThrowIdle:
		return "idle"
	case ThrowCharging:
		return "charging"
	case ThrowReleased:
		return "released"
	default:
		return "unknown"
	}
}

// ImpulseMagnitude maps a charge count to a launch scalar:
// 2^(2 * charge/scale). Zero charge gives 1.
func ImpulseMagnitude(charge int, scale float64) float64 {
	return math.Pow(2, 2*float64(charge)/scale)
}

// LaunchVector is the throw impulse: forward scaled by magnitude plus a
// fixed upward bias.
func LaunchVector(forward mgl64.Vec3, magnitude float64, upBias mgl64.Vec3) mgl64.Vec3 {
	if forward.Len() > 0 {
		forward = forward.Normalize()
	}
	return forward.Mul(magnitude).Add(upBias)
}

// ThrowProtocol turns a press-and-hold into a launch magnitude.
// Idle -> Charging while the throw key is held with the ball in hand,
// Charging -> Released when the key goes up.
//
// Ticks where the key is only assumed down still charge, but on release
// the charge falls back to the last tick the key was reported, so an
// inferred release delay adds no power.
type ThrowProtocol struct {
	phase     ThrowPhase
	charge    int
	confirmed int
	maxTicks  int
	scale     float64
}

// NewThrowProtocol creates an idle protocol.
func NewThrowProtocol(maxTicks int, scale float64) *ThrowProtocol {
	return &ThrowProtocol{maxTicks: maxTicks, scale: scale}
}

// Phase returns the current phase.
func (t *ThrowProtocol) Phase() ThrowPhase { return t.phase }

// Charge returns the charge counter.
func (t *ThrowProtocol) Charge() int { return t.charge }

// Gauge returns the reported charge as a fraction of the maximum, 0 unless
// charging.
func (t *ThrowProtocol) Gauge() float64 {
	if t.phase != ThrowCharging || t.maxTicks <= 0 {
		return 0
	}
	return float64(t.confirmed) / float64(t.maxTicks)
}

// Charging reports whether the power gauge should be visible.
func (t *ThrowProtocol) Charging() bool {
	return t.phase == ThrowCharging
}

// Tick advances the protocol by one input tick. keyHeld is the throw key
// state, ballHeld whether the ball is still in hand. It returns the launch
// magnitude and true on the tick the throw is released.
func (t *ThrowProtocol) Tick(keyHeld, ballHeld bool) (float64, bool) {
	return t.TickKey(keyHeld, false, ballHeld)
}

// TickKey is Tick with the key state split in two: reported when a key
// event says it is down this tick, assumed when it only may still be down.
//
// A charge whose ball is no longer held when the key goes up is dropped.
func (t *ThrowProtocol) TickKey(reported, assumed, ballHeld bool) (float64, bool) {
	down := reported || assumed
	switch t.phase {
	case ThrowIdle:
		if down && ballHeld {
			t.phase = ThrowCharging
			t.charge = 0
			t.confirmed = 0
			t.increment(reported)
		}
	case ThrowCharging:
		if down {
			t.increment(reported)
			return 0, false
		}
		if !ballHeld {
			t.Cancel()
			return 0, false
		}
		t.charge = t.confirmed
		t.phase = ThrowReleased
		return ImpulseMagnitude(t.charge, t.scale), true
	case ThrowReleased:
		// Waiting for Complete
	}
	return 0, false
}

func (t *ThrowProtocol) increment(reported bool) {
	if t.charge < t.maxTicks {
		t.charge++
	}
	if reported {
		t.confirmed = t.charge
	}
}

// Complete ends a released cycle and returns to Idle.
func (t *ThrowProtocol) Complete() {
	t.phase = ThrowIdle
	t.charge = 0
	t.confirmed = 0
}

// Cancel drops any charge in progress.
func (t *ThrowProtocol) Cancel() {
	t.phase = ThrowIdle
	t.charge = 0
	t.confirmed = 0
}
