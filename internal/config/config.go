// Package config provides YAML-based game configuration loading,
// court layouts and difficulty presets for the hoops game.
package config

import "github.com/go-gl/mathgl/mgl64"

// HoopsConfig contains all tunable gameplay parameters.
type HoopsConfig struct {
	Difficulty DifficultySeconds `yaml:"difficulty"`
	Player     PlayerConfig      `yaml:"player"`
	Throw      ThrowConfig       `yaml:"throw"`
	Ball       BallConfig        `yaml:"ball"`
	Scoring    ScoringConfig     `yaml:"scoring"`
	Physics    PhysicsConfig     `yaml:"physics"`
	Loading    LoadingConfig     `yaml:"loading"`
}

// DifficultySeconds maps each difficulty to its round length in seconds.
type DifficultySeconds struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// PlayerConfig defines the camera-controlled player.
type PlayerConfig struct {
	MaxGrabDistance float64  `yaml:"max_grab_distance"`
	MoveStep        float64  `yaml:"move_step"`         // world units per movement key press
	TurnStepDeg     float64  `yaml:"turn_step_degrees"` // yaw change per look key press
	PitchStepDeg    float64  `yaml:"pitch_step_degrees"`
	MaxPitchDeg     float64  `yaml:"max_pitch_degrees"`
	HoldOffset      Position `yaml:"hold_offset"` // right, up, forward relative to the eye
}

// ThrowConfig defines the power-charge throw.
type ThrowConfig struct {
	MaxChargeTicks int      `yaml:"max_charge_ticks"`
	ChargeScale    float64  `yaml:"charge_scale"`
	UpBias         Position `yaml:"up_bias"`
	ReleaseAfterMS int      `yaml:"release_after_ms"` // key considered let go after this long without a repeat
}

// BallConfig defines the ball body.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Mass        float64 `yaml:"mass"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
}

// ScoringConfig defines points and the hoop detection zone.
type ScoringConfig struct {
	PointsPerBasket int     `yaml:"points_per_basket"`
	ZoneRadius      float64 `yaml:"zone_radius"`
}

// PhysicsConfig defines world simulation parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	RestThreshold float64 `yaml:"rest_threshold"` // bounces slower than this stop
}

// LoadingConfig bounds asynchronous asset loading.
type LoadingConfig struct {
	TimeoutMS int `yaml:"timeout_ms"`
}

// Position is a YAML-friendly 3D vector.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 converts the position to a math vector.
func (p Position) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Seconds returns the round length for a difficulty.
// Unknown difficulties fall back to medium.
func (c HoopsConfig) Seconds(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return c.Difficulty.Easy
	case DifficultyHard:
		return c.Difficulty.Hard
	default:
		return c.Difficulty.Medium
	}
}
