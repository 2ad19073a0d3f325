package config

import (
	_ "embed"
)

//go:embed defaults/hoops.yaml
var defaultHoopsYAML []byte

// DefaultConfig returns the hard-coded gameplay configuration.
// It matches defaults/hoops.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() HoopsConfig {
	return HoopsConfig{
		Difficulty: DifficultySeconds{
			Easy:   90,
			Medium: 60,
			Hard:   30,
		},
		Player: PlayerConfig{
			MaxGrabDistance: 4,
			MoveStep:        0.25,
			TurnStepDeg:     3,
			PitchStepDeg:    3,
			MaxPitchDeg:     80,
			HoldOffset:      Position{X: 0.3, Y: -0.2, Z: 1.0},
		},
		Throw: ThrowConfig{
			MaxChargeTicks: 60, // ~1 second at 60Hz
			ChargeScale:    30,
			UpBias:         Position{Y: 5},
			ReleaseAfterMS: 500,
		},
		Ball: BallConfig{
			Radius:      0.2,
			Mass:        1,
			Restitution: 0.5,
			Friction:    1,
		},
		Scoring: ScoringConfig{
			PointsPerBasket: 2,
			ZoneRadius:      0.2,
		},
		Physics: PhysicsConfig{
			Gravity:       -9.81,
			RestThreshold: 0.5,
		},
		Loading: LoadingConfig{
			TimeoutMS: 5000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHoopsYAML
}
