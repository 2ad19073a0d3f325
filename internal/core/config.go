package core

// RuntimeConfig contains the platform settings handed to a game when it starts.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameSeconds returns the duration of one frame in seconds.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the platform-visible summary of a running round.
type GameState struct {
	Score            int  // Points scored so far
	RemainingSeconds int  // Seconds left on the round clock
	GameOver         bool // Round has ended
	Paused           bool // Round is paused
	BallHeld         bool // Player is holding the ball
}
