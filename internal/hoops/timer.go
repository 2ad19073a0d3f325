package hoops

import "fmt"

// TimeUpText replaces the countdown once the round ends.
const TimeUpText = "TIME'S UP"

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// RoundTimer counts a round down once per real second.
type RoundTimer struct {
	remaining int
	expired   bool
}

// NewRoundTimer starts a countdown of the given length.
func NewRoundTimer(seconds int) *RoundTimer {
	return &RoundTimer{remaining: max(seconds, 0)}
}

// Tick is called once per second with the pause state at firing time.
// It returns true exactly once, on the tick the countdown reaches zero.
func (t *RoundTimer) Tick(paused bool) bool {
	if t.expired || paused {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.expired = true
		return true
	}
	return false
}

// Remaining returns the seconds left.
func (t *RoundTimer) Remaining() int { return t.remaining }

// Expired reports whether the round is over.
func (t *RoundTimer) Expired() bool { return t.expired }

// Text returns the countdown display.
func (t *RoundTimer) Text() string {
	if t.expired {
		return TimeUpText
	}
	return FormatTime(t.remaining)
}
