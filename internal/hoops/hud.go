package hoops

// Overlay receives indicator values. The core only sets them and never
// draws them itself.
type Overlay interface {
	SetGrabIndicator(visible bool)
	SetPowerGauge(visible bool, fraction float64)
	SetScoreText(text string)
	SetTimerText(text string)
}

// HUD is the plain-value Overlay the terminal views read from.
type HUD struct {
	GrabIndicator bool
	GaugeVisible  bool
	Gauge         float64
	ScoreText     string
	TimerText     string
}

func (h *HUD) SetGrabIndicator(visible bool) { h.GrabIndicator = visible }

func (h *HUD) SetPowerGauge(visible bool, fraction float64) {
	h.GaugeVisible = visible
	h.Gauge = fraction
}

func (h *HUD) SetScoreText(text string) { h.ScoreText = text }

func (h *HUD) SetTimerText(text string) { h.TimerText = text }
