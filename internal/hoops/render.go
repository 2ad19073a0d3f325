package hoops

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// Visual characters for the top-down court view.
const (
	BallChar      = '●'
	BallHighChar  = '○' // ball above rim height
	RimChar       = 'O'
	BackboardChar = '┃'
	MidlineChar   = '┊'
	AimChar       = '·'
)

// arrows indexed by screen heading, clockwise from east.
var arrows = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// viewport maps the court floor onto a screen rectangle. The court length
// (z) runs left to right and its width (x) top to bottom.
type viewport struct {
	area  Area
	frame core.Rect
}

func (v viewport) project(p mgl64.Vec3) (int, int) {
	inner := v.frame.Inset(1)
	fx := core.ClampF((p.Z()-v.area.MinZ)/(v.area.MaxZ-v.area.MinZ), 0, 1)
	fy := core.ClampF((p.X()-v.area.MinX)/(v.area.MaxX-v.area.MinX), 0, 1)
	x := inner.X + int(math.Round(fx*float64(inner.W-1)))
	y := inner.Y + int(math.Round(fy*float64(inner.H-1)))
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.session

	// Row 0 is the HUD and the last row the prompt.
	b := dst.Bounds()
	frame := core.NewRect(b.X, b.Y+1, b.W, b.H-2)
	if frame.W < 6 || frame.H < 4 {
		dst.DrawTextColored(0, 0, "Terminal too small", core.ColorAlert)
		return
	}
	vp := viewport{area: s.court.Floor, frame: frame}

	g.drawCourt(dst, vp)
	g.drawHoops(dst, vp)
	g.drawAim(dst, vp)
	g.drawBall(dst, vp)
	g.drawPlayer(dst, vp)
	g.drawHUD(dst)

	if s.Paused() {
		drawCenteredMessage(dst, "PAUSED", "Press P or Esc to resume")
	}
	if s.GameOver() {
		drawCenteredMessage(dst, TimeUpText, fmt.Sprintf("Score: %d  |  Press M for main menu", s.Points()))
	}
}

func (g *Game) drawCourt(dst *core.Screen, vp viewport) {
	dst.DrawBoxColored(vp.frame, core.ColorCourt)
	mx, _ := vp.project(mgl64.Vec3{0, 0, 0})
	inner := vp.frame.Inset(1)
	dst.DrawVLine(mx, inner.Y, inner.H, MidlineChar, core.ColorFloor)
}

func (g *Game) drawHoops(dst *core.Screen, vp viewport) {
	for _, h := range g.session.court.Hoops {
		if h.BoardHalf != (mgl64.Vec3{}) {
			bx, by0 := vp.project(mgl64.Vec3{h.Backboard.X() - h.BoardHalf.X(), 0, h.Backboard.Z()})
			_, by1 := vp.project(mgl64.Vec3{h.Backboard.X() + h.BoardHalf.X(), 0, h.Backboard.Z()})
			for y := by0; y <= by1; y++ {
				dst.SetColored(bx, y, BackboardChar, core.ColorHoop)
			}
		}
		x0, y := vp.project(h.Rim.Sub(mgl64.Vec3{0, 0, h.RimRadius}))
		x1, _ := vp.project(h.Rim.Add(mgl64.Vec3{0, 0, h.RimRadius}))
		dst.DrawHLine(x0, y, x1-x0+1, RimChar, core.ColorHoop)
	}
}

// drawAim dots the floor projection of the reach along the facing.
func (g *Game) drawAim(dst *core.Screen, vp viewport) {
	s := g.session
	if s.GameOver() {
		return
	}
	color := core.ColorAim
	if g.hud.GrabIndicator {
		color = core.ColorPrompt
	}
	ground := s.player.Ground()
	for d := 0.5; d <= s.player.MaxGrabDistance; d += 0.5 {
		x, y := vp.project(s.player.Eye.Add(ground.Mul(d)))
		if dst.Get(x, y) == ' ' {
			dst.SetColored(x, y, AimChar, color)
		}
	}
}

func (g *Game) drawBall(dst *core.Screen, vp viewport) {
	s := g.session
	if s.ball == nil {
		return
	}
	pos, err := s.phys.Position(s.ball.Mesh)
	if err != nil {
		return
	}
	ch := BallChar
	if len(s.court.Hoops) > 0 && pos.Y() > s.court.Hoops[0].Rim.Y() {
		ch = BallHighChar
	}
	x, y := vp.project(pos)
	dst.SetColored(x, y, ch, core.ColorBall)
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	p := g.session.player
	x, y := vp.project(p.Eye)
	// Screen x follows z and screen y follows x, so heading is atan2(x, z)
	f := p.Ground()
	angle := math.Atan2(f.X(), f.Z())
	idx := int(math.Round(angle/(math.Pi/4))) % len(arrows)
	if idx < 0 {
		idx += len(arrows)
	}
	dst.SetColored(x, y, arrows[idx], core.ColorPlayer)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	left := fmt.Sprintf(" %s   %s ", g.hud.ScoreText, g.hud.TimerText)
	timerColor := core.ColorHUD
	if s.GameOver() || s.RemainingSeconds() <= 10 {
		timerColor = core.ColorAlert
	}
	dst.DrawTextColored(0, 0, left, timerColor)

	right := fmt.Sprintf(" %s · %s · look %+.0f° ", s.court.Name, s.difficulty.Title(), mgl64.RadToDeg(s.player.Pitch))
	dst.DrawTextColored(dst.Width()-runeLen(right), 0, right, core.ColorMuted)

	bottom := dst.Height() - 1
	switch {
	case s.GameOver():
		dst.DrawTextColored(1, bottom, "Round over", core.ColorAlert)
	case s.ball == nil:
		dst.DrawTextColored(1, bottom, "Waiting for the ball...", core.ColorMuted)
	case g.hud.GaugeVisible:
		dst.DrawTextColored(1, bottom, "Charging... release SPACE to throw", core.ColorPrompt)
	case s.BallHeld():
		dst.DrawTextColored(1, bottom, "Hold SPACE to charge a throw", core.ColorPrompt)
	case g.hud.GrabIndicator:
		dst.DrawTextColored(1, bottom, "[E] Grab the ball", core.ColorPrompt)
	default:
		dst.DrawTextColored(1, bottom, "Find the ball: WASD move, arrows look", core.ColorMuted)
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(runeLen(title), runeLen(subtitle)) + 4
	boxH := 5
	cx, cy := dst.Bounds().Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorHUD)

	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorAlert)
	dst.DrawTextCenteredColored(box.Y+3, subtitle, core.ColorHUD)
}
