package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the court renderer and HUD.
const (
	ColorDefault Color = iota
	ColorCourt         // court lines and walls
	ColorFloor         // court floor markings
	ColorBall          // basketball
	ColorHoop          // rims and backboards
	ColorPlayer        // player marker
	ColorAim           // aim line from the player
	ColorPrompt        // grab prompt
	ColorHUD           // score and timer text
	ColorAlert         // time's up and load errors
	ColorMuted         // hints and disabled text
)

// Cell is a single character cell of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}
