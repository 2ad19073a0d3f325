package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

// cellStyles maps the court palette to lipgloss styles.
var cellStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorCourt:   lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorFloor:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorBall:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorHoop:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorAim:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	core.ColorPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[startColor]
			if !ok {
				style = cellStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
