package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hoops/internal/screens"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("94"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("137")).
			Padding(1, 3)
)

func (m App) place(content string) string {
	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

func (m App) loadingView() string {
	label := "Loading court..."
	if t, ok := m.machine.PendingTarget(); ok && t.Difficulty != "" {
		label = fmt.Sprintf("Loading %s court...", t.Difficulty.Title())
	}
	return m.place(m.spinner.View() + " " + label)
}

func (m App) menuView(menu *screens.Menu) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(menu.Title()))
	b.WriteString("\n")
	if sub := menu.Subtitle(); sub != "" {
		b.WriteString(subtitleStyle.Render(sub))
		b.WriteString("\n")
	}

	if body := menu.Body(); len(body) > 0 {
		b.WriteString(bodyStyle.Render(strings.Join(body, "\n")))
		b.WriteString("\n\n")
	}

	for i, opt := range menu.Options() {
		label := "  " + opt.Label + "  "
		if i == menu.Cursor() {
			b.WriteString(selectedStyle.Render("> " + opt.Label + " "))
		} else {
			b.WriteString(optionStyle.Render(label))
		}
		if opt.Hint != "" {
			b.WriteString(hintStyle.Render("  " + opt.Hint))
		}
		b.WriteString("\n")
	}

	if err := m.machine.Err(); err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
	}

	panel := panelStyle.Render(strings.TrimRight(b.String(), "\n"))
	return m.place(lipgloss.JoinVertical(lipgloss.Center,
		panel,
		hintStyle.Render(m.help.View(menuHelp(m.keys))),
	))
}

func (m App) gameView(gs *screens.GameScreen) string {
	g := gs.Game()
	g.Render(m.screen)

	var footer string
	hud := g.HUD()
	if hud.GaugeVisible {
		footer = " Power " + m.gauge.ViewAs(hud.Gauge)
	} else {
		footer = " " + m.help.View(gameHelp{keys: m.keys, gameOver: gs.GameOver()})
	}
	return RenderScreen(m.screen) + "\n" + footer
}
