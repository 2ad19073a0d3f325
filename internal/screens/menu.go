package screens

import (
	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/hoops"
)

// MenuOption is one selectable menu entry.
type MenuOption struct {
	Label string
	Hint  string
	Go    Transition
}

// Menu is a screen made of a title, optional body text and options.
// START, INSTRUCTIONS and DIFFICULTY are all menus.
type Menu struct {
	control
	id       ID
	title    string
	subtitle string
	body     []string
	options  []MenuOption
	back     *Transition
	cursor   int
}

// ID returns the screen id.
func (m *Menu) ID() ID { return m.id }

// Title returns the heading.
func (m *Menu) Title() string { return m.title }

// Subtitle returns the line under the heading.
func (m *Menu) Subtitle() string { return m.subtitle }

// Body returns the text shown above the options.
func (m *Menu) Body() []string { return m.body }

// Options returns the menu entries.
func (m *Menu) Options() []MenuOption { return m.options }

// Cursor returns the highlighted option index.
func (m *Menu) Cursor() int { return m.cursor }

// Handle moves the cursor or returns the selected transition.
func (m *Menu) Handle(a core.Action) (Transition, bool) {
	if !m.attached || len(m.options) == 0 {
		return Transition{}, false
	}
	switch a {
	case core.ActionUp:
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case core.ActionDown:
		m.cursor = (m.cursor + 1) % len(m.options)
	case core.ActionConfirm:
		return m.options[m.cursor].Go, true
	case core.ActionBack:
		if m.back != nil {
			return *m.back, true
		}
	}
	return Transition{}, false
}

// NewStartMenu builds the START screen.
func NewStartMenu() *Menu {
	return &Menu{
		id:       Start,
		title:    "H O O P S",
		subtitle: "Beat the clock. Sink the shots.",
		options: []MenuOption{
			{Label: "Play", Hint: "choose a difficulty", Go: Transition{To: Difficulty}},
			{Label: "How to Play", Hint: "controls and scoring", Go: Transition{To: Instructions}},
		},
	}
}

// NewInstructionsMenu builds the INSTRUCTIONS screen.
func NewInstructionsMenu() *Menu {
	toStart := Transition{To: Start}
	return &Menu{
		id:    Instructions,
		title: "How to Play",
		body: []string{
			"Controls",
			"  W A S D      walk around the court",
			"  Arrow keys   look left, right, up and down",
			"  E            pick up the ball when the prompt shows",
			"  P / Esc      pause and resume",
			"",
			"Shoot",
			"  Hold SPACE to charge the power gauge, let go to throw.",
			"  A fuller gauge throws much harder.",
			"",
			"Score",
			"  2 points for every ball that drops through a rim.",
			"  Score as much as you can before time runs out.",
		},
		options: []MenuOption{
			{Label: "Play", Go: Transition{To: Difficulty}},
			{Label: "Main Menu", Go: toStart},
		},
		back: &toStart,
	}
}

// NewDifficultyMenu builds the DIFFICULTY screen with round lengths from cfg.
func NewDifficultyMenu(cfg config.HoopsConfig) *Menu {
	toStart := Transition{To: Start}
	options := make([]MenuOption, 0, 4)
	for _, d := range config.Difficulties() {
		options = append(options, MenuOption{
			Label: d.Title(),
			Hint:  hoops.FormatTime(cfg.Seconds(d)),
			Go:    Transition{To: Game, Difficulty: d},
		})
	}
	options = append(options, MenuOption{Label: "Back", Go: toStart})
	return &Menu{
		id:       Difficulty,
		title:    "Choose your Difficulty",
		subtitle: "The harder it gets, the less time you have",
		options:  options,
		back:     &toStart,
	}
}
