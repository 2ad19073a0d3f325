package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/hoops"
	"github.com/vovakirdan/tui-hoops/internal/screens"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

// Options configures an App.
type Options struct {
	Config  config.HoopsConfig
	Loader  screens.GameLoader
	Court   string // court id stored with scores
	Store   *storage.Store
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Player  string
}

// loadedMsg carries the result of an async screen load.
type loadedMsg struct {
	pending *screens.Pending
	next    screens.Screen
	err     error
}

// App is the Bubble Tea model for a whole play session: the screen
// machine, the key mapping and the views around it.
type App struct {
	machine *screens.Machine
	keys    KeyMap
	holds   *HoldTracker
	in      core.InputFrame
	screen  *core.Screen

	cfg     config.HoopsConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	court   string
	player  string

	round    string // uuid of the running round
	saved    bool   // round score written
	loading  bool
	quitting bool

	spinner spinner.Model
	gauge   progress.Model
	help    help.Model
}

// NewApp creates the app model showing START.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	gauge := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	gauge.Width = 30

	return App{
		machine: screens.NewMachine(opts.Config, opts.Loader, screens.WithLogger(logger)),
		keys:    DefaultKeyMap(),
		holds:   NewHoldTracker(opts.Config.ReleaseAfter(), nil),
		in:      core.NewInputFrame(),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		cfg:     opts.Config,
		runtime: rt,
		store:   opts.Store,
		logger:  logger,
		court:   opts.Court,
		player:  opts.Player,
		spinner: sp,
		gauge:   gauge,
		help:    help.New(),
	}
}

// Machine returns the screen machine.
func (m App) Machine() *screens.Machine { return m.machine }

// Init starts the frame and clock ticks.
func (m App) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), secondCmd(), m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case SecondMsg:
		return m.handleSecond()

	case loadedMsg:
		m.loading = false
		m.commit(msg.pending, msg.next, msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.machine.Err() != nil {
		m.machine.ClearErr()
	}

	if gs, ok := m.machine.Current().(*screens.GameScreen); ok {
		a := m.keys.GameAction(msg, gs.GameOver())
		switch a {
		case core.ActionQuit:
			return m.quit()
		case core.ActionNone:
		case core.ActionMainMenu:
			if t, ok := m.machine.Handle(a); ok {
				return m.transition(t)
			}
		case core.ActionThrow:
			m.holds.Press(a)
			m.in.Set(a)
		default:
			m.in.Set(a)
		}
		return m, nil
	}

	a := m.keys.MenuAction(msg)
	if a == core.ActionQuit {
		return m.quit()
	}
	if t, ok := m.machine.Handle(a); ok {
		return m.transition(t)
	}
	return m, nil
}

func (m App) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.machine.Dispose()
	m.logger.Info("session ended", "player", m.player)
	return m, tea.Quit
}

// transition starts a screen change. Menus are built in place; GAME loads
// in the background while the spinner runs.
func (m App) transition(t screens.Transition) (tea.Model, tea.Cmd) {
	p, err := m.machine.Begin(t)
	if err != nil {
		m.logger.Warn("transition rejected", "to", t.To, "err", err)
		return m, nil
	}
	m.holds.Release()
	m.in.Clear()

	if t.To != screens.Game {
		next, err := m.machine.Load(context.Background(), p)
		m.commit(p, next, err)
		return m, nil
	}

	m.loading = true
	machine := m.machine
	return m, func() tea.Msg {
		next, err := machine.Load(context.Background(), p)
		return loadedMsg{pending: p, next: next, err: err}
	}
}

func (m *App) commit(p *screens.Pending, next screens.Screen, loadErr error) {
	if err := m.machine.Commit(p, next, loadErr); err != nil {
		if errors.Is(err, screens.ErrStalePending) {
			m.logger.Warn("dropped stale load", "to", p.To.To)
		}
		return
	}
	gs, ok := m.machine.Current().(*screens.GameScreen)
	if !ok {
		return
	}
	gs.Game().Reset(m.gameRuntime())
	m.round = uuid.NewString()
	m.saved = false
	m.logger.Info("round started",
		"round", m.round,
		"player", m.player,
		"court", m.court,
		"difficulty", gs.Game().Difficulty(),
	)
}

// gameRuntime is the runtime config for the court view, one row shorter
// than the terminal to leave room for the gauge or help line.
func (m App) gameRuntime() core.RuntimeConfig {
	rt := m.runtime
	rt.ScreenH = max(rt.ScreenH-1, 1)
	return rt
}

func (m App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	rt := m.gameRuntime()
	m.screen.Resize(rt.ScreenW, rt.ScreenH)
	m.help.Width = msg.Width
	m.gauge.Width = min(40, max(msg.Width-20, 10))

	if gs, ok := m.machine.Current().(*screens.GameScreen); ok {
		gs.Game().Reset(rt)
	}
	return m, nil
}

func (m App) handleTick() (tea.Model, tea.Cmd) {
	if gs, ok := m.machine.Current().(*screens.GameScreen); ok {
		frame := m.in.Clone()
		m.holds.Apply(&frame)
		res := gs.Step(frame)
		m.afterStep(res)
	}
	m.in.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

func (m App) handleSecond() (tea.Model, tea.Cmd) {
	if gs, ok := m.machine.Current().(*screens.GameScreen); ok {
		m.afterStep(gs.SecondTick())
	}
	return m, secondCmd()
}

// afterStep logs gameplay events and stores the score once the round ends.
func (m *App) afterStep(res hoops.StepResult) {
	for _, e := range res.Events {
		switch e.Kind {
		case hoops.EventThrow:
			m.logger.Debug("throw", "round", m.round, "charge", e.Charge, "impulse", e.Magnitude)
		case hoops.EventScore:
			m.logger.Info("score", "round", m.round, "hoop", e.Hoop, "points", e.Points)
		case hoops.EventScoreRejected:
			m.logger.Debug("score rejected", "round", m.round, "hoop", e.Hoop, "verdict", e.Verdict)
		default:
			m.logger.Debug(e.Kind.String(), "round", m.round)
		}
	}

	if !res.State.GameOver || m.saved {
		return
	}
	m.saved = true
	m.logger.Info("round over", "round", m.round, "points", res.State.Score)

	if m.store == nil || res.State.Score == 0 {
		return
	}
	gs, ok := m.machine.Current().(*screens.GameScreen)
	if !ok {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		SessionID:  m.round,
		Difficulty: string(gs.Game().Difficulty()),
		Court:      m.court,
		Points:     res.State.Score,
	})
	if err != nil {
		m.logger.Warn("could not save score", "round", m.round, "err", err)
	}
}

// View renders the active screen.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return m.loadingView()
	}

	switch cur := m.machine.Current().(type) {
	case *screens.GameScreen:
		return m.gameView(cur)
	case *screens.Menu:
		return m.menuView(cur)
	}
	return ""
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
