package screens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/hoops"
)

var (
	// ErrInvalidTransition is returned for a move the screen graph does not allow.
	ErrInvalidTransition = errors.New("screens: invalid transition")
	// ErrTransitionPending is returned when a transition is already in flight.
	ErrTransitionPending = errors.New("screens: transition already pending")
	// ErrGameInProgress is returned when leaving GAME before the round ends.
	ErrGameInProgress = errors.New("screens: game still in progress")
	// ErrStalePending is returned when committing a transition that is no
	// longer the pending one.
	ErrStalePending = errors.New("screens: stale transition")
	// ErrLoadTimeout is returned when the game assets are not ready in time.
	ErrLoadTimeout = errors.New("screens: loading timed out")
)

// DefaultLoadTimeout bounds GAME loading when no timeout is configured.
const DefaultLoadTimeout = 5 * time.Second

var allowed = map[ID][]ID{
	Start:        {Difficulty, Instructions},
	Instructions: {Difficulty, Start},
	Difficulty:   {Game, Start},
	Game:         {Start},
}

// Allowed reports whether the screen graph has an edge from -> to.
func Allowed(from, to ID) bool {
	for _, id := range allowed[from] {
		if id == to {
			return true
		}
	}
	return false
}

// GameLoader builds a ready-to-play game for a difficulty. It must honour
// ctx cancellation.
type GameLoader interface {
	LoadGame(ctx context.Context, d config.Difficulty) (*hoops.Game, error)
}

// Pending is an in-flight transition returned by Begin.
type Pending struct {
	From Screen
	To   Transition
	seq  int
}

// Machine owns the active screen and swaps it atomically.
//
// Begin and Commit run on the owner's goroutine. Load reads only fields
// fixed at construction, so it may run elsewhere while the outgoing screen
// is detached.
type Machine struct {
	current Screen
	pending *Pending
	seq     int
	err     error

	cfg     config.HoopsConfig
	loader  GameLoader
	timeout time.Duration
	logger  *log.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger for transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithLoadTimeout overrides the GAME loading timeout.
func WithLoadTimeout(d time.Duration) Option {
	return func(m *Machine) { m.timeout = d }
}

// NewMachine creates a machine showing START.
func NewMachine(cfg config.HoopsConfig, loader GameLoader, opts ...Option) *Machine {
	m := &Machine{
		cfg:     cfg,
		loader:  loader,
		timeout: cfg.LoadTimeout(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.timeout <= 0 {
		m.timeout = DefaultLoadTimeout
	}
	m.current = NewStartMenu()
	m.current.AttachControl()
	return m
}

// Current returns the active screen.
func (m *Machine) Current() Screen { return m.current }

// Pending reports whether a transition is in flight.
func (m *Machine) Pending() bool { return m.pending != nil }

// PendingTarget returns the screen being loaded, if any.
func (m *Machine) PendingTarget() (Transition, bool) {
	if m.pending == nil {
		return Transition{}, false
	}
	return m.pending.To, true
}

// Err returns the last failed transition's error, cleared by the next Begin.
func (m *Machine) Err() error { return m.err }

// ClearErr dismisses the last error.
func (m *Machine) ClearErr() { m.err = nil }

// Handle forwards a menu-level action to the active screen.
func (m *Machine) Handle(a core.Action) (Transition, bool) {
	if m.pending != nil {
		return Transition{}, false
	}
	return m.current.Handle(a)
}

// Begin validates a transition and detaches input from the outgoing screen.
func (m *Machine) Begin(t Transition) (*Pending, error) {
	if m.pending != nil {
		return nil, ErrTransitionPending
	}
	from := m.current.ID()
	if !Allowed(from, t.To) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, t.To)
	}
	if gs, ok := m.current.(*GameScreen); ok && !gs.GameOver() {
		return nil, ErrGameInProgress
	}
	if t.To == Game {
		if _, err := config.ParseDifficulty(string(t.Difficulty)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}
	}

	m.current.DetachControl()
	m.err = nil
	m.seq++
	m.pending = &Pending{From: m.current, To: t, seq: m.seq}
	m.logger.Debug("transition started", "from", from, "to", t.To, "difficulty", t.Difficulty)
	return m.pending, nil
}

// Load builds the target screen. GAME waits for the loader, bounded by the
// load timeout.
func (m *Machine) Load(ctx context.Context, p *Pending) (Screen, error) {
	switch p.To.To {
	case Start:
		return NewStartMenu(), nil
	case Instructions:
		return NewInstructionsMenu(), nil
	case Difficulty:
		return NewDifficultyMenu(m.cfg), nil
	case Game:
		g, err := m.loadGame(ctx, p.To.Difficulty)
		if err != nil {
			return nil, err
		}
		return NewGameScreen(g), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, p.To.To)
	}
}

type loadResult struct {
	game *hoops.Game
	err  error
}

func (m *Machine) loadGame(ctx context.Context, d config.Difficulty) (*hoops.Game, error) {
	if m.loader == nil {
		return nil, errors.New("screens: no game loader")
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan loadResult, 1)
	go func() {
		g, err := m.loader.LoadGame(ctx, d)
		done <- loadResult{game: g, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && errors.Is(r.err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrLoadTimeout, r.err)
		}
		return r.game, r.err
	case <-ctx.Done():
		// A late result is released when it arrives.
		go func() {
			if r := <-done; r.game != nil {
				r.game.Dispose()
			}
		}()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrLoadTimeout, m.timeout)
		}
		return nil, ctx.Err()
	}
}

// Commit finishes a transition. On success the outgoing screen is disposed
// and the new one attached. On failure the outgoing screen gets its input
// back and the error is kept for display.
func (m *Machine) Commit(p *Pending, next Screen, loadErr error) error {
	if p == nil || m.pending == nil || p.seq != m.pending.seq {
		if next != nil {
			next.Dispose()
		}
		return ErrStalePending
	}
	m.pending = nil

	if loadErr != nil || next == nil {
		if loadErr == nil {
			loadErr = errors.New("no screen")
		}
		p.From.AttachControl()
		m.err = fmt.Errorf("screens: load %s: %w", p.To.To, loadErr)
		m.logger.Error("transition failed", "from", p.From.ID(), "to", p.To.To, "err", loadErr)
		return m.err
	}

	p.From.Dispose()
	next.AttachControl()
	m.current = next
	m.logger.Info("screen changed", "from", p.From.ID(), "to", next.ID(), "difficulty", p.To.Difficulty)
	return nil
}

// Go runs Begin, Load and Commit in one call.
func (m *Machine) Go(ctx context.Context, t Transition) error {
	p, err := m.Begin(t)
	if err != nil {
		return err
	}
	next, err := m.Load(ctx, p)
	return m.Commit(p, next, err)
}

// Dispose releases the active screen.
func (m *Machine) Dispose() {
	m.current.Dispose()
}
