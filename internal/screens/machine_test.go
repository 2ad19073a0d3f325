package screens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/hoops"
	"github.com/vovakirdan/tui-hoops/internal/physics"
)

// fakeLoader builds a tiny court. block, when set, holds the load until
// closed or the context ends.
type fakeLoader struct {
	err   error
	block chan struct{}
	calls int
}

func (f *fakeLoader) LoadGame(ctx context.Context, d config.Difficulty) (*hoops.Game, error) {
	f.calls++
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	w := physics.NewWorld(-9.81, 0.5)
	zone := w.AddZone("zone", mgl64.Vec3{0, 3, 5}, 0.2)
	court := &hoops.Court{
		ID:          "fake",
		Name:        "Fake",
		Phys:        w,
		Floor:       hoops.Area{MinX: -5, MaxX: 5, MinZ: -8, MaxZ: 8},
		Hoops:       []hoops.Hoop{{Name: "h", Rim: mgl64.Vec3{0, 3, 5}, RimRadius: 0.375, Zone: zone}},
		PlayerStart: mgl64.Vec3{0, 1, -4},
	}
	return hoops.New(config.DefaultConfig(), d, court), nil
}

func newTestMachine(loader GameLoader) *Machine {
	return NewMachine(config.DefaultConfig(), loader, WithLoadTimeout(200*time.Millisecond))
}

func finishRound(t *testing.T, m *Machine) {
	t.Helper()
	gs, ok := m.Current().(*GameScreen)
	if !ok {
		t.Fatalf("current screen = %v, expected GAME", m.Current().ID())
	}
	for i := 0; i < 200 && !gs.GameOver(); i++ {
		gs.SecondTick()
	}
}

func TestMachineStartsAtStart(t *testing.T) {
	m := newTestMachine(&fakeLoader{})
	if m.Current().ID() != Start {
		t.Errorf("initial screen = %v, expected START", m.Current().ID())
	}
	if !m.Current().Attached() {
		t.Error("initial screen should have input attached")
	}
}

func TestScreenReachability(t *testing.T) {
	tests := []struct {
		from, to ID
		expected bool
	}{
		{Start, Difficulty, true},
		{Start, Instructions, true},
		{Start, Game, false},
		{Instructions, Difficulty, true},
		{Instructions, Start, true},
		{Instructions, Game, false},
		{Difficulty, Game, true},
		{Difficulty, Start, true},
		{Difficulty, Instructions, false},
		{Game, Start, true},
		{Game, Difficulty, false},
		{Game, Instructions, false},
	}
	for _, tt := range tests {
		if got := Allowed(tt.from, tt.to); got != tt.expected {
			t.Errorf("Allowed(%v, %v) = %v, expected %v", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestMachineFullLoop(t *testing.T) {
	ctx := context.Background()
	m := newTestMachine(&fakeLoader{})

	steps := []Transition{
		{To: Instructions},
		{To: Start},
		{To: Difficulty},
		{To: Game, Difficulty: config.DifficultyHard},
	}
	for _, tr := range steps {
		prev := m.Current()
		if err := m.Go(ctx, tr); err != nil {
			t.Fatalf("Go(%v): %v", tr.To, err)
		}
		if m.Current().ID() != tr.To {
			t.Fatalf("current = %v, expected %v", m.Current().ID(), tr.To)
		}
		if prev.Attached() {
			t.Errorf("%v should be detached after leaving it", prev.ID())
		}
		if !m.Current().Attached() {
			t.Errorf("%v should be attached after entering it", tr.To)
		}
	}

	gs := m.Current().(*GameScreen)
	if gs.Game().Difficulty() != config.DifficultyHard || gs.Game().State().RemainingSeconds != 30 {
		t.Errorf("game = %v/%d, expected hard with 30s", gs.Game().Difficulty(), gs.Game().State().RemainingSeconds)
	}

	if err := m.Go(ctx, Transition{To: Start}); !errors.Is(err, ErrGameInProgress) {
		t.Errorf("leaving a running game error = %v, expected ErrGameInProgress", err)
	}
	if !gs.Attached() {
		t.Error("a rejected transition should leave the game attached")
	}

	finishRound(t, m)
	if err := m.Go(ctx, Transition{To: Start}); err != nil {
		t.Fatalf("Go(START) after game over: %v", err)
	}
	if m.Current().ID() != Start {
		t.Errorf("current = %v, expected START", m.Current().ID())
	}
	if !gs.Disposed() {
		t.Error("the finished game screen should be disposed")
	}
}

func TestMachineRejectsInvalidTransition(t *testing.T) {
	m := newTestMachine(&fakeLoader{})
	if err := m.Go(context.Background(), Transition{To: Game, Difficulty: config.DifficultyEasy}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("START -> GAME error = %v, expected ErrInvalidTransition", err)
	}
	if !m.Current().Attached() || m.Pending() {
		t.Error("rejected transition should not detach input or stay pending")
	}

	_ = m.Go(context.Background(), Transition{To: Difficulty})
	if err := m.Go(context.Background(), Transition{To: Game, Difficulty: "insane"}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("unknown difficulty error = %v, expected ErrInvalidTransition", err)
	}
}

func TestMachineSinglePendingTransition(t *testing.T) {
	m := newTestMachine(&fakeLoader{})
	p, err := m.Begin(Transition{To: Difficulty})
	if err != nil {
		t.Fatal(err)
	}
	if m.Current().Attached() {
		t.Error("Begin should detach the outgoing screen")
	}
	if _, err := m.Begin(Transition{To: Instructions}); !errors.Is(err, ErrTransitionPending) {
		t.Errorf("second Begin error = %v, expected ErrTransitionPending", err)
	}
	if _, ok := m.Handle(core.ActionConfirm); ok {
		t.Error("input should be ignored while a transition is pending")
	}

	next, err := m.Load(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Commit(p, next, nil); err != nil {
		t.Fatal(err)
	}
	if err := m.Commit(p, next, nil); !errors.Is(err, ErrStalePending) {
		t.Errorf("double Commit error = %v, expected ErrStalePending", err)
	}
}

func TestMachineLoadFailureRestoresInput(t *testing.T) {
	boom := errors.New("mesh import failed")
	m := newTestMachine(&fakeLoader{err: boom})
	_ = m.Go(context.Background(), Transition{To: Difficulty})

	err := m.Go(context.Background(), Transition{To: Game, Difficulty: config.DifficultyEasy})
	if !errors.Is(err, boom) {
		t.Fatalf("Go error = %v, expected the loader error", err)
	}
	if m.Current().ID() != Difficulty || !m.Current().Attached() {
		t.Error("failed load should re-attach the previous screen")
	}
	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err() = %v, expected the loader error", m.Err())
	}

	// The next transition clears the error
	if err := m.Go(context.Background(), Transition{To: Start}); err != nil {
		t.Fatal(err)
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v after a good transition, expected nil", m.Err())
	}
}

func TestMachineLoadTimeout(t *testing.T) {
	loader := &fakeLoader{block: make(chan struct{})}
	defer close(loader.block)

	m := newTestMachine(loader)
	_ = m.Go(context.Background(), Transition{To: Difficulty})

	start := time.Now()
	err := m.Go(context.Background(), Transition{To: Game, Difficulty: config.DifficultyMedium})
	if !errors.Is(err, ErrLoadTimeout) {
		t.Fatalf("Go error = %v, expected ErrLoadTimeout", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("timeout should not hang")
	}
	if m.Pending() || !m.Current().Attached() {
		t.Error("a timed-out load must not leave input detached")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newTestMachine(&fakeLoader{})

	// START: Play, How to Play
	if _, ok := m.Handle(core.ActionDown); ok {
		t.Fatal("cursor moves should not navigate")
	}
	tr, ok := m.Handle(core.ActionConfirm)
	if !ok || tr.To != Instructions {
		t.Fatalf("confirm on second entry = %+v, %v, expected INSTRUCTIONS", tr, ok)
	}
	if _, ok := m.Handle(core.ActionBack); ok {
		t.Error("START has no back action")
	}

	if err := m.Go(context.Background(), Transition{To: Difficulty}); err != nil {
		t.Fatal(err)
	}
	menu := m.Current().(*Menu)
	if len(menu.Options()) != 4 {
		t.Fatalf("difficulty options = %d, expected 4", len(menu.Options()))
	}
	if menu.Options()[0].Hint != "1:30" {
		t.Errorf("easy hint = %q, expected 1:30", menu.Options()[0].Hint)
	}
	m.Handle(core.ActionDown)
	m.Handle(core.ActionDown)
	tr, ok = m.Handle(core.ActionConfirm)
	if !ok || tr.To != Game || tr.Difficulty != config.DifficultyHard {
		t.Errorf("third option = %+v, expected GAME hard", tr)
	}
	m.Handle(core.ActionUp)
	m.Handle(core.ActionUp)
	m.Handle(core.ActionUp)
	if menu.Cursor() != 3 {
		t.Errorf("cursor should wrap to the last entry, got %d", menu.Cursor())
	}
	tr, ok = m.Handle(core.ActionBack)
	if !ok || tr.To != Start {
		t.Errorf("back = %+v, expected START", tr)
	}
}

func TestDetachedMenuIgnoresInput(t *testing.T) {
	menu := NewStartMenu()
	if _, ok := menu.Handle(core.ActionConfirm); ok {
		t.Error("a never-attached menu should ignore input")
	}
	menu.AttachControl()
	menu.Dispose()
	menu.AttachControl()
	if menu.Attached() {
		t.Error("a disposed screen cannot be re-attached")
	}
}

func TestGameScreenInput(t *testing.T) {
	ctx := context.Background()
	m := newTestMachine(&fakeLoader{})
	_ = m.Go(ctx, Transition{To: Difficulty})
	_ = m.Go(ctx, Transition{To: Game, Difficulty: config.DifficultyEasy})
	gs := m.Current().(*GameScreen)

	if _, ok := m.Handle(core.ActionMainMenu); ok {
		t.Error("main menu should be unavailable during the round")
	}

	gs.DetachControl()
	before := gs.Game().Session().Player().Eye
	gs.Step(func() core.InputFrame {
		in := core.NewInputFrame()
		in.Set(core.ActionMoveForward)
		return in
	}())
	if gs.Game().Session().Player().Eye != before {
		t.Error("a detached game screen should not receive input")
	}
	gs.AttachControl()

	finishRound(t, m)
	tr, ok := m.Handle(core.ActionMainMenu)
	if !ok || tr.To != Start {
		t.Errorf("main menu after game over = %+v, %v, expected START", tr, ok)
	}
}
