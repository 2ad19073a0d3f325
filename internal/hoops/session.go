// Package hoops implements the basketball game core: possession, the
// power-charge throw, score detection, the round timer and the session
// that ties them together.
package hoops

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/physics"
)

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventGrab EventKind = iota
	EventThrow
	EventScore
	EventScoreRejected
	EventPause
	EventResume
	EventTimeUp
	EventBallRespawn
)

func (k EventKind) String() string {
	switch k {
	case EventGrab:
		return "grab"
	case EventThrow:
		return "throw"
	case EventScore:
		return "score"
	case EventScoreRejected:
		return "score_rejected"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventTimeUp:
		return "time_up"
	case EventBallRespawn:
		return "ball_respawn"
	default:
		return "unknown"
	}
}

// Event is a gameplay notification returned from session operations.
type Event struct {
	Kind      EventKind
	Hoop      string       // score events
	Points    int          // total after a score
	Verdict   ScoreVerdict // score events
	Magnitude float64      // throw events
	Charge    int          // throw events
}

// Session is one round of play. All mutation goes through its methods.
type Session struct {
	cfg        config.HoopsConfig
	difficulty config.Difficulty
	court      *Court
	phys       Physics
	overlay    Overlay

	player     *Player
	ball       *Ball // nil until the ball is loaded
	possession *PossessionTracker
	throw      *ThrowProtocol
	detector   *ScoreDetector
	timer      *RoundTimer

	points   int
	paused   bool
	gameOver bool
	disposed bool
}

// NewSession starts a round on a built court.
func NewSession(cfg config.HoopsConfig, d config.Difficulty, court *Court, overlay Overlay) *Session {
	if overlay == nil {
		overlay = &HUD{}
	}
	s := &Session{
		cfg:        cfg,
		difficulty: d,
		court:      court,
		phys:       court.Phys,
		overlay:    overlay,
		player: &Player{
			Eye:             court.PlayerStart,
			Yaw:             court.PlayerYaw,
			MaxGrabDistance: cfg.Player.MaxGrabDistance,
			MaxPitch:        mgl64.DegToRad(cfg.Player.MaxPitchDeg),
		},
		possession: NewPossessionTracker(court.Phys),
		throw:      NewThrowProtocol(cfg.Throw.MaxChargeTicks, cfg.Throw.ChargeScale),
		detector:   NewScoreDetector(court.Phys, court.Hoops),
		timer:      NewRoundTimer(cfg.Seconds(d)),
	}
	s.refreshOverlay()
	return s
}

// AddBall hands the session its ball once loading finishes. The ball starts
// free with a body attached.
func (s *Session) AddBall(mesh physics.MeshID) error {
	if err := s.phys.AttachBody(mesh, s.bodyParams()); err != nil {
		return fmt.Errorf("hoops: add ball: %w", err)
	}
	s.ball = &Ball{Mesh: mesh, Mode: FreeBall{}}
	return nil
}

func (s *Session) bodyParams() physics.BodyParams {
	return physics.BodyParams{
		Mass:        s.cfg.Ball.Mass,
		Restitution: s.cfg.Ball.Restitution,
		Friction:    s.cfg.Ball.Friction,
	}
}

// Points returns the score.
func (s *Session) Points() int { return s.points }

// BallHeld reports whether the player holds the ball.
func (s *Session) BallHeld() bool { return s.ball.Held() }

// ScoredThisThrow reports whether the current throw cycle already scored.
func (s *Session) ScoredThisThrow() bool { return s.detector.Latched() }

// Paused reports whether the round is paused.
func (s *Session) Paused() bool { return s.paused }

// GameOver reports whether the round has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// RemainingSeconds returns the countdown value.
func (s *Session) RemainingSeconds() int { return s.timer.Remaining() }

// Player returns the player.
func (s *Session) Player() *Player { return s.player }

// Ball returns the ball, or nil before it is loaded.
func (s *Session) Ball() *Ball { return s.ball }

// Court returns the court.
func (s *Session) Court() *Court { return s.court }

// Difficulty returns the difficulty chosen for this round.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// Throw returns the throw protocol, for the power gauge.
func (s *Session) Throw() *ThrowProtocol { return s.throw }

// CheckGrabEligible reports whether the ball can be grabbed right now.
func (s *Session) CheckGrabEligible() bool {
	return s.possession.CheckGrabEligible(s.player, s.ball)
}

// PrimaryAction grabs the ball if it is free and eligible. Ignored while
// paused, after the round ends or before the ball exists.
func (s *Session) PrimaryAction() []Event {
	if s.disposed || s.gameOver || s.paused || s.ball == nil || s.ball.Held() {
		return nil
	}
	if !s.possession.CheckGrabEligible(s.player, s.ball) {
		return nil
	}

	mesh := s.ball.Mesh
	if err := s.phys.DetachBody(mesh); err != nil {
		return nil
	}
	if err := s.phys.SetParent(mesh, s.player, s.cfg.Player.HoldOffset.Vec3()); err != nil {
		_ = s.phys.AttachBody(mesh, s.bodyParams())
		return nil
	}
	s.ball.Mode = HeldBall{Holder: s.player}

	s.detector.ResetLatch()
	// A failed arm leaves this throw unable to score; the next grab retries.
	_ = s.detector.Arm(mesh)
	s.throw.Cancel()

	s.possession.Hide()
	s.refreshOverlay()
	return []Event{{Kind: EventGrab}}
}

// TogglePause pauses or resumes the round. Pausing drops any charge in
// progress and freezes the timer, physics and input capture.
func (s *Session) TogglePause() []Event {
	if s.disposed || s.gameOver {
		return nil
	}
	s.paused = !s.paused
	if s.paused {
		s.throw.Cancel()
		s.possession.Hide()
		s.refreshOverlay()
		return []Event{{Kind: EventPause}}
	}
	s.refreshOverlay()
	return []Event{{Kind: EventResume}}
}

// SecondTick advances the round timer. It reads the pause flag at the time
// it fires. Reaching zero ends the round exactly once.
func (s *Session) SecondTick() []Event {
	if s.disposed || s.gameOver {
		return nil
	}
	if !s.timer.Tick(s.paused) {
		s.refreshOverlay()
		return nil
	}
	s.gameOver = true
	s.throw.Cancel()
	s.possession.Hide()
	s.refreshOverlay()
	return []Event{{Kind: EventTimeUp, Points: s.points}}
}

// Step runs one frame: input, throw charge, physics, scoring, and the
// per-frame grab indicator poll.
func (s *Session) Step(in core.InputFrame, dt float64) []Event {
	if s.disposed {
		return nil
	}

	var events []Event
	if in.Has(core.ActionPause) {
		events = append(events, s.TogglePause()...)
	}
	if s.paused {
		return events
	}

	if !s.gameOver {
		s.applyMovement(in)
		if in.Has(core.ActionGrab) {
			events = append(events, s.PrimaryAction()...)
		}
		events = append(events, s.stepThrow(in.Held(core.ActionThrow), in.Assumed(core.ActionThrow))...)
	}

	for _, te := range s.phys.Step(dt) {
		events = append(events, s.onZoneEntered(te)...)
	}
	events = append(events, s.keepBallInPlay()...)

	if s.gameOver {
		s.possession.Hide()
	} else {
		s.possession.Poll(s.player, s.ball)
	}
	s.refreshOverlay()
	return events
}

func (s *Session) applyMovement(in core.InputFrame) {
	step := s.cfg.Player.MoveStep
	var forward, strafe float64
	if in.Has(core.ActionMoveForward) {
		forward += step
	}
	if in.Has(core.ActionMoveBack) {
		forward -= step
	}
	if in.Has(core.ActionStrafeRight) {
		strafe += step
	}
	if in.Has(core.ActionStrafeLeft) {
		strafe -= step
	}
	if forward != 0 || strafe != 0 {
		s.player.Walk(forward, strafe, s.court.Floor.Inset(0.3))
	}

	turn := mgl64.DegToRad(s.cfg.Player.TurnStepDeg)
	if in.Has(core.ActionTurnLeft) {
		s.player.Turn(-turn)
	}
	if in.Has(core.ActionTurnRight) {
		s.player.Turn(turn)
	}

	pitch := mgl64.DegToRad(s.cfg.Player.PitchStepDeg)
	if in.Has(core.ActionLookUp) {
		s.player.Look(pitch)
	}
	if in.Has(core.ActionLookDown) {
		s.player.Look(-pitch)
	}
}

// stepThrow ticks the throw protocol and launches the ball on release.
func (s *Session) stepThrow(keyHeld, assumed bool) []Event {
	magnitude, released := s.throw.TickKey(keyHeld, assumed, s.ball.Held())
	if !released {
		return nil
	}
	charge := s.throw.Charge()
	defer s.throw.Complete()

	if !s.ball.Held() {
		return nil
	}

	mesh := s.ball.Mesh
	if err := s.phys.ClearParent(mesh); err != nil {
		return nil
	}
	if err := s.phys.AttachBody(mesh, s.bodyParams()); err != nil {
		return nil
	}
	s.ball.Mode = FreeBall{}

	pos, err := s.phys.Position(mesh)
	if err != nil {
		return nil
	}
	impulse := LaunchVector(s.player.Facing(), magnitude, s.cfg.Throw.UpBias.Vec3())
	if err := s.phys.ApplyImpulse(mesh, impulse, pos); err != nil {
		return nil
	}
	return []Event{{Kind: EventThrow, Magnitude: magnitude, Charge: charge}}
}

// onZoneEntered applies the scoring rules to a trigger event.
func (s *Session) onZoneEntered(te physics.TriggerEvent) []Event {
	if s.ball == nil || te.Mover != s.ball.Mesh {
		return nil
	}
	hoop, ok := s.detector.Hoop(te.Zone)
	if !ok {
		return nil
	}

	verdict := s.detector.Evaluate(te.Velocity.Y(), s.paused, s.gameOver)
	if verdict != VerdictScored {
		return []Event{{Kind: EventScoreRejected, Hoop: hoop.Name, Verdict: verdict, Points: s.points}}
	}
	s.points += s.cfg.Scoring.PointsPerBasket
	return []Event{{Kind: EventScore, Hoop: hoop.Name, Verdict: verdict, Points: s.points}}
}

// keepBallInPlay puts a free ball that left the court back at the spawn.
func (s *Session) keepBallInPlay() []Event {
	if s.ball == nil || s.ball.Held() {
		return nil
	}
	pos, err := s.phys.Position(s.ball.Mesh)
	if err != nil || !s.court.OutOfPlay(pos) {
		return nil
	}
	if err := s.phys.DetachBody(s.ball.Mesh); err != nil {
		return nil
	}
	if err := s.phys.SetPosition(s.ball.Mesh, s.court.BallSpawn); err != nil {
		_ = s.phys.AttachBody(s.ball.Mesh, s.bodyParams())
		return nil
	}
	if err := s.phys.AttachBody(s.ball.Mesh, s.bodyParams()); err != nil {
		return nil
	}
	return []Event{{Kind: EventBallRespawn}}
}

func (s *Session) refreshOverlay() {
	s.overlay.SetGrabIndicator(s.possession.Indicator())
	s.overlay.SetPowerGauge(s.throw.Charging(), s.throw.Gauge())
	s.overlay.SetScoreText(fmt.Sprintf("Score: %d", s.points))
	s.overlay.SetTimerText(s.timer.Text())
}

// Dispose releases the session's physics hooks. Every later call is a no-op.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	s.detector.Disarm()
	s.disposed = true
}
