package runner

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/tsunami-run/internal/config"
	"github.com/vovakirdan/tsunami-run/internal/core"
)

// StepResult is the outcome of one Session.Step.
type StepResult struct {
	State  State
	Events []core.Event
}

// Session owns one run: the player, the world, the wave and the score.
// It is driven by a single goroutine; observers read Snapshot between steps.
type Session struct {
	cfg  config.RunnerConfig
	seed int64
	tick uint64

	player  Player
	world   *World
	pursuer Pursuer
	state   State
}

// NewSession builds a fresh, not yet started session. The seed fully
// determines world generation.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	s := &Session{cfg: cfg, seed: seed}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.tick = 0
	s.player = NewPlayer(s.cfg.Player)
	s.world = NewWorld(s.cfg.World, rand.New(rand.NewSource(s.seed))) //nolint:gosec // gameplay RNG, not crypto
	s.pursuer = NewPursuer(s.cfg.Pursuer)
	s.state = State{Phase: PhaseNotStarted, Attention: s.cfg.Attention.Max}
}

// Seed returns the seed the current world was generated from.
func (s *Session) Seed() int64 { return s.seed }

// Config returns the tuning the session runs with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// Start leaves the title screen. It has no effect once started.
func (s *Session) Start() {
	if s.state.Phase == PhaseNotStarted {
		s.state.Phase = PhaseRunning
	}
}

// TogglePause flips between Running and Paused. Ignored in any other phase.
func (s *Session) TogglePause() {
	switch s.state.Phase {
	case PhaseRunning:
		s.state.Phase = PhasePaused
	case PhasePaused:
		s.state.Phase = PhaseRunning
	}
}

// Restart rebuilds the whole session from config with the same seed and
// returns it to NotStarted.
func (s *Session) Restart() {
	s.RestartWithSeed(s.seed)
}

// RestartWithSeed rebuilds the whole session with a new seed.
func (s *Session) RestartWithSeed(seed int64) {
	s.seed = seed
	s.reset()
}

// Step advances the simulation by dt seconds. Negative or NaN deltas count as
// zero; large deltas are simulated in full. Outside Running it returns the
// state untouched.
func (s *Session) Step(dt float32, in core.Controls) StepResult {
	if s.state.Phase != PhaseRunning {
		return StepResult{State: s.state}
	}

	dt = core.SanitizeDelta(dt, 0)
	s.tick++
	s.state.Elapsed += float64(dt)

	var events []core.Event

	s.player = s.player.Step(dt, in, s.world.Collidables())

	upd := s.world.Update(s.player.Pos.Z())
	for _, index := range upd.Generated {
		events = append(events, core.Event{Kind: core.EventChunkGenerated, Chunk: index})
	}
	for _, index := range upd.Evicted {
		events = append(events, core.Event{Kind: core.EventChunkEvicted, Chunk: index})
	}

	s.pursuer.Advance(dt)

	att := s.cfg.Attention
	s.state.Attention = core.ClampF32(s.state.Attention-att.DecayRate*dt, 0, att.Max)

	s.state.Score += float64(math32.Abs(s.player.Vel.Z()) * dt * att.ScoreFactor)
	s.state.Distance = math32.Max(s.state.Distance, -s.player.Pos.Z())

	events = append(events, s.collect()...)

	if reason := s.checkEnd(); reason != ReasonNone {
		s.state.Phase = PhaseGameOver
		s.state.Reason = reason
		events = append(events, core.Event{
			Kind:   core.EventGameOver,
			Detail: fmt.Sprintf("%s after %.0fm", reason, s.state.Distance),
		})
	}

	return StepResult{State: s.state, Events: events}
}

// collect consumes every pickup within reach of the player.
func (s *Session) collect() []core.Event {
	var events []core.Event
	radius := s.cfg.Attention.PickupRadius

	for _, o := range s.world.Pickups() {
		if core.Distance(s.player.Pos, o.Pos) >= radius {
			continue
		}
		if !s.world.Consume(o.ID) {
			continue
		}
		switch o.Kind {
		case KindCollectible:
			att := s.cfg.Attention
			s.state.Attention = core.ClampF32(s.state.Attention+att.ShardRestore, 0, att.Max)
			events = append(events, core.Event{Kind: core.EventPickup, ID: o.ID, Chunk: o.Chunk})
		case KindPowerUp:
			s.pursuer.ApplyPowerUp()
			events = append(events, core.Event{
				Kind:   core.EventPowerUp,
				ID:     o.ID,
				Chunk:  o.Chunk,
				Detail: fmt.Sprintf("wave speed %.2f", s.pursuer.Speed),
			})
		}
	}
	return events
}

// checkEnd evaluates the loss conditions in priority order.
func (s *Session) checkEnd() EndReason {
	switch {
	case s.state.Attention <= 0:
		return ReasonAttention
	case s.pursuer.Catches(s.player.Pos.Z()):
		return ReasonCaught
	case s.player.Pos.Y() < s.cfg.Attention.FallThreshold:
		return ReasonFell
	default:
		return ReasonNone
	}
}

// State returns the current score and phase.
func (s *Session) State() State { return s.state }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Pursuer returns a copy of the wave.
func (s *Session) Pursuer() Pursuer { return s.pursuer }

// World exposes the streamer for read-only inspection.
func (s *Session) World() *World { return s.world }

// Tick returns the number of simulated steps since the last reset.
func (s *Session) Tick() uint64 { return s.tick }
