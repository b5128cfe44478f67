package runner

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/tsunami-run/internal/config"
	"github.com/vovakirdan/tsunami-run/internal/core"
)

// hoverConfig removes every way to lose except the one under test.
func hoverConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.Gravity = 0
	cfg.Pursuer.StartSpeed = 0
	cfg.Pursuer.Ramp = 0
	cfg.World.Chances = config.Chances{}
	return cfg
}

func TestSessionStartsNotStarted(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), 1)

	if s.State().Phase != PhaseNotStarted {
		t.Fatalf("phase = %v, expected not_started", s.State().Phase)
	}
	before := s.Digest()
	s.Step(0.1, core.Controls{Forward: true})
	if s.Digest() != before || s.Tick() != 0 {
		t.Error("Step advanced a session that was not started")
	}
}

func TestSessionPause(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), 1)

	s.TogglePause()
	if s.State().Phase != PhaseNotStarted {
		t.Errorf("TogglePause before Start changed phase to %v", s.State().Phase)
	}

	s.Start()
	s.Step(1.0/60, core.Controls{Forward: true})
	s.TogglePause()
	if s.State().Phase != PhasePaused {
		t.Fatalf("phase = %v, expected paused", s.State().Phase)
	}

	before := s.Digest()
	for i := 0; i < 30; i++ {
		s.Step(1.0/60, core.Controls{Forward: true, Jump: i%2 == 0})
	}
	if s.Digest() != before {
		t.Error("paused session changed")
	}

	s.TogglePause()
	if s.State().Phase != PhaseRunning {
		t.Errorf("phase = %v, expected running", s.State().Phase)
	}
}

func TestAttentionDecaysToGameOver(t *testing.T) {
	s := NewSession(hoverConfig(), 1)
	s.Start()

	for i := 0; i < 10; i++ {
		s.Step(0.1, core.Controls{})
	}
	if got := s.State().Attention; math32.Abs(got-97) > 1e-3 {
		t.Errorf("attention after 1s = %v, expected 97", got)
	}

	steps := 10
	for !s.State().Over() && steps < 1000 {
		res := s.Step(0.1, core.Controls{})
		steps++
		if res.State.Attention < 0 {
			t.Fatalf("attention went negative: %v", res.State.Attention)
		}
	}

	st := s.State()
	if st.Reason != ReasonAttention {
		t.Fatalf("reason = %v, expected attention", st.Reason)
	}
	if steps < 333 || steps > 335 {
		t.Errorf("game over after %d steps, expected ~334", steps)
	}
	if st.Attention != 0 {
		t.Errorf("attention = %v at game over, expected 0", st.Attention)
	}
}

func TestPursuerCatchEndsSameStep(t *testing.T) {
	cfg := hoverConfig()
	cfg.Pursuer.StartZ = 2.05
	cfg.Pursuer.StartSpeed = 1
	s := NewSession(cfg, 1)
	s.Start()

	res := s.Step(0.1, core.Controls{})
	if !res.State.Over() || res.State.Reason != ReasonCaught {
		t.Fatalf("state = %+v, expected caught on first step", res.State)
	}

	var sawGameOver bool
	for _, ev := range res.Events {
		if ev.Kind == core.EventGameOver {
			sawGameOver = true
		}
	}
	if !sawGameOver {
		t.Error("missing game_over event")
	}
}

func TestFallOutEndsRun(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.Spawn = [3]float32{500, 5, 0}
	s := NewSession(cfg, 1)
	s.Start()

	for i := 0; i < 100 && !s.State().Over(); i++ {
		s.Step(0.1, core.Controls{})
	}
	if s.State().Reason != ReasonFell {
		t.Errorf("reason = %v, expected fell", s.State().Reason)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	cfg := hoverConfig()
	cfg.Pursuer.StartZ = 2.05
	cfg.Pursuer.StartSpeed = 1
	s := NewSession(cfg, 1)
	s.Start()
	s.Step(0.1, core.Controls{})

	before := s.Digest()
	s.Start()
	s.TogglePause()
	s.Step(0.1, core.Controls{Forward: true})
	if s.State().Phase != PhaseGameOver || s.Digest() != before {
		t.Error("game over was not terminal")
	}
}

// spawnOn finds a pickup of the given kind in the world generated by seed and
// returns a config that spawns the player on top of it. Pickups close to the
// wave's start are skipped.
func spawnOn(t *testing.T, cfg config.RunnerConfig, seed int64, kind Kind) (config.RunnerConfig, Object) {
	t.Helper()
	probe := NewSession(cfg, seed)
	for _, o := range probe.World().Pickups() {
		if o.Kind == kind && o.Pos.Z() < cfg.Pursuer.StartZ-10 {
			cfg.Player.Spawn = [3]float32{o.Pos.X(), o.Pos.Y(), o.Pos.Z()}
			return cfg, o
		}
	}
	t.Fatalf("no %s in seed %d", kind, seed)
	return cfg, Object{}
}

func TestPickupCreditedOnce(t *testing.T) {
	cfg := hoverConfig()
	cfg.World.Chances.Shard = 1
	cfg.Attention.DecayRate = 100
	cfg, shard := spawnOn(t, cfg, 4, KindCollectible)

	s := NewSession(cfg, 4)
	s.Start()

	res := s.Step(0.1, core.Controls{})
	credited := 0
	for _, ev := range res.Events {
		if ev.Kind == core.EventPickup && ev.ID == shard.ID {
			credited++
		}
	}
	if credited != 1 {
		t.Fatalf("shard credited %d times, expected 1", credited)
	}
	// 100 - 10 decay + 15 per nearby shard, capped at max
	if got := res.State.Attention; got < 105-10 || got > cfg.Attention.Max {
		t.Errorf("attention = %v, expected restored", got)
	}

	res = s.Step(0.1, core.Controls{})
	for _, ev := range res.Events {
		if ev.ID == shard.ID {
			t.Errorf("shard %d credited again: %+v", shard.ID, ev)
		}
	}
	if s.World().Consume(shard.ID) {
		t.Error("shard still consumable")
	}
}

func TestSeveralPickupsInOneFrame(t *testing.T) {
	cfg := hoverConfig()
	cfg.World.Chances.Shard = 1
	cfg.World.Chances.Ring = 1
	cfg, shard := spawnOn(t, cfg, 8, KindCollectible)

	s := NewSession(cfg, 8)
	s.Start()

	// The ring of the same platform hovers half a unit above the shard
	var ring Object
	for _, o := range s.World().Pickups() {
		if o.Kind == KindPowerUp && o.Chunk == shard.Chunk && o.Pos.X() == shard.Pos.X() && o.Pos.Z() == shard.Pos.Z() {
			ring = o
		}
	}
	if ring.ID == 0 {
		t.Fatal("no ring next to the shard")
	}

	credited := map[uint64]int{}
	for i := 0; i < 3; i++ {
		res := s.Step(0.1, core.Controls{})
		for _, ev := range res.Events {
			if ev.Kind == core.EventPickup || ev.Kind == core.EventPowerUp {
				credited[ev.ID]++
			}
		}
		if i == 0 && (credited[shard.ID] != 1 || credited[ring.ID] != 1) {
			t.Fatalf("first frame credited shard %d and ring %d times, expected both once",
				credited[shard.ID], credited[ring.ID])
		}
	}
	for id, n := range credited {
		if n != 1 {
			t.Errorf("pickup %d credited %d times", id, n)
		}
	}
	if _, ok := s.World().Object(ring.ID); ok {
		t.Error("ring still in the world")
	}
}

func TestPowerUpSlowsPursuer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.Gravity = 0
	cfg.World.Chances = config.Chances{Ring: 1}
	cfg, ring := spawnOn(t, cfg, 6, KindPowerUp)

	s := NewSession(cfg, 6)
	s.Start()
	res := s.Step(0.1, core.Controls{})

	var powered bool
	for _, ev := range res.Events {
		if ev.Kind == core.EventPowerUp && ev.ID == ring.ID {
			powered = true
		}
	}
	if !powered {
		t.Fatal("expected powerup event")
	}
	if got := s.Pursuer().Speed; got > 3.01 {
		t.Errorf("wave speed = %v, expected cut to ~3", got)
	}
}

func TestScoreAndDistance(t *testing.T) {
	cfg := hoverConfig()
	s := NewSession(cfg, 1)
	s.Start()

	var last float64
	for i := 0; i < 60; i++ {
		res := s.Step(1.0/60, core.Controls{Forward: true})
		if res.State.Score < last {
			t.Fatalf("score decreased: %v -> %v", last, res.State.Score)
		}
		last = res.State.Score
	}

	// 15 u/s for one second at 0.1 points per unit
	if math32.Abs(float32(last)-1.5) > 1e-3 {
		t.Errorf("score = %v, expected 1.5", last)
	}
	if math32.Abs(s.State().Distance-15) > 1e-3 {
		t.Errorf("distance = %v, expected 15", s.State().Distance)
	}
}

func TestStepSimulatesFullDelta(t *testing.T) {
	s := NewSession(hoverConfig(), 1)
	s.Start()

	res := s.Step(1, core.Controls{})
	if got := res.State.Attention; math32.Abs(got-97) > 1e-4 {
		t.Errorf("attention = %v after 1s, expected 97", got)
	}
	for i := 0; i < 9; i++ {
		res = s.Step(1, core.Controls{})
	}
	if got := res.State.Attention; math32.Abs(got-70) > 1e-3 {
		t.Errorf("attention = %v after 10s, expected 70", got)
	}
	if got := res.State.Elapsed; math32.Abs(float32(got)-10) > 1e-6 {
		t.Errorf("elapsed = %v, expected 10", got)
	}

	s.Step(math32.NaN(), core.Controls{})
	s.Step(-3, core.Controls{})
	if got := s.State().Elapsed; math32.Abs(float32(got)-10) > 1e-6 {
		t.Errorf("elapsed = %v, expected unchanged by bad deltas", got)
	}
}

func TestLongStepMovesWaveInFull(t *testing.T) {
	cfg := hoverConfig()
	cfg.Pursuer.StartZ = 50
	cfg.Pursuer.StartSpeed = 8
	s := NewSession(cfg, 1)
	s.Start()

	res := s.Step(7, core.Controls{})
	if got := s.Pursuer().Z; math32.Abs(got-(-6)) > 1e-4 {
		t.Errorf("wave z = %v, expected -6", got)
	}
	if !res.State.Over() || res.State.Reason != ReasonCaught {
		t.Errorf("state = %+v, expected caught in the same step", res.State)
	}
}

func TestSessionDeterminism(t *testing.T) {
	script := func(i int) core.Controls {
		return core.Controls{
			Forward: true,
			Left:    i%120 < 20,
			Jump:    i%45 < 3,
			LookX:   float32(i%7-3) * 0.1,
		}
	}
	run := func(seed int64) uint64 {
		s := NewSession(config.DefaultRunnerConfig(), seed)
		s.Start()
		for i := 0; i < 600; i++ {
			s.Step(1.0/60, script(i))
		}
		return s.Digest()
	}

	if run(42) != run(42) {
		t.Error("same seed and inputs produced different digests")
	}
	if run(42) == run(43) {
		t.Error("different seeds produced the same digest")
	}
}

func TestRestart(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSession(cfg, 9)
	s.Start()
	for i := 0; i < 120; i++ {
		s.Step(1.0/60, core.Controls{Forward: true, Jump: i%30 == 0})
	}
	s.Restart()

	st := s.State()
	if st.Phase != PhaseNotStarted {
		t.Errorf("phase = %v, expected not_started after restart", st.Phase)
	}
	if st.Score != 0 || st.Attention != cfg.Attention.Max || st.Distance != 0 || st.Elapsed != 0 {
		t.Errorf("state not reset: %+v", st)
	}
	if s.Tick() != 0 {
		t.Errorf("tick = %d, expected 0", s.Tick())
	}
	if s.Digest() != NewSession(cfg, 9).Digest() {
		t.Error("restart did not rebuild the same world")
	}

	s.RestartWithSeed(10)
	if s.Seed() != 10 || s.State().Phase != PhaseNotStarted {
		t.Errorf("seed = %d phase = %v, expected 10 and not_started", s.Seed(), s.State().Phase)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), 1)
	snap := s.Snapshot()
	if len(snap.Objects) == 0 {
		t.Fatal("expected objects in snapshot")
	}

	snap.Objects[0].Pos[1] = 999
	snap.Chunks[0].Offset = 999
	if s.Snapshot().Objects[0].Pos.Y() == 999 || s.Snapshot().Chunks[0].Offset == 999 {
		t.Error("snapshot aliases session state")
	}
	if snap.Digest() == s.Digest() {
		t.Error("digest ignored an object change")
	}
}
