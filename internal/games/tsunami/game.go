// Package tsunami adapts the runner simulation to the arcade platform: it
// owns a Session, maps platform commands onto it and draws a top-down view.
package tsunami

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/zeebo/xxh3"

	"github.com/vovakirdan/tsunami-run/internal/config"
	"github.com/vovakirdan/tsunami-run/internal/core"
	"github.com/vovakirdan/tsunami-run/internal/registry"
	"github.com/vovakirdan/tsunami-run/internal/runner"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config as loaded.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the runner config from the configured path and applies
// the difficulty preset. A custom path that cannot be read or parsed is an
// error.
func LoadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game implements registry.Game on top of a runner.Session.
type Game struct {
	id      string
	title   string
	daily   bool // Seed derived from the calendar date
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	session *runner.Session
	now     func() time.Time
}

// New creates the classic endless mode.
func New() *Game {
	return &Game{id: "tsunami", title: "Attention Tsunami", now: time.Now}
}

// NewDaily creates the daily mode: everyone gets the same world for a day.
func NewDaily() *Game {
	return &Game{id: "daily", title: "Attention Tsunami: Daily Wave", daily: true, now: time.Now}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this mode.
func (g *Game) Title() string { return g.title }

// Reset loads config and builds a fresh session, waiting on the title screen.
// Hosts check LoadConfig before creating games; a config that has since gone
// bad falls back to the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg
	g.session = runner.NewSession(g.cfg, g.seed())
}

// seed picks the world seed: daily date hash, pinned runtime seed, or clock.
func (g *Game) seed() int64 {
	switch {
	case g.daily:
		return DailySeed(g.now())
	case g.runtime.Seed != 0:
		return g.runtime.Seed
	default:
		return g.now().UnixNano()
	}
}

// DailySeed derives a stable seed from the UTC calendar date of t.
func DailySeed(t time.Time) int64 {
	return int64(xxh3.HashString(t.UTC().Format("2006-01-02")) >> 1)
}

// Command applies a platform action to the session.
func (g *Game) Command(a core.Action) {
	if g.session == nil {
		return
	}
	switch a {
	case core.ActionStart:
		g.session.Start()
	case core.ActionPause:
		g.session.TogglePause()
	case core.ActionRestart:
		g.session.RestartWithSeed(g.seed())
		if g.cfg.Runtime.RestartAutostart {
			g.session.Start()
		}
	}
}

// Step advances the session by a real frame delta. Deltas above
// runtime.max_delta are cut so a stalled terminal does not teleport the wave.
func (g *Game) Step(dt float32, in core.Controls) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	res := g.session.Step(core.SanitizeDelta(dt, g.cfg.Runtime.MaxDelta), in)
	return core.StepResult{State: g.State(), Events: res.Events}
}

// State returns the platform-facing summary of the session.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:     int(st.Score),
		Distance:  int(math32.Floor(st.Distance)),
		Attention: st.Attention,
		Started:   st.Phase != runner.PhaseNotStarted,
		Paused:    st.Phase == runner.PhasePaused,
		GameOver:  st.Phase == runner.PhaseGameOver,
		Reason:    st.Reason.String(),
		Seed:      g.session.Seed(),
		Elapsed:   st.Elapsed,
	}
}

// Digest fingerprints the current run for replay checks.
func (g *Game) Digest() uint64 {
	if g.session == nil {
		return 0
	}
	return g.session.Digest()
}

// Session exposes the underlying simulation.
func (g *Game) Session() *runner.Session { return g.session }

// Seed returns the seed of the current world.
func (g *Game) Seed() int64 {
	if g.session == nil {
		return 0
	}
	return g.session.Seed()
}

// Register the modes with the registry
func init() {
	registry.Register("tsunami", func() registry.Game {
		return New()
	})
	registry.Register("daily", func() registry.Game {
		return NewDaily()
	})
}
