// Package config provides YAML-based tuning for the runner simulation and
// difficulty presets for the platform.
package config

// RunnerConfig contains every tunable of the runner simulation.
type RunnerConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	World     WorldConfig     `yaml:"world"`
	Pursuer   PursuerConfig   `yaml:"pursuer"`
	Attention AttentionConfig `yaml:"attention"`
	Runtime   RuntimeTuning   `yaml:"runtime"`
}

// PlayerConfig defines player kinematics.
type PlayerConfig struct {
	Speed            float32    `yaml:"speed"`
	JumpForce        float32    `yaml:"jump_force"`
	Gravity          float32    `yaml:"gravity"`
	MaxJumps         int        `yaml:"max_jumps"`
	LookSensitivity  float32    `yaml:"look_sensitivity"`
	PitchLimit       float32    `yaml:"pitch_limit"` // Radians
	HalfExtents      [3]float32 `yaml:"half_extents"`
	LandingTolerance float32    `yaml:"landing_tolerance"`
	Spawn            [3]float32 `yaml:"spawn"`
}

// WorldConfig defines chunk streaming and generation.
type WorldConfig struct {
	ChunkSize         float32     `yaml:"chunk_size"`
	RenderDistance    float32     `yaml:"render_distance"`
	EvictionMargin    float32     `yaml:"eviction_margin"`
	PlatformsPerChunk int         `yaml:"platforms_per_chunk"`
	Platform          PlatformGen `yaml:"platform"`
	Chances           Chances     `yaml:"chances"`
	Labels            []string    `yaml:"labels"`
}

// PlatformGen defines the randomized platform dimensions.
type PlatformGen struct {
	MinWidth  float32 `yaml:"min_width"`
	MaxWidth  float32 `yaml:"max_width"`
	MinDepth  float32 `yaml:"min_depth"`
	MaxDepth  float32 `yaml:"max_depth"`
	Height    float32 `yaml:"height"`
	SpreadX   float32 `yaml:"spread_x"` // Total width of the x range, centred on 0
	SpreadY   float32 `yaml:"spread_y"`
	BarrierW  float32 `yaml:"barrier_width"`
	BarrierH  float32 `yaml:"barrier_height"`
	BarrierY  float32 `yaml:"barrier_y"`
	BarrierDz float32 `yaml:"barrier_dz"` // Barrier z offset relative to its platform
}

// Chances are independent per-platform decoration probabilities.
type Chances struct {
	Shard   float64 `yaml:"shard"`
	Ring    float64 `yaml:"ring"`
	Barrier float64 `yaml:"barrier"`
	Trap    float64 `yaml:"trap"`
	Label   float64 `yaml:"label"`
}

// PursuerConfig defines the hazard wall.
type PursuerConfig struct {
	StartZ       float32 `yaml:"start_z"`
	StartSpeed   float32 `yaml:"start_speed"`
	Ramp         float32 `yaml:"ramp"` // Units per second squared
	PowerUpCut   float32 `yaml:"powerup_cut"`
	FloorSpeed   float32 `yaml:"floor_speed"`
	CatchMargin  float32 `yaml:"catch_margin"`
	BobAmplitude float32 `yaml:"bob_amplitude"`
}

// AttentionConfig defines the survival resource and scoring.
type AttentionConfig struct {
	Max           float32 `yaml:"max"`
	DecayRate     float32 `yaml:"decay_rate"`
	ShardRestore  float32 `yaml:"shard_restore"`
	PickupRadius  float32 `yaml:"pickup_radius"`
	ScoreFactor   float32 `yaml:"score_factor"`
	FallThreshold float32 `yaml:"fall_threshold"`
}

// RuntimeTuning holds host-side timing knobs.
type RuntimeTuning struct {
	MaxDelta         float32 `yaml:"max_delta"`         // Seconds; the live host caps frame deltas
	KeyHold          float32 `yaml:"key_hold"`          // Seconds a key press counts as held
	RestartAutostart bool    `yaml:"restart_autostart"` // Restart straight into Running
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
