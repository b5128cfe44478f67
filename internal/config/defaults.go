package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration. It mirrors
// defaults/runner.yaml and is the fallback if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Player: PlayerConfig{
			Speed:            15,
			JumpForce:        12,
			Gravity:          30,
			MaxJumps:         2,
			LookSensitivity:  0.05,
			PitchLimit:       1.496, // pi/2.1
			HalfExtents:      [3]float32{0.5, 1, 0.5},
			LandingTolerance: 0.5,
			Spawn:            [3]float32{0, 5, 0},
		},
		World: WorldConfig{
			ChunkSize:         50,
			RenderDistance:    300,
			EvictionMargin:    100,
			PlatformsPerChunk: 5,
			Platform: PlatformGen{
				MinWidth:  5,
				MaxWidth:  15,
				MinDepth:  10,
				MaxDepth:  25,
				Height:    1,
				SpreadX:   30,
				SpreadY:   5,
				BarrierW:  30,
				BarrierH:  10,
				BarrierY:  5,
				BarrierDz: -5,
			},
			Chances: Chances{
				Shard:   0.30,
				Ring:    0.05,
				Barrier: 0.10,
				Trap:    0.20,
				Label:   0.40,
			},
			Labels: []string{"SKIBIDI", "RIZZ", "GYATT", "SIGMA", "BASED", "FR FR", "ON GOD", "NO CAP"},
		},
		Pursuer: PursuerConfig{
			StartZ:       50,
			StartSpeed:   8,
			Ramp:         0.01,
			PowerUpCut:   5,
			FloorSpeed:   2,
			CatchMargin:  2,
			BobAmplitude: 2,
		},
		Attention: AttentionConfig{
			Max:           100,
			DecayRate:     3,
			ShardRestore:  15,
			PickupRadius:  2,
			ScoreFactor:   0.1,
			FallThreshold: -15,
		},
		Runtime: RuntimeTuning{
			MaxDelta:         0.1,
			KeyHold:          0.15,
			RestartAutostart: true,
		},
	}
}

// DefaultYAML returns the embedded default runner YAML, used by `config dump`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
