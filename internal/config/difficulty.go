package config

// ApplyPreset modifies the config based on a difficulty preset. Presets only
// touch the survival pressure: attention decay and the pursuer's pace.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Attention.DecayRate = 2
		cfg.Pursuer.StartSpeed = 6
		cfg.Pursuer.Ramp = 0.005
		cfg.World.Chances.Shard = 0.40
	case DifficultyNormal:
		// Defaults as shipped
	case DifficultyHard:
		cfg.Attention.DecayRate = 4.5
		cfg.Pursuer.StartSpeed = 11
		cfg.Pursuer.Ramp = 0.03
		cfg.World.Chances.Shard = 0.20
	case DifficultyFixed:
		// No acceleration; the wave keeps its starting pace forever
		cfg.Pursuer.Ramp = 0
	}
}
