package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.tsunami/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults so partial files only override what they name.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory, then local configs directory. Broken files here
	// are skipped rather than fatal.
	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hard-coded defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field as a joined error.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.Speed >= 0, "player.speed must be >= 0, got %v", c.Player.Speed)
	check(c.Player.Gravity >= 0, "player.gravity must be >= 0, got %v", c.Player.Gravity)
	check(c.Player.MaxJumps >= 1, "player.max_jumps must be >= 1, got %d", c.Player.MaxJumps)
	check(c.Player.PitchLimit > 0, "player.pitch_limit must be > 0, got %v", c.Player.PitchLimit)
	for i, h := range c.Player.HalfExtents {
		check(h > 0, "player.half_extents[%d] must be > 0, got %v", i, h)
	}

	w := c.World
	check(w.ChunkSize > 0, "world.chunk_size must be > 0, got %v", w.ChunkSize)
	check(w.RenderDistance >= w.ChunkSize, "world.render_distance (%v) must be >= chunk_size (%v)", w.RenderDistance, w.ChunkSize)
	check(w.EvictionMargin >= 0, "world.eviction_margin must be >= 0, got %v", w.EvictionMargin)
	check(w.PlatformsPerChunk >= 0, "world.platforms_per_chunk must be >= 0, got %d", w.PlatformsPerChunk)
	check(w.Platform.MaxWidth >= w.Platform.MinWidth && w.Platform.MinWidth > 0, "world.platform width range is invalid")
	check(w.Platform.MaxDepth >= w.Platform.MinDepth && w.Platform.MinDepth > 0, "world.platform depth range is invalid")
	check(w.Platform.Height > 0, "world.platform.height must be > 0, got %v", w.Platform.Height)
	for _, ch := range []struct {
		name string
		p    float64
	}{
		{"shard", w.Chances.Shard},
		{"ring", w.Chances.Ring},
		{"barrier", w.Chances.Barrier},
		{"trap", w.Chances.Trap},
		{"label", w.Chances.Label},
	} {
		check(ch.p >= 0 && ch.p <= 1, "world.chances.%s must be within [0, 1], got %v", ch.name, ch.p)
	}

	check(c.Pursuer.StartSpeed >= 0, "pursuer.start_speed must be >= 0, got %v", c.Pursuer.StartSpeed)
	check(c.Pursuer.FloorSpeed >= 0, "pursuer.floor_speed must be >= 0, got %v", c.Pursuer.FloorSpeed)
	check(c.Pursuer.Ramp >= 0, "pursuer.ramp must be >= 0, got %v", c.Pursuer.Ramp)

	check(c.Attention.Max > 0, "attention.max must be > 0, got %v", c.Attention.Max)
	check(c.Attention.DecayRate >= 0, "attention.decay_rate must be >= 0, got %v", c.Attention.DecayRate)
	check(c.Attention.PickupRadius >= 0, "attention.pickup_radius must be >= 0, got %v", c.Attention.PickupRadius)

	check(c.Runtime.MaxDelta >= 0, "runtime.max_delta must be >= 0, got %v", c.Runtime.MaxDelta)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tsunami", "configs", filename)
}
