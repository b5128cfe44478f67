package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	want := DefaultRunnerConfig()
	if cfg.Player != want.Player {
		t.Errorf("player config differs: yaml=%+v hardcoded=%+v", cfg.Player, want.Player)
	}
	if cfg.Pursuer != want.Pursuer {
		t.Errorf("pursuer config differs: yaml=%+v hardcoded=%+v", cfg.Pursuer, want.Pursuer)
	}
	if cfg.Attention != want.Attention {
		t.Errorf("attention config differs: yaml=%+v hardcoded=%+v", cfg.Attention, want.Attention)
	}
	if cfg.World.Chances != want.World.Chances {
		t.Errorf("chances differ: yaml=%+v hardcoded=%+v", cfg.World.Chances, want.World.Chances)
	}
	if len(cfg.World.Labels) != len(want.World.Labels) {
		t.Errorf("labels differ: yaml=%d hardcoded=%d", len(cfg.World.Labels), len(want.World.Labels))
	}
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := "pursuer:\n  start_speed: 20\nattention:\n  decay_rate: 1.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Pursuer.StartSpeed != 20 {
		t.Errorf("start_speed = %v, expected 20", cfg.Pursuer.StartSpeed)
	}
	if cfg.Attention.DecayRate != 1.5 {
		t.Errorf("decay_rate = %v, expected 1.5", cfg.Attention.DecayRate)
	}
	// Untouched fields keep defaults
	if cfg.World.ChunkSize != 50 {
		t.Errorf("chunk_size = %v, expected default 50", cfg.World.ChunkSize)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRunnerInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [this is not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRunner(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.World.ChunkSize = 0
	cfg.World.Chances.Ring = 1.5
	cfg.Player.MaxJumps = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"chunk_size", "chances.ring", "max_jumps"} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error should mention %q, got: %s", want, msg)
		}
	}
}

func TestValidateErrorOrderIsStable(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.World.Chances = Chances{Shard: -1, Ring: 2, Barrier: 3, Trap: -4, Label: 5}

	first := cfg.Validate().Error()
	for i := 0; i < 20; i++ {
		if got := cfg.Validate().Error(); got != first {
			t.Fatalf("validation order changed:\n%s\nvs\n%s", first, got)
		}
	}

	order := []string{"chances.shard", "chances.ring", "chances.barrier", "chances.trap", "chances.label"}
	last := -1
	for _, name := range order {
		idx := strings.Index(first, name)
		if idx <= last {
			t.Fatalf("%s out of order in: %s", name, first)
		}
		last = idx
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		decay     float32
		ramp      float32
		startFast bool
	}{
		{DifficultyEasy, 2, 0.005, false},
		{DifficultyNormal, 3, 0.01, false},
		{DifficultyHard, 4.5, 0.03, true},
		{DifficultyFixed, 3, 0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Attention.DecayRate != tc.decay {
				t.Errorf("decay = %v, expected %v", cfg.Attention.DecayRate, tc.decay)
			}
			if cfg.Pursuer.Ramp != tc.ramp {
				t.Errorf("ramp = %v, expected %v", cfg.Pursuer.Ramp, tc.ramp)
			}
			if (cfg.Pursuer.StartSpeed > 8) != tc.startFast {
				t.Errorf("start speed = %v", cfg.Pursuer.StartSpeed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("brutal") != "" {
		t.Error("unknown preset should map to empty")
	}
}
