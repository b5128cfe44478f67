package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tsunami-run/internal/core"
	"github.com/vovakirdan/tsunami-run/internal/games/tsunami"
	"github.com/vovakirdan/tsunami-run/internal/platform/tui"
	"github.com/vovakirdan/tsunami-run/internal/registry"
	"github.com/vovakirdan/tsunami-run/internal/storage"
)

const defaultMode = "tsunami"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tsunami).

Controls:
  W/S, Up/Down      - Run forward / back
  A/D, Left/Right   - Strafe
  Space             - Jump (press again in the air to double jump)
  H/L, K/J          - Turn left/right, look up/down
  Enter             - Start
  P/Esc             - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow attention decay, lazy wave, more shards
  normal - Defaults as shipped
  hard   - Fast decay, aggressive wave, fewer shards
  fixed  - The wave never accelerates

While playing, logs go to ~/.tsunami/tsunami.log.

Examples:
  tsunami play
  tsunami play daily
  tsunami play --difficulty easy
  tsunami play --seed 42
  tsunami play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode := defaultMode
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'tsunami list' to see available modes", mode)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runnerCfg, err := tsunami.LoadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:   store,
		Logger:  logger,
		KeyHold: runnerCfg.Runtime.KeyHold,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".tsunami")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "tsunami.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
