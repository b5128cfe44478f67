// tsunami is a terminal endless runner: outrun the attention tsunami.
//
// Usage:
//
//	tsunami list              - List available modes
//	tsunami play [mode]       - Play a mode (default: tsunami)
//	tsunami sim               - Run a headless, deterministic simulation
//	tsunami scores [mode]     - Show the best runs of a mode
//	tsunami serve             - Start SSH server for remote play
//	tsunami config            - Print the effective runner config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible worlds
//	--db <path>          - Set database path (default: ~/.tsunami/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--config <path>      - Custom runner config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsunami-run/internal/games/tsunami"
	"github.com/vovakirdan/tsunami-run/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string

	logger *log.Logger
)

func main() {
	err := rootCmd.Execute()
	sentry.Flush(2 * time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tsunami",
	Short: "Attention Tsunami - an endless runner in your terminal",
	Long: `Attention Tsunami is an endless runner played in the terminal.
Run across procedurally generated platforms, collect focus shards to keep
your attention span alive, and stay ahead of the wave.

Available commands:
  list     - Show all available modes
  play     - Play a mode
  sim      - Headless deterministic run (replay checks, tuning)
  scores   - View the best runs
  serve    - Start SSH server for remote play
  config   - Print the effective runner config

Examples:
  tsunami play
  tsunami play daily
  tsunami play --difficulty hard --seed 42
  tsunami sim --seed 42 --steps 3600
  tsunami serve --ssh :2222
  tsunami scores tsunami --stats`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tsunami",
			Level:           level,
		})

		tsunami.SetConfigPath(flagConfig)
		tsunami.SetDifficultyPreset(flagDifficulty)
		if _, err := tsunami.LoadConfig(); err != nil {
			return err
		}

		initSentry()
		return nil
	},
}

// initSentry enables crash reporting when SENTRY_DSN is set.
func initSentry() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Release: "tsunami-run"}); err != nil {
		logger.Warn("sentry disabled", "error", err)
		return
	}
	logger.Debug("sentry enabled")
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
