package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsunami-run/internal/core"
	"github.com/vovakirdan/tsunami-run/internal/games/tsunami"
	"github.com/vovakirdan/tsunami-run/internal/runner"
	"github.com/vovakirdan/tsunami-run/internal/storage"
)

var (
	flagSimSteps  int
	flagSimPolicy string
	flagSimVerify string
	flagSimSave   bool
	flagSimDaily  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless, deterministic simulation",
	Long: `Run the simulation without a terminal at a fixed step of 1/--fps seconds,
driven by a scripted policy, and print the final state and its digest.

The same seed, config and policy always produce the same digest, so the
command doubles as a replay check.

Policies:
  idle     - Stand still
  forward  - Run forward
  hop      - Run forward and jump at a steady rhythm

Examples:
  tsunami sim --seed 42
  tsunami sim --seed 42 --policy hop --steps 7200
  tsunami sim --seed 42 --verify 9f1c2a...   # Fails on digest mismatch
  tsunami sim --daily --save                 # Record a bot run of today's wave
  tsunami sim --log-level debug              # Log every step event`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 3600, "Maximum number of steps")
	simCmd.Flags().StringVar(&flagSimPolicy, "policy", "hop", "Input policy: idle, forward, hop")
	simCmd.Flags().StringVar(&flagSimVerify, "verify", "", "Expected hex digest")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().BoolVar(&flagSimDaily, "daily", false, "Use today's daily seed")
}

// policy produces the controls for a step.
type policy func(step int) core.Controls

func policyByName(name string) (policy, error) {
	switch name {
	case "idle":
		return func(int) core.Controls { return core.Controls{} }, nil
	case "forward":
		return func(int) core.Controls { return core.Controls{Forward: true} }, nil
	case "hop":
		return func(step int) core.Controls {
			return core.Controls{Forward: true, Jump: step%40 < 2}
		}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

func runSim(cmd *cobra.Command, _ []string) error {
	pol, err := policyByName(flagSimPolicy)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	mode := defaultMode
	seed := flagSeed
	switch {
	case flagSimDaily:
		mode = "daily"
		seed = tsunami.DailySeed(time.Now())
	case seed == 0:
		seed = time.Now().UnixNano()
	}

	cfg, err := tsunami.LoadConfig()
	if err != nil {
		return err
	}
	session := runner.NewSession(cfg, seed)
	session.Start()

	dt := float32(1) / float32(flagFPS)
	start := time.Now()
	steps := 0
	for ; steps < flagSimSteps && !session.State().Over(); steps++ {
		res := session.Step(dt, pol(steps))
		for _, ev := range res.Events {
			logger.Debug(ev.Kind.String(), "step", steps, "id", ev.ID, "chunk", ev.Chunk, "detail", ev.Detail)
		}
	}

	st := session.State()
	digest := fmt.Sprintf("%016x", session.Digest())
	logger.Info("simulation finished", "steps", steps, "wall", time.Since(start).Round(time.Millisecond))

	fmt.Printf("seed:      %d\n", seed)
	fmt.Printf("steps:     %d\n", steps)
	fmt.Printf("phase:     %s\n", st.Phase)
	if st.Reason != runner.ReasonNone {
		fmt.Printf("reason:    %s\n", st.Reason)
	}
	fmt.Printf("score:     %.2f\n", st.Score)
	fmt.Printf("distance:  %.1fm\n", st.Distance)
	fmt.Printf("attention: %.1f\n", st.Attention)
	fmt.Printf("wave:      %.1fm behind at %.2f u/s\n", session.Pursuer().Gap(session.Player().Pos.Z()), session.Pursuer().Speed)
	fmt.Printf("chunks:    %d live, frontier %.0f\n", session.World().Len(), session.World().Frontier())
	fmt.Printf("digest:    %s\n", digest)

	if flagSimSave {
		if err := saveSimRun(mode, seed, st, digest); err != nil {
			return err
		}
	}

	if flagSimVerify != "" {
		want, err := strconv.ParseUint(flagSimVerify, 16, 64)
		if err != nil {
			return fmt.Errorf("invalid --verify digest %q: %w", flagSimVerify, err)
		}
		if want != session.Digest() {
			return fmt.Errorf("digest mismatch: got %s, expected %016x", digest, want)
		}
		fmt.Println("digest verified")
	}
	return nil
}

func saveSimRun(mode string, seed int64, st runner.State, digest string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	_, err = store.SaveRun(storage.Run{
		Mode:     mode,
		Score:    int(st.Score),
		Distance: int(st.Distance),
		Reason:   st.Reason.String(),
		Seed:     seed,
		Duration: time.Duration(st.Elapsed * float64(time.Second)),
		Digest:   digest,
	})
	return err
}
