package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/sim"
)

var (
	flagSimDifficulty string
	flagAccuracy      float64
	flagReaction      time.Duration
	flagRuns          int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate rounds with an autoplayer",
	Long: `Plays rounds without a terminal. The autoplayer clicks clean drops with
the given accuracy after a fixed reaction time, and clicks muddy drops
by mistake with the remaining probability. Rounds run on a virtual clock
and are reproducible with --seed.

Examples:
  drops sim
  drops sim --difficulty hard --accuracy 0.95 --reaction 250ms
  drops sim --runs 500 --seed 1`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", string(config.DifficultyNormal), "Difficulty to simulate")
	simCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.85, "Chance of clicking a clean drop (0-1)")
	simCmd.Flags().DurationVar(&flagReaction, "reaction", 400*time.Millisecond, "Delay before clicking a drop")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of rounds")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, profiles, err := loadProfiles()
	if err != nil {
		return err
	}
	profile, err := profiles.Lookup(config.DifficultyPreset(flagSimDifficulty))
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	summary, err := sim.RunMany(sim.Options{
		Config:   cfg,
		Profile:  profile,
		Seed:     seed,
		Accuracy: flagAccuracy,
		Reaction: flagReaction,
		Logger:   logger,
	}, flagRuns)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if summary.Runs == 1 {
		r := summary.Results[0]
		result := "LOST"
		if r.Outcome.Won {
			result = "WON"
		}
		fmt.Fprintf(out, "%s %d/%d on %s (seed %d)\n", result, r.Outcome.Score, r.Outcome.Target, profile.Name, seed)
		fmt.Fprintf(out, "  spawned %d, caught %d clean and %d muddy\n", r.Spawned, r.CaughtGood, r.CaughtBad)
		for _, m := range r.Milestones {
			fmt.Fprintf(out, "  milestone: %s\n", m)
		}
		fmt.Fprintf(out, "  %s\n", r.Outcome.Message)
		return nil
	}

	fmt.Fprintf(out, "%d rounds on %s (seeds %d..%d)\n", summary.Runs, profile.Name, seed, seed+int64(summary.Runs)-1)
	fmt.Fprintf(out, "  won %d (%.1f%%)\n", summary.Wins, summary.WinRate()*100)
	fmt.Fprintf(out, "  mean score %.2f, best %d, target %d\n", summary.MeanScore, summary.BestScore, profile.TargetScore)
	return nil
}
