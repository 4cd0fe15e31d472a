// drops is a falling-drops arcade game for the terminal: catch clean water
// drops with the mouse before they fall out, avoid the muddy ones, and reach
// the target score before the 30 second timer runs out.
//
// Usage:
//
//	drops play               - Play a round in the terminal
//	drops list               - List difficulty profiles
//	drops sim                - Simulate rounds with an autoplayer
//	drops config             - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom config file (YAML or TOML)
//	--seed <value>      - RNG seed for reproducible rounds
//	--log <path>        - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drops",
	Short: "Drops - catch clean water in your terminal",
	Long: `Drops is a single-screen arcade game. Clean drops fall from the top of
the screen; click them to score. Muddy drops cost points. Reach the
difficulty's target score before the timer runs out to win.

Available commands:
  play     - Play a round
  list     - Show difficulty profiles
  sim      - Run headless rounds with an autoplayer
  config   - Print the default configuration

Examples:
  drops play
  drops play --difficulty hard
  drops sim --runs 100 --accuracy 0.9
  drops config > ~/.drops/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config file (.yaml or .toml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "drops",
		Level:           level,
	})
	return logger, closer, nil
}

// loadProfiles loads the configuration and its difficulty registry.
func loadProfiles() (config.GameConfig, *registry.Registry, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	profiles, err := registry.FromConfig(cfg)
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	return cfg, profiles, nil
}
