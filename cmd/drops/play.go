package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-drops/internal/audio"
	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/platform/tui"
)

var (
	flagDifficulty string
	flagFPS        int
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game in the terminal.

Controls:
  Mouse click  - Catch a drop
  S/Enter      - Start a round
  P/Space      - Pause / resume
  R            - Reset
  1/2/3, D     - Pick difficulty / cycle difficulty
  M            - Sound on/off
  ?            - Help
  Q/Ctrl+C     - Quit

Examples:
  drops play
  drops play --difficulty easy
  drops play --mute --fps 60
  drops play --config ./my-drops.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", string(config.DifficultyNormal), "Starting difficulty")
	playCmd.Flags().IntVar(&flagFPS, "fps", 30, "Frames per second")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, profiles, err := loadProfiles()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
		Muted:   flagMute,
	}

	opts := tui.Options{
		Config:     cfg,
		Profiles:   profiles,
		Difficulty: config.DifficultyPreset(flagDifficulty),
		Runtime:    rt,
		Logger:     logger,
	}

	player := audio.NewPlayer(flagVolume)
	if err := player.Initialize(); err != nil {
		logger.Warn("sound unavailable, playing muted", "error", err)
	} else {
		opts.Player = player
		defer player.Close()
	}

	logger.Info("starting", "difficulty", flagDifficulty, "size", [2]int{width, height}, "seed", flagSeed)
	return tui.Run(opts)
}
