// Package sim plays rounds of drops without a terminal. A bot presenter
// clicks drops after a reaction delay, and the whole round runs on a virtual
// clock, so a 30 second round finishes in milliseconds and is reproducible
// from its seed.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/games/drops"
	"github.com/vovakirdan/tui-drops/internal/sched"
)

const defaultStep = 10 * time.Millisecond

// Options configures a simulated round.
type Options struct {
	Config   config.GameConfig
	Profile  config.Profile
	Seed     int64
	Accuracy float64       // Chance of clicking a good drop, in [0, 1]
	Reaction time.Duration // Delay between a drop appearing and the click
	Step     time.Duration // Clock resolution; defaults to 10ms
	Logger   *log.Logger
}

// Result summarizes one simulated round.
type Result struct {
	Outcome    drops.Outcome
	Spawned    int
	Clicks     int
	CaughtGood int
	CaughtBad  int
	Milestones []string
	Warnings   int
	Elapsed    time.Duration // Virtual time the round took
}

// Run plays one round to the end.
func Run(opts Options) (Result, error) {
	if err := opts.Profile.Validate(); err != nil {
		return Result{}, fmt.Errorf("sim: %w", err)
	}
	step := opts.Step
	if step <= 0 {
		step = defaultStep
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := sched.NewClock()
	b := newBot(clock,
		rand.New(rand.NewSource(opts.Seed+1)),
		config.ClampProbability(opts.Accuracy),
		max(0, opts.Reaction),
		logger,
	)
	g := drops.New(drops.Options{
		Config:    opts.Config,
		Profile:   opts.Profile,
		Scheduler: clock,
		Presenter: b,
		Rand:      rand.New(rand.NewSource(opts.Seed)),
		Logger:    logger,
	})

	g.Start()

	limit := 2 * time.Duration(opts.Config.Session.DurationSecs) * time.Second
	if limit <= 0 {
		limit = 2 * time.Duration(config.DefaultConfig().Session.DurationSecs) * time.Second
	}
	for g.State() == drops.StateRunning {
		if clock.Now() > limit {
			return Result{}, errors.New("sim: round did not end")
		}
		clock.Advance(step)
	}

	outcome, ok := g.Outcome()
	if !ok {
		return Result{}, errors.New("sim: round ended without an outcome")
	}
	snap := g.Snapshot()

	return Result{
		Outcome:    outcome,
		Spawned:    snap.Spawned,
		Clicks:     b.clicks,
		CaughtGood: b.cues[drops.CueGood],
		CaughtBad:  b.cues[drops.CueBad],
		Milestones: b.milestones,
		Warnings:   b.warnings,
		Elapsed:    clock.Now(),
	}, nil
}

// Summary aggregates several rounds.
type Summary struct {
	Runs      int
	Wins      int
	BestScore int
	MeanScore float64
	Results   []Result
}

// WinRate returns the fraction of rounds won.
func (s Summary) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
}

// RunMany plays runs rounds, seeding each from opts.Seed plus its index.
func RunMany(opts Options, runs int) (Summary, error) {
	if runs <= 0 {
		return Summary{}, fmt.Errorf("sim: runs must be positive, got %d", runs)
	}

	s := Summary{Results: make([]Result, 0, runs)}
	total := 0
	for i := 0; i < runs; i++ {
		o := opts
		o.Seed = opts.Seed + int64(i)
		res, err := Run(o)
		if err != nil {
			return Summary{}, fmt.Errorf("run %d: %w", i+1, err)
		}

		s.Runs++
		if res.Outcome.Won {
			s.Wins++
		}
		s.BestScore = max(s.BestScore, res.Outcome.Score)
		total += res.Outcome.Score
		s.Results = append(s.Results, res)
	}
	s.MeanScore = float64(total) / float64(s.Runs)
	return s, nil
}
