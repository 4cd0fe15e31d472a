// Package drops implements the falling-drops arcade game: drops spawn on a
// timer, the player catches them before they fall out, and the round ends when
// the countdown reaches zero.
//
// Game is the single owner of all session state. It is driven entirely by
// callbacks (scheduler tasks, presenter triggers, UI actions) that must run on
// one goroutine; state checks, not locks, keep them consistent.
package drops

import (
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/sched"
)

// Scheduler task names used by the game.
const (
	TaskSpawn         sched.TaskID = "spawn"
	TaskTick          sched.TaskID = "tick"
	TaskAnnounceClear sched.TaskID = "announce-clear"
)

// Options configures a new Game. Zero fields get defaults.
type Options struct {
	Config    config.GameConfig // Defaults to config.DefaultConfig()
	Profile   config.Profile    // Defaults to the config's "normal" difficulty
	Scheduler sched.Scheduler   // Defaults to a fresh sched.Clock
	Presenter Presenter         // Defaults to NopPresenter
	Rand      *rand.Rand        // Defaults to a time-seeded source
	Logger    *log.Logger       // Defaults to a discarding logger
}

// Game is the session controller.
type Game struct {
	session    Session
	profile    config.Profile
	cfg        config.SessionConfig
	milestones []Milestone
	winPool    []string
	losePool   []string

	sched  sched.Scheduler
	view   Presenter
	rng    *rand.Rand
	logger *log.Logger

	live    map[EntityHandle]*Entity // Spawned and not yet resolved
	spawned int                      // Entities spawned this round
	outcome *Outcome                 // Set when the round ends
}

// New creates an idle game.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.Session.DurationSecs <= 0 {
		cfg = config.DefaultConfig()
	}

	profile := opts.Profile
	if profile.SpawnIntervalMs <= 0 {
		if p, ok := cfg.Profile(config.DifficultyNormal); ok {
			profile = p
		} else {
			profile, _ = config.DefaultConfig().Profile(config.DifficultyNormal)
		}
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = sched.NewClock()
	}

	view := opts.Presenter
	if view == nil {
		view = &NopPresenter{}
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	milestones := make([]Milestone, 0, len(cfg.Milestones))
	for _, m := range cfg.Milestones {
		milestones = append(milestones, Milestone{Threshold: m.Score, Message: m.Message})
	}
	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Threshold < milestones[j].Threshold
	})

	return &Game{
		session:    newSession(cfg.Session.DurationSecs),
		profile:    profile,
		cfg:        cfg.Session,
		milestones: milestones,
		winPool:    cfg.Messages.Win,
		losePool:   cfg.Messages.Lose,
		sched:      scheduler,
		view:       view,
		rng:        rng,
		logger:     logger,
		live:       make(map[EntityHandle]*Entity),
	}
}

// Start begins a fresh round. It is a no-op while a round is running.
// From Idle, Paused or Ended it discards the previous round entirely.
func (g *Game) Start() {
	if g.session.State == StateRunning {
		g.logger.Debug("start ignored", "state", g.session.State)
		return
	}

	g.sched.StopAll()
	g.discardEntities()
	g.session.reset(g.cfg.DurationSecs)
	g.spawned = 0
	g.outcome = nil
	g.session.State = StateRunning

	g.view.ShowScore(0)
	g.view.ShowTime(g.session.TimeRemaining)
	g.view.SetStreakVisual(false)
	g.view.ShowMessage("")
	g.view.Announce("")

	g.startTimers()
	g.logger.Info("round started", "difficulty", g.profile.Name, "duration", g.cfg.DurationSecs)
}

// Pause freezes a running round. No-op in any other state.
func (g *Game) Pause() {
	if g.session.State != StateRunning {
		g.logger.Debug("pause ignored", "state", g.session.State)
		return
	}
	g.session.State = StatePaused
	g.sched.Stop(TaskSpawn)
	g.sched.Stop(TaskTick)
	g.logger.Debug("round paused", "time", g.session.TimeRemaining)
}

// Resume continues a paused round with the currently active profile.
// No-op in any other state.
func (g *Game) Resume() {
	if g.session.State != StatePaused {
		g.logger.Debug("resume ignored", "state", g.session.State)
		return
	}
	g.session.State = StateRunning
	g.startTimers()
	g.logger.Debug("round resumed", "time", g.session.TimeRemaining)
}

// TogglePause pauses a running round or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.session.State {
	case StateRunning:
		g.Pause()
	case StatePaused:
		g.Resume()
	}
}

// Reset stops everything and returns to Idle with initial values.
// Valid from any state.
func (g *Game) Reset() {
	g.sched.StopAll()
	g.discardEntities()
	g.session.reset(g.cfg.DurationSecs)
	g.spawned = 0
	g.outcome = nil

	g.view.ShowScore(0)
	g.view.ShowTime(g.session.TimeRemaining)
	g.view.SetStreakVisual(false)
	g.view.ShowMessage("")
	g.view.Announce("")
	g.logger.Debug("round reset")
}

// Tick advances the countdown by one second. Scheduled by the game itself;
// a call outside Running is ignored.
func (g *Game) Tick() {
	if g.session.State != StateRunning {
		return
	}

	if g.session.TimeRemaining > 0 {
		g.session.TimeRemaining--
	}
	left := g.session.TimeRemaining
	g.view.ShowTime(left)

	if left > 0 && left <= g.cfg.TimerWarningSecs {
		g.view.ShowTimerWarning(left)
	}
	if left == 0 {
		g.endGame()
	}
}

// SetProfile makes p the active difficulty. Entities already falling keep the
// profile they were spawned with; the spawn interval changes on the next
// start or resume.
func (g *Game) SetProfile(p config.Profile) {
	g.profile = p
	g.logger.Debug("difficulty changed", "difficulty", p.Name, "state", g.session.State)
}

// Profile returns the active difficulty profile.
func (g *Game) Profile() config.Profile {
	return g.profile
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.session.State
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.session.Score
}

// Outcome returns the result of the last finished round.
// The second value is false until a round has ended.
func (g *Game) Outcome() (Outcome, bool) {
	if g.outcome == nil {
		return Outcome{}, false
	}
	return *g.outcome, true
}

// startTimers (re)starts the spawn and countdown tasks. Starting a task
// replaces any previous instance, so there is never more than one of each.
func (g *Game) startTimers() {
	g.sched.Every(TaskSpawn, g.profile.SpawnInterval(), g.spawn)
	g.sched.Every(TaskTick, time.Second, g.Tick)
}
