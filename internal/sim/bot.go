package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drops/internal/games/drops"
	"github.com/vovakirdan/tui-drops/internal/sched"
)

// botDrop is what the bot knows about a drop on its imaginary screen.
type botDrop struct {
	kind  drops.Kind
	fall  time.Duration
	click bool
}

// bot is a headless Presenter that also plays the game. It decides at spawn
// time whether it will click a drop, then schedules the click and the end of
// the fall on the shared clock so both race exactly as they would on screen.
type bot struct {
	clock    *sched.Clock
	rng      *rand.Rand
	logger   *log.Logger
	accuracy float64
	reaction time.Duration

	next  drops.EntityHandle
	drops map[drops.EntityHandle]*botDrop

	score      int
	clicks     int
	cues       map[drops.SoundCue]int
	milestones []string
	warnings   int
	message    string
}

var _ drops.Presenter = (*bot)(nil)

func newBot(clock *sched.Clock, rng *rand.Rand, accuracy float64, reaction time.Duration, logger *log.Logger) *bot {
	return &bot{
		clock:    clock,
		rng:      rng,
		logger:   logger,
		accuracy: accuracy,
		reaction: reaction,
		drops:    make(map[drops.EntityHandle]*botDrop),
		cues:     make(map[drops.SoundCue]int),
	}
}

func clickTask(h drops.EntityHandle) sched.TaskID  { return sched.TaskID(fmt.Sprintf("click-%d", h)) }
func expireTask(h drops.EntityHandle) sched.TaskID { return sched.TaskID(fmt.Sprintf("expire-%d", h)) }

func (b *bot) RenderEntity(kind drops.Kind, fallSecs, _ float64) drops.EntityHandle {
	b.next++
	// Good drops are clicked with the configured accuracy; bad ones by
	// mistake with the complementary probability.
	p := b.accuracy
	if kind == drops.KindBad {
		p = 1 - b.accuracy
	}
	b.drops[b.next] = &botDrop{
		kind:  kind,
		fall:  time.Duration(fallSecs * float64(time.Second)),
		click: b.rng.Float64() < p,
	}
	return b.next
}

func (b *bot) RemoveEntity(h drops.EntityHandle) {
	delete(b.drops, h)
	b.clock.Stop(clickTask(h))
	b.clock.Stop(expireTask(h))
}

func (b *bot) OnEntityInteracted(h drops.EntityHandle, fn func()) {
	d, ok := b.drops[h]
	if !ok || !d.click {
		return
	}
	b.clock.After(clickTask(h), b.reaction, func() {
		b.clicks++
		fn()
	})
}

func (b *bot) OnEntityExpired(h drops.EntityHandle, fn func()) {
	d, ok := b.drops[h]
	if !ok {
		return
	}
	b.clock.After(expireTask(h), d.fall, fn)
}

func (b *bot) ClearAllEntities() {
	for h := range b.drops {
		b.clock.Stop(clickTask(h))
		b.clock.Stop(expireTask(h))
	}
	clear(b.drops)
}

func (b *bot) ShowScore(score int)          { b.score = score }
func (b *bot) PulseScore()                  {}
func (b *bot) ShowTime(int)                 {}
func (b *bot) ShowTimerWarning(int)         { b.warnings++ }
func (b *bot) SetStreakVisual(bool)         {}
func (b *bot) ShowFloatingDelta(int)        {}
func (b *bot) ShowMessage(text string)      { b.message = text }
func (b *bot) PlaySound(cue drops.SoundCue) { b.cues[cue]++ }

func (b *bot) ShowMilestoneToast(message string) {
	b.milestones = append(b.milestones, message)
	b.logger.Info("milestone", "at", b.clock.Now(), "score", b.score, "message", message)
}

func (b *bot) Announce(text string) {
	if text != "" {
		b.logger.Debug("announce", "at", b.clock.Now(), "text", text)
	}
}

func (b *bot) Celebrate() error {
	return drops.ErrEffectUnavailable
}
