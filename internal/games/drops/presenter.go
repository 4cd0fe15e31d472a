package drops

import "errors"

// EntityHandle identifies an entity rendered by a Presenter.
type EntityHandle uint64

// SoundCue names a sound effect requested by the game.
type SoundCue int

const (
	CueGood SoundCue = iota // Good drop caught
	CueBad                  // Bad drop caught
	CueWin                  // Round won
	CueLose                 // Round lost
)

// String returns a human-readable name for the cue.
func (c SoundCue) String() string {
	switch c {
	case CueGood:
		return "good"
	case CueBad:
		return "bad"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// ErrEffectUnavailable is returned by Presenter.Celebrate when the effect
// cannot be shown. The game falls back to PulseScore.
var ErrEffectUnavailable = errors.New("drops: effect unavailable")

// Presenter is everything the game needs from the outside world: drawing,
// feedback, audio and the accessible announcer. The game never draws directly.
//
// The presenter owns entity animation. It reports a click on an entity through
// the interaction callback and the end of its fall through the expiry callback.
// It may fire both for the same handle; the game resolves each entity once.
type Presenter interface {
	// RenderEntity starts drawing a falling entity. Position is a fraction of
	// the available width in [0, 1].
	RenderEntity(kind Kind, fallSecs, position float64) EntityHandle
	RemoveEntity(h EntityHandle)
	OnEntityInteracted(h EntityHandle, fn func())
	OnEntityExpired(h EntityHandle, fn func())
	ClearAllEntities()

	ShowScore(score int)
	PulseScore()
	ShowTime(seconds int)
	ShowTimerWarning(secondsLeft int)
	SetStreakVisual(active bool)
	ShowFloatingDelta(value int)
	ShowMilestoneToast(message string)
	ShowMessage(text string)

	// Announce replaces the accessible status text. An empty string clears it.
	Announce(text string)

	// PlaySound requests a cue. Muting is the presenter's business.
	PlaySound(cue SoundCue)

	// Celebrate shows the win effect, or returns an error if it cannot.
	Celebrate() error
}

// NopPresenter hands out handles and ignores everything else.
// Its entities never report interactions or expiry.
type NopPresenter struct {
	next EntityHandle
}

var _ Presenter = (*NopPresenter)(nil)

func (p *NopPresenter) RenderEntity(Kind, float64, float64) EntityHandle {
	p.next++
	return p.next
}

func (p *NopPresenter) RemoveEntity(EntityHandle)               {}
func (p *NopPresenter) OnEntityInteracted(EntityHandle, func()) {}
func (p *NopPresenter) OnEntityExpired(EntityHandle, func())    {}
func (p *NopPresenter) ClearAllEntities()                       {}
func (p *NopPresenter) ShowScore(int)                           {}
func (p *NopPresenter) PulseScore()                             {}
func (p *NopPresenter) ShowTime(int)                            {}
func (p *NopPresenter) ShowTimerWarning(int)                    {}
func (p *NopPresenter) SetStreakVisual(bool)                    {}
func (p *NopPresenter) ShowFloatingDelta(int)                   {}
func (p *NopPresenter) ShowMilestoneToast(string)               {}
func (p *NopPresenter) ShowMessage(string)                      {}
func (p *NopPresenter) Announce(string)                         {}
func (p *NopPresenter) PlaySound(SoundCue)                      {}
func (p *NopPresenter) Celebrate() error                        { return ErrEffectUnavailable }
