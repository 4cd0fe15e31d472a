package tui

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/games/drops"
)

// Effect timings.
const (
	pulseDuration   = 300 * time.Millisecond
	floatDuration   = 800 * time.Millisecond
	confettiLife    = 3 * time.Second
	confettiCount   = 150
	confettiGravity = 18.0 // cells per second squared
)

// Minimum field size for confetti.
const (
	minConfettiW = 20
	minConfettiH = 8
)

const (
	goodGlyph = '●'
	badGlyph  = '◆'
)

// CuePlayer plays sound cues. *audio.Player satisfies it.
type CuePlayer interface {
	Play(cue drops.SoundCue)
}

// fallingDrop is a drop on the board.
type fallingDrop struct {
	kind     drops.Kind
	fall     time.Duration
	elapsed  time.Duration
	position float64
	onHit    func()
	onExpire func()
}

func (d *fallingDrop) progress() float64 {
	if d.fall <= 0 {
		return 1
	}
	return core.ClampF(float64(d.elapsed)/float64(d.fall), 0, 1)
}

type floatingText struct {
	text  string
	color core.Color
	x, y  int
	left  time.Duration
}

type particle struct {
	x, y   float64
	vx, vy float64
	color  core.Color
	glyph  rune
	left   time.Duration
}

// Board is the terminal presentation of the game. It owns the falling drops,
// animates them, hit-tests mouse clicks and draws the play field.
type Board struct {
	screen *core.Screen
	rng    *rand.Rand

	next  drops.EntityHandle
	drops map[drops.EntityHandle]*fallingDrop

	score     int
	timeLeft  int
	warning   bool
	pulseLeft time.Duration
	streak    bool

	floats   []floatingText
	confetti []particle
	lastHitX int
	lastHitY int
	hasHit   bool

	toast        string
	toastLeft    time.Duration
	toastFor     time.Duration
	message      string
	announcement string

	player CuePlayer
	muted  bool
}

var _ drops.Presenter = (*Board)(nil)

// NewBoard creates a board of the given size. toast is how long milestone
// toasts stay up.
func NewBoard(width, height int, toast time.Duration, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		screen:   core.NewScreen(width, height),
		rng:      rng,
		drops:    make(map[drops.EntityHandle]*fallingDrop),
		toastFor: toast,
	}
}

// SetPlayer attaches the sound output. A nil player plays nothing.
func (b *Board) SetPlayer(p CuePlayer) {
	b.player = p
}

// SetMuted turns sound cues off or on.
func (b *Board) SetMuted(muted bool) {
	b.muted = muted
}

// ToggleMute flips the sound setting and returns the new muted state.
func (b *Board) ToggleMute() bool {
	b.muted = !b.muted
	return b.muted
}

// Muted reports whether sound cues are suppressed.
func (b *Board) Muted() bool { return b.muted }

// Resize changes the board size. Drops keep their relative positions.
func (b *Board) Resize(width, height int) {
	b.screen.Resize(width, height)
}

// field is the area inside the frame where drops fall.
func (b *Board) field() core.Rect {
	return b.screen.Bounds().Inset(1)
}

// cellOf maps a drop to its current screen cell.
func (b *Board) cellOf(d *fallingDrop) (int, int) {
	f := b.field()
	x := f.X + int(math.Round(d.position*float64(core.Max(0, f.W-1))))
	y := f.Y + int(d.progress()*float64(f.H))
	return core.Clamp(x, f.X, core.Max(f.X, f.Right()-1)), core.Clamp(y, f.Y, core.Max(f.Y, f.Bottom()-1))
}

// handles returns live handles in spawn order.
func (b *Board) handles() []drops.EntityHandle {
	out := make([]drops.EntityHandle, 0, len(b.drops))
	for h := range b.drops {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fall moves every drop down by dt and fires the expiry trigger of drops
// that reached the bottom.
func (b *Board) Fall(dt time.Duration) {
	var expired []func()
	for _, h := range b.handles() {
		d := b.drops[h]
		d.elapsed += dt
		if d.elapsed >= d.fall && d.onExpire != nil {
			expired = append(expired, d.onExpire)
		}
	}
	for _, fn := range expired {
		fn()
	}
}

// Step advances effects that run regardless of game state.
func (b *Board) Step(dt time.Duration) {
	b.pulseLeft = max(0, b.pulseLeft-dt)
	b.toastLeft = max(0, b.toastLeft-dt)
	if b.toastLeft == 0 {
		b.toast = ""
	}

	floats := b.floats[:0]
	for _, f := range b.floats {
		f.left -= dt
		if f.left > 0 {
			floats = append(floats, f)
		}
	}
	b.floats = floats

	secs := dt.Seconds()
	bottom := float64(b.screen.Height())
	particles := b.confetti[:0]
	for _, p := range b.confetti {
		p.left -= dt
		p.vy += confettiGravity * secs
		p.x += p.vx * secs
		p.y += p.vy * secs
		if p.left <= 0 || p.y >= bottom {
			continue
		}
		particles = append(particles, p)
	}
	b.confetti = particles
}

// Click hit-tests the cell (x, y) against live drops and fires the
// interaction trigger of the oldest drop under it.
// Each drop is hittable on its cell, one cell either side, and the row above
// (where it was drawn a moment ago).
func (b *Board) Click(x, y int) bool {
	for _, h := range b.handles() {
		d := b.drops[h]
		dx, dy := b.cellOf(d)
		if !core.NewRect(dx-1, dy-1, 3, 2).Contains(x, y) {
			continue
		}
		b.lastHitX, b.lastHitY, b.hasHit = dx, dy, true
		if d.onHit != nil {
			d.onHit()
		}
		return true
	}
	return false
}

// DropCount returns the number of drops on the board.
func (b *Board) DropCount() int { return len(b.drops) }

// DropCell returns the screen cell of the drop with handle h.
func (b *Board) DropCell(h drops.EntityHandle) (x, y int, ok bool) {
	d, ok := b.drops[h]
	if !ok {
		return 0, 0, false
	}
	x, y = b.cellOf(d)
	return x, y, true
}

// Presenter implementation.

func (b *Board) RenderEntity(kind drops.Kind, fallSecs, position float64) drops.EntityHandle {
	b.next++
	b.drops[b.next] = &fallingDrop{
		kind:     kind,
		fall:     time.Duration(fallSecs * float64(time.Second)),
		position: core.ClampF(position, 0, 1),
	}
	return b.next
}

func (b *Board) RemoveEntity(h drops.EntityHandle) {
	delete(b.drops, h)
}

func (b *Board) OnEntityInteracted(h drops.EntityHandle, fn func()) {
	if d, ok := b.drops[h]; ok {
		d.onHit = fn
	}
}

func (b *Board) OnEntityExpired(h drops.EntityHandle, fn func()) {
	if d, ok := b.drops[h]; ok {
		d.onExpire = fn
	}
}

func (b *Board) ClearAllEntities() {
	clear(b.drops)
	b.hasHit = false
}

func (b *Board) ShowScore(score int) { b.score = score }
func (b *Board) PulseScore()         { b.pulseLeft = pulseDuration }

func (b *Board) ShowTime(seconds int) {
	b.timeLeft = seconds
	b.warning = false
}

func (b *Board) ShowTimerWarning(int)        { b.warning = true }
func (b *Board) SetStreakVisual(active bool) { b.streak = active }

func (b *Board) ShowFloatingDelta(value int) {
	x, y := b.lastHitX, b.lastHitY
	if !b.hasHit {
		f := b.field()
		x, y = f.X+f.W/2, f.Y+f.H/2
	}
	color := core.ColorFloatUp
	if value < 0 {
		color = core.ColorFloatDown
	}
	b.floats = append(b.floats, floatingText{
		text:  fmt.Sprintf("%+d", value),
		color: color,
		x:     x,
		y:     y,
		left:  floatDuration,
	})
}

func (b *Board) ShowMilestoneToast(message string) {
	b.Notice(message)
}

// Notice shows a short message in the toast slot.
func (b *Board) Notice(text string) {
	b.toast = text
	b.toastLeft = b.toastFor
}

func (b *Board) ShowMessage(text string) { b.message = text }
func (b *Board) Announce(text string)    { b.announcement = text }

func (b *Board) PlaySound(cue drops.SoundCue) {
	if b.muted || b.player == nil {
		return
	}
	b.player.Play(cue)
}

// Celebrate launches confetti from the top of the field. Boards too small to
// show it report drops.ErrEffectUnavailable.
func (b *Board) Celebrate() error {
	f := b.field()
	if f.W < minConfettiW || f.H < minConfettiH {
		return fmt.Errorf("board %dx%d: %w", f.W, f.H, drops.ErrEffectUnavailable)
	}

	glyphs := []rune{'*', '+', '•', '✦'}
	for i := 0; i < confettiCount; i++ {
		b.confetti = append(b.confetti, particle{
			x:     float64(f.X) + b.rng.Float64()*float64(f.W),
			y:     float64(f.Y) - b.rng.Float64()*3,
			vx:    (b.rng.Float64() - 0.5) * 12,
			vy:    b.rng.Float64() * 4,
			color: core.ConfettiColors[b.rng.Intn(len(core.ConfettiColors))],
			glyph: glyphs[b.rng.Intn(len(glyphs))],
			left:  confettiLife/2 + time.Duration(b.rng.Int63n(int64(confettiLife/2))),
		})
	}
	return nil
}

// HUD state.

func (b *Board) Score() int           { return b.score }
func (b *Board) TimeLeft() int        { return b.timeLeft }
func (b *Board) Warning() bool        { return b.warning }
func (b *Board) Pulsing() bool        { return b.pulseLeft > 0 }
func (b *Board) Streak() bool         { return b.streak }
func (b *Board) Toast() string        { return b.toast }
func (b *Board) Message() string      { return b.message }
func (b *Board) Announcement() string { return b.announcement }
func (b *Board) ConfettiActive() bool { return len(b.confetti) > 0 }
func (b *Board) Screen() *core.Screen { return b.screen }
func (b *Board) FloatingCount() int   { return len(b.floats) }

// Draw renders the play field into the board's screen.
func (b *Board) Draw() *core.Screen {
	s := b.screen
	s.Clear()

	frame := core.ColorFrame
	if b.streak {
		frame = core.ColorStreak
	}
	s.DrawBox(s.Bounds(), frame)

	for _, h := range b.handles() {
		d := b.drops[h]
		x, y := b.cellOf(d)
		if d.kind == drops.KindBad {
			s.SetColor(x, y, badGlyph, core.ColorMud)
		} else {
			s.SetColor(x, y, goodGlyph, core.ColorWater)
		}
	}

	for _, f := range b.floats {
		// rises two rows over its lifetime
		rise := int(2 * (1 - float64(f.left)/float64(floatDuration)))
		s.DrawText(f.x, f.y-rise, f.text, f.color)
	}

	for _, p := range b.confetti {
		s.SetColor(int(p.x), int(p.y), p.glyph, p.color)
	}

	f := b.field()
	if b.toast != "" {
		s.DrawTextCentered(f.Y+1, b.toast, core.ColorToast)
	}
	if b.message != "" {
		s.DrawTextCentered(f.Y+f.H/2, b.message, core.ColorToast)
	}
	return s
}
