package tui

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/games/drops"
)

type cueLog struct {
	cues []drops.SoundCue
}

func (c *cueLog) Play(cue drops.SoundCue) { c.cues = append(c.cues, cue) }

func newTestBoard(w, h int) *Board {
	return NewBoard(w, h, 2500*time.Millisecond, rand.New(rand.NewSource(1)))
}

func TestBoardDropFallsAndExpires(t *testing.T) {
	b := newTestBoard(40, 20)
	h := b.RenderEntity(drops.KindGood, 2, 0.5)

	expired := 0
	b.OnEntityExpired(h, func() {
		expired++
		b.RemoveEntity(h)
	})

	_, y0, ok := b.DropCell(h)
	if !ok {
		t.Fatal("Drop should be on the board")
	}
	if y0 != 1 {
		t.Errorf("Drop should start at the top of the field, got row %d", y0)
	}

	b.Fall(time.Second)
	_, y1, _ := b.DropCell(h)
	if y1 <= y0 {
		t.Errorf("Drop should move down, row %d -> %d", y0, y1)
	}
	if expired != 0 {
		t.Fatal("Drop expired early")
	}

	b.Fall(time.Second)
	if expired != 1 {
		t.Errorf("Drop should expire after its fall time, expired %d", expired)
	}
	if b.DropCount() != 0 {
		t.Errorf("Expired drop should be removed, %d left", b.DropCount())
	}
}

func TestBoardPositionSpansField(t *testing.T) {
	b := newTestBoard(40, 20)
	left := b.RenderEntity(drops.KindGood, 3, 0)
	right := b.RenderEntity(drops.KindGood, 3, 1)

	lx, _, _ := b.DropCell(left)
	rx, _, _ := b.DropCell(right)
	if lx != 1 || rx != 38 {
		t.Errorf("Positions 0 and 1 should map to the field edges, got %d and %d", lx, rx)
	}
}

func TestBoardClickHitsDrop(t *testing.T) {
	b := newTestBoard(40, 20)
	h := b.RenderEntity(drops.KindGood, 3, 0.5)
	hits := 0
	b.OnEntityInteracted(h, func() { hits++ })

	x, y, _ := b.DropCell(h)
	if !b.Click(x+1, y) {
		t.Error("Click next to the drop should hit")
	}
	if b.Click(x+5, y) {
		t.Error("Click far from the drop should miss")
	}
	if hits != 1 {
		t.Errorf("Expected one hit, got %d", hits)
	}
}

func TestBoardClickPrefersOldest(t *testing.T) {
	b := newTestBoard(40, 20)
	first := b.RenderEntity(drops.KindGood, 3, 0.5)
	second := b.RenderEntity(drops.KindBad, 3, 0.5)

	var hit drops.EntityHandle
	b.OnEntityInteracted(first, func() { hit = first })
	b.OnEntityInteracted(second, func() { hit = second })

	x, y, _ := b.DropCell(first)
	b.Click(x, y)
	if hit != first {
		t.Errorf("Overlapping drops should resolve the oldest first, got %d", hit)
	}
}

func TestBoardClearAll(t *testing.T) {
	b := newTestBoard(40, 20)
	for i := 0; i < 5; i++ {
		b.RenderEntity(drops.KindGood, 3, float64(i)/5)
	}
	b.ClearAllEntities()
	if b.DropCount() != 0 {
		t.Errorf("Expected empty board, got %d drops", b.DropCount())
	}
	if b.Click(20, 1) {
		t.Error("Nothing should be hittable after clear")
	}
}

func TestBoardSoundGating(t *testing.T) {
	b := newTestBoard(40, 20)
	b.PlaySound(drops.CueGood) // no player attached

	log := &cueLog{}
	b.SetPlayer(log)
	b.PlaySound(drops.CueGood)

	if !b.ToggleMute() {
		t.Fatal("ToggleMute should report muted")
	}
	b.PlaySound(drops.CueBad)

	b.SetMuted(false)
	b.PlaySound(drops.CueWin)

	want := []drops.SoundCue{drops.CueGood, drops.CueWin}
	if len(log.cues) != len(want) || log.cues[0] != want[0] || log.cues[1] != want[1] {
		t.Errorf("Played %v, expected %v", log.cues, want)
	}
}

func TestBoardTimerWarning(t *testing.T) {
	b := newTestBoard(40, 20)
	b.ShowTime(5)
	b.ShowTimerWarning(5)
	if !b.Warning() || b.TimeLeft() != 5 {
		t.Error("Warning should be shown")
	}

	b.ShowTime(30)
	if b.Warning() {
		t.Error("A new time without a warning should clear it")
	}
}

func TestBoardPulseAndToastExpire(t *testing.T) {
	b := newTestBoard(40, 20)
	b.PulseScore()
	b.ShowMilestoneToast("ten")

	if !b.Pulsing() || b.Toast() != "ten" {
		t.Fatal("Pulse and toast should be visible")
	}

	b.Step(pulseDuration)
	if b.Pulsing() {
		t.Error("Pulse should end")
	}
	if b.Toast() != "ten" {
		t.Error("Toast should outlast the pulse")
	}

	b.Step(2500 * time.Millisecond)
	if b.Toast() != "" {
		t.Errorf("Toast should be gone, got %q", b.Toast())
	}
}

func TestBoardFloatingDelta(t *testing.T) {
	b := newTestBoard(40, 20)
	h := b.RenderEntity(drops.KindBad, 3, 0.5)
	b.OnEntityInteracted(h, func() { b.ShowFloatingDelta(-2) })

	x, y, _ := b.DropCell(h)
	b.Click(x, y)

	if b.FloatingCount() != 1 {
		t.Fatalf("Expected a floating delta, got %d", b.FloatingCount())
	}
	if !strings.Contains(b.Draw().Row(y), "-2") {
		t.Errorf("Delta should be drawn where the drop was hit, row = %q", b.Draw().Row(y))
	}

	b.Step(floatDuration)
	if b.FloatingCount() != 0 {
		t.Error("Floating delta should fade")
	}
}

func TestBoardFloatingDeltaAfterClear(t *testing.T) {
	b := newTestBoard(40, 20)
	h := b.RenderEntity(drops.KindGood, 3, 0.1)
	x, y, _ := b.DropCell(h)
	b.Click(x, y)
	b.ClearAllEntities()

	b.ShowFloatingDelta(1)
	f := b.field()
	center := f.Y + f.H/2
	if center == y {
		t.Fatalf("Test drop should not sit on the center row %d", center)
	}
	if strings.Contains(b.Draw().Row(y), "+1") {
		t.Errorf("Delta after clear should not use the previous hit cell, row = %q", b.Draw().Row(y))
	}
	if !strings.Contains(b.Draw().Row(center), "+1") {
		t.Errorf("Delta after clear should be centered, row = %q", b.Draw().Row(center))
	}
}

func TestBoardCelebrate(t *testing.T) {
	b := newTestBoard(60, 20)
	if err := b.Celebrate(); err != nil {
		t.Fatalf("Celebrate failed: %v", err)
	}
	if !b.ConfettiActive() {
		t.Fatal("Confetti should be active")
	}

	b.Step(confettiLife)
	if b.ConfettiActive() {
		t.Error("Confetti should settle")
	}
}

func TestBoardCelebrateTooSmall(t *testing.T) {
	b := newTestBoard(10, 5)
	err := b.Celebrate()
	if !errors.Is(err, drops.ErrEffectUnavailable) {
		t.Errorf("Expected ErrEffectUnavailable, got %v", err)
	}
	if b.ConfettiActive() {
		t.Error("No confetti on a tiny board")
	}
}

func TestBoardDraw(t *testing.T) {
	b := newTestBoard(30, 10)
	good := b.RenderEntity(drops.KindGood, 3, 0.2)
	bad := b.RenderEntity(drops.KindBad, 3, 0.8)
	b.ShowMessage("Well done")

	s := b.Draw()

	gx, gy, _ := b.DropCell(good)
	if c := s.GetCell(gx, gy); c.Rune != goodGlyph || c.Color != core.ColorWater {
		t.Errorf("Good drop drawn as %+v", c)
	}
	bx, by, _ := b.DropCell(bad)
	if c := s.GetCell(bx, by); c.Rune != badGlyph || c.Color != core.ColorMud {
		t.Errorf("Bad drop drawn as %+v", c)
	}
	if s.Get(0, 0) != '┌' {
		t.Error("Field should be framed")
	}
	if !strings.Contains(s.String(), "Well done") {
		t.Error("Message should be drawn")
	}

	b.SetStreakVisual(true)
	if b.Draw().GetCell(0, 0).Color != core.ColorStreak {
		t.Error("Streak should recolor the frame")
	}
}

func TestBoardWithGame(t *testing.T) {
	b := newTestBoard(40, 20)
	g := drops.New(drops.Options{Presenter: b, Rand: rand.New(rand.NewSource(3))})
	g.Start()

	h := b.RenderEntity(drops.KindGood, 3, 0.5) // unmanaged by the game
	if b.DropCount() != 1 {
		t.Fatal("Expected one drop")
	}
	g.Reset()
	if b.DropCount() != 0 {
		t.Error("Reset should clear the board")
	}
	if _, _, ok := b.DropCell(h); ok {
		t.Error("Cleared drop should be gone")
	}
}
