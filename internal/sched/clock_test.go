package sched

import (
	"testing"
	"time"
)

func TestClockEvery(t *testing.T) {
	c := NewClock()
	count := 0
	c.Every("spawn", 900*time.Millisecond, func() { count++ })

	c.Advance(899 * time.Millisecond)
	if count != 0 {
		t.Errorf("Task fired early: count=%d", count)
	}

	c.Advance(time.Millisecond)
	if count != 1 {
		t.Errorf("Expected 1 run at 900ms, got %d", count)
	}

	c.Advance(9 * time.Second)
	if count != 11 {
		t.Errorf("Expected 11 runs at 9.9s, got %d", count)
	}
}

func TestClockAfterRunsOnce(t *testing.T) {
	c := NewClock()
	count := 0
	c.After("clear", 2*time.Second, func() { count++ })

	c.Advance(10 * time.Second)
	if count != 1 {
		t.Errorf("One-shot task should run once, ran %d times", count)
	}
	if c.Active("clear") {
		t.Error("One-shot task should not be active after running")
	}
}

func TestClockRestartReplaces(t *testing.T) {
	c := NewClock()
	first, second := 0, 0

	c.Every("tick", time.Second, func() { first++ })
	c.Every("tick", time.Second, func() { second++ })

	if c.Len() != 1 {
		t.Fatalf("Expected one task after restart, got %d", c.Len())
	}

	c.Advance(3 * time.Second)
	if first != 0 {
		t.Errorf("Replaced task should never fire, fired %d times", first)
	}
	if second != 3 {
		t.Errorf("Expected 3 runs of replacement, got %d", second)
	}
}

func TestClockStopIdempotent(t *testing.T) {
	c := NewClock()
	c.Every("tick", time.Second, func() {})

	c.Stop("tick")
	c.Stop("tick")
	c.Stop("missing")
	c.StopAll()
	c.StopAll()

	if c.Len() != 0 {
		t.Errorf("Expected no tasks, got %d", c.Len())
	}
	if c.Advance(5*time.Second) != 0 {
		t.Error("Stopped tasks should not fire")
	}
}

func TestClockOrdering(t *testing.T) {
	c := NewClock()
	var order []TaskID

	c.Every("spawn", 900*time.Millisecond, func() { order = append(order, "spawn") })
	c.Every("tick", time.Second, func() { order = append(order, "tick") })

	c.Advance(2 * time.Second)

	expected := []TaskID{"spawn", "tick", "spawn", "tick"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Order[%d] = %s, expected %s", i, order[i], expected[i])
		}
	}
}

func TestClockEqualDueUsesRegistrationOrder(t *testing.T) {
	c := NewClock()
	var order []TaskID

	c.Every("b", time.Second, func() { order = append(order, "b") })
	c.Every("a", time.Second, func() { order = append(order, "a") })

	c.Advance(time.Second)

	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("Expected [b a], got %v", order)
	}
}

func TestClockCallbackStopsOther(t *testing.T) {
	c := NewClock()
	spawned := 0

	c.Every("spawn", 500*time.Millisecond, func() { spawned++ })
	c.After("end", time.Second, func() { c.StopAll() })

	c.Advance(10 * time.Second)

	// spawn runs at 500ms and 1000ms; 1000ms spawn registered first so it runs
	// before the end task at the same instant.
	if spawned != 2 {
		t.Errorf("Expected 2 spawns before StopAll, got %d", spawned)
	}
	if c.Len() != 0 {
		t.Errorf("Expected no tasks after StopAll, got %d", c.Len())
	}
}

func TestClockCallbackRestartsItself(t *testing.T) {
	c := NewClock()
	runs := 0
	var fn func()
	fn = func() {
		runs++
		c.Every("self", 2*time.Second, fn)
	}
	c.Every("self", time.Second, fn)

	c.Advance(5 * time.Second)

	// 1s, then every 2s: 3s, 5s
	if runs != 3 {
		t.Errorf("Expected 3 runs, got %d", runs)
	}
	if c.Len() != 1 {
		t.Errorf("Expected exactly one task, got %d", c.Len())
	}
}

func TestClockIgnoresInvalid(t *testing.T) {
	c := NewClock()
	c.Every("zero", 0, func() {})
	c.Every("nil", time.Second, nil)

	if c.Len() != 0 {
		t.Errorf("Invalid tasks should not be scheduled, got %d", c.Len())
	}

	c.Advance(-time.Second)
	if c.Now() != 0 {
		t.Errorf("Negative advance should not move time, now=%v", c.Now())
	}
}
