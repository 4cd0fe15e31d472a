// Package sched provides named timers driven by a virtual clock.
//
// The host loop (the Bubble Tea frame tick or the headless simulator) owns the
// clock and advances it by elapsed time. Callbacks fire synchronously inside
// Advance, so they never interleave with input handling and no locking is needed.
package sched

import "time"

// TaskID names a scheduled task. At most one task per ID exists at any time.
type TaskID string

// Scheduler starts and stops named timers.
// Starting a task replaces any task already registered under the same ID.
// Stopping an unknown or already stopped task is a no-op.
type Scheduler interface {
	// Every runs fn each interval until stopped. The first run happens one
	// interval after the call.
	Every(id TaskID, interval time.Duration, fn func())

	// After runs fn once, delay after the call.
	After(id TaskID, delay time.Duration, fn func())

	// Stop cancels the task with the given ID.
	Stop(id TaskID)

	// StopAll cancels every task.
	StopAll()

	// Active reports whether a task with the given ID is scheduled.
	Active(id TaskID) bool
}

// task is a single scheduled callback.
type task struct {
	id       TaskID
	interval time.Duration // zero for one-shot tasks
	due      time.Duration // virtual time of the next run
	seq      uint64        // registration order, breaks ties between equal due times
	fn       func()
}

// Clock is a virtual-time Scheduler. Time only moves when Advance is called.
type Clock struct {
	now   time.Duration
	seq   uint64
	tasks map[TaskID]*task
}

var _ Scheduler = (*Clock)(nil)

// NewClock creates a clock at virtual time zero with no tasks.
func NewClock() *Clock {
	return &Clock{
		tasks: make(map[TaskID]*task),
	}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Every schedules a periodic task. A non-positive interval only stops the
// existing task with that ID.
func (c *Clock) Every(id TaskID, interval time.Duration, fn func()) {
	c.Stop(id)
	if interval <= 0 || fn == nil {
		return
	}
	c.add(id, interval, interval, fn)
}

// After schedules a one-shot task. Negative delays are treated as zero.
func (c *Clock) After(id TaskID, delay time.Duration, fn func()) {
	c.Stop(id)
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	c.add(id, 0, delay, fn)
}

func (c *Clock) add(id TaskID, interval, delay time.Duration, fn func()) {
	c.seq++
	c.tasks[id] = &task{
		id:       id,
		interval: interval,
		due:      c.now + delay,
		seq:      c.seq,
		fn:       fn,
	}
}

// Stop cancels a task.
func (c *Clock) Stop(id TaskID) {
	delete(c.tasks, id)
}

// StopAll cancels every task.
func (c *Clock) StopAll() {
	clear(c.tasks)
}

// Active reports whether a task is scheduled.
func (c *Clock) Active(id TaskID) bool {
	_, ok := c.tasks[id]
	return ok
}

// Len returns the number of scheduled tasks.
func (c *Clock) Len() int {
	return len(c.tasks)
}

// Advance moves virtual time forward by d and runs every task that falls due,
// in due-time order. Callbacks may start or stop tasks, including their own.
// Returns the number of callbacks run.
func (c *Clock) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := c.now + d
	fired := 0

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			delete(c.tasks, t.id)
		}
		t.fn()
		fired++
	}

	c.now = target
	return fired
}

// nextDue returns the earliest task due at or before target, or nil.
func (c *Clock) nextDue(target time.Duration) *task {
	var best *task
	for _, t := range c.tasks {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
