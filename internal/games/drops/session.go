package drops

// State is the lifecycle state of a session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session holds the mutable state of one round.
type Session struct {
	State         State
	Score         int // Never negative
	TimeRemaining int // Seconds
	Streak        int // Consecutive good catches

	triggered map[int]bool // Milestone indexes already fired
}

// newSession creates an idle session with a full clock.
func newSession(durationSecs int) Session {
	s := Session{}
	s.reset(durationSecs)
	return s
}

// reset restores initial values and returns to Idle.
func (s *Session) reset(durationSecs int) {
	s.State = StateIdle
	s.Score = 0
	s.TimeRemaining = durationSecs
	s.Streak = 0
	s.triggered = make(map[int]bool)
}

// applyScoreDelta adds delta to the score, flooring at zero.
// Returns the change actually applied.
func (s *Session) applyScoreDelta(delta int) int {
	before := s.Score
	s.Score += delta
	if s.Score < 0 {
		s.Score = 0
	}
	return s.Score - before
}
