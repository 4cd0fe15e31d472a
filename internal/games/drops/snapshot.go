package drops

// Snapshot captures the session for display and tests.
type Snapshot struct {
	State         State
	Score         int
	TimeRemaining int
	Streak        int
	Triggered     []int // Thresholds of fired milestones, ascending
	Live          int   // Entities spawned and not yet resolved
	Spawned       int   // Entities spawned this round
	Difficulty    string
	Target        int
	SpawnActive   bool
	TickActive    bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	var triggered []int
	for i, m := range g.milestones {
		if g.session.triggered[i] {
			triggered = append(triggered, m.Threshold)
		}
	}

	return Snapshot{
		State:         g.session.State,
		Score:         g.session.Score,
		TimeRemaining: g.session.TimeRemaining,
		Streak:        g.session.Streak,
		Triggered:     triggered,
		Live:          len(g.live),
		Spawned:       g.spawned,
		Difficulty:    g.profile.Name,
		Target:        g.profile.TargetScore,
		SpawnActive:   g.sched.Active(TaskSpawn),
		TickActive:    g.sched.Active(TaskTick),
	}
}
