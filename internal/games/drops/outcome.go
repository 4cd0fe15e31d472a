package drops

// Outcome is the result of a finished round.
type Outcome struct {
	Won     bool
	Score   int
	Target  int
	Message string
}

// endGame closes the round: timers stop, falling entities are abandoned, and
// the score is judged against the active profile's target.
func (g *Game) endGame() {
	g.session.State = StateEnded
	g.sched.StopAll()
	g.discardEntities()

	score := g.session.Score
	target := g.profile.TargetScore
	won := score >= target

	var msg string
	if won {
		msg = g.pick(g.winPool)
		if err := g.view.Celebrate(); err != nil {
			g.logger.Debug("celebration unavailable, pulsing score", "error", err)
			g.view.PulseScore()
		}
		g.view.PlaySound(CueWin)
	} else {
		msg = g.pick(g.losePool)
		g.view.PlaySound(CueLose)
	}

	g.view.ShowMessage(msg)
	g.view.Announce(msg)

	g.outcome = &Outcome{
		Won:     won,
		Score:   score,
		Target:  target,
		Message: msg,
	}
	g.logger.Info("round over", "won", won, "score", score, "target", target, "spawned", g.spawned)
}

// pick returns a uniformly random message from pool.
func (g *Game) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[g.rng.Intn(len(pool))]
}
