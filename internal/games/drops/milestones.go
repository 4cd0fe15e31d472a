package drops

// Milestone is a score threshold announced once per round.
type Milestone struct {
	Threshold int
	Message   string
}

// checkMilestones fires every milestone the score has reached that has not
// fired yet this round.
func (g *Game) checkMilestones() {
	for i, m := range g.milestones {
		if g.session.Score < m.Threshold || g.session.triggered[i] {
			continue
		}
		g.session.triggered[i] = true

		g.view.ShowMilestoneToast(m.Message)
		g.view.Announce(m.Message)
		g.sched.After(TaskAnnounceClear, g.cfg.Toast(), func() {
			g.view.Announce("")
		})
		g.logger.Info("milestone", "threshold", m.Threshold, "score", g.session.Score)
	}
}

// Milestones returns the configured milestones in ascending order.
func (g *Game) Milestones() []Milestone {
	out := make([]Milestone, len(g.milestones))
	copy(out, g.milestones)
	return out
}
