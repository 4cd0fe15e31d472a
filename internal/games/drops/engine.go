package drops

// spawn creates one entity with the active profile and hands it to the
// presenter. Only runs while the round is running.
func (g *Game) spawn() {
	if g.session.State != StateRunning {
		return
	}

	p := g.profile
	kind := KindGood
	if g.rng.Float64() < p.BadProbability {
		kind = KindBad
	}
	fall := p.FallMinSecs + g.rng.Float64()*(p.FallMaxSecs-p.FallMinSecs)
	position := g.rng.Float64()

	h := g.view.RenderEntity(kind, fall, position)
	e := &Entity{
		Handle:   h,
		Kind:     kind,
		FallSecs: fall,
		Position: position,
		profile:  p,
	}
	g.live[h] = e
	g.spawned++

	g.view.OnEntityInteracted(h, func() { g.resolveByInteraction(e) })
	g.view.OnEntityExpired(h, func() { g.resolveByExpiry(e) })

	g.logger.Debug("spawned", "handle", h, "kind", kind, "fall", fall)
}

// resolveByInteraction scores a caught entity. Returns false if the entity was
// already resolved or the round is not running.
func (g *Game) resolveByInteraction(e *Entity) bool {
	if g.session.State != StateRunning {
		return false
	}
	if !e.resolve() {
		return false
	}
	delete(g.live, e.Handle)

	delta := e.delta()
	applied := g.session.applyScoreDelta(delta)

	cue := CueGood
	if e.Kind == KindGood {
		g.session.Streak++
	} else {
		g.session.Streak = 0
		cue = CueBad
	}

	g.view.ShowFloatingDelta(delta)
	g.view.PlaySound(cue)
	g.view.ShowScore(g.session.Score)
	if e.Kind == KindGood {
		g.view.PulseScore()
	}
	g.view.SetStreakVisual(g.streakActive())

	if applied > 0 {
		g.checkMilestones()
	}

	g.view.RemoveEntity(e.Handle)
	g.logger.Debug("caught", "handle", e.Handle, "kind", e.Kind, "delta", delta, "score", g.session.Score)
	return true
}

// resolveByExpiry removes an entity that fell out without being caught.
// Missing a drop costs nothing.
func (g *Game) resolveByExpiry(e *Entity) bool {
	if !e.resolve() {
		return false
	}
	delete(g.live, e.Handle)
	g.view.RemoveEntity(e.Handle)
	g.logger.Debug("expired", "handle", e.Handle, "kind", e.Kind)
	return true
}

// discardEntities abandons every live entity. Their triggers become no-ops.
func (g *Game) discardEntities() {
	for h, e := range g.live {
		e.resolve()
		delete(g.live, h)
	}
	g.view.ClearAllEntities()
}

func (g *Game) streakActive() bool {
	return g.cfg.StreakThreshold > 0 && g.session.Streak >= g.cfg.StreakThreshold
}
