package whack

import "time"

// progress returns how far the round has run, 0 at the start and 1 at time-up.
func (e *Engine) progress() float64 {
	return 1 - float64(e.remaining)/float64(e.cfg.Round.Seconds)
}

// scheduleSpawn arms the next spawn cycle.
func (e *Engine) scheduleSpawn() {
	delay := e.difficulty.SpawnDelay(e.cfg.Spawn, e.progress()) + e.jitter(e.cfg.Spawn.Jitter())
	e.timers.Add(e.sched.AfterFunc(delay, e.spawnOnce))
}

// spawnOnce fills one vacant slot and re-arms itself. A full board skips the
// spawn but keeps the loop going. Once the round leaves Running the loop
// stops for good; Resume starts a new one.
func (e *Engine) spawnOnce() {
	if e.phase != PhaseRunning {
		return
	}

	if vacant := e.board.Vacant(); len(vacant) > 0 {
		i := vacant[e.rng.Intn(len(vacant))]
		typ := e.drawType()
		visible := e.difficulty.VisibleFor(e.cfg.Visibility, e.progress()) + e.jitter(e.cfg.Visibility.Jitter())
		if err := e.board.Occupy(i, typ, visible); err == nil {
			e.listener.SlotSpawned(i, e.cfg.Occupants[typ])
		}
	}

	e.scheduleSpawn()
}

// drawType picks an occupant type by weight.
func (e *Engine) drawType() int {
	return e.cfg.Occupants.Pick(e.rng.Float64())
}

// jitter returns a uniform duration in [0, bound).
func (e *Engine) jitter(bound time.Duration) time.Duration {
	if bound <= 0 {
		return 0
	}
	return time.Duration(e.rng.Float64() * float64(bound))
}
