package whack

import (
	"time"

	"github.com/vovakirdan/whack-arcade/internal/config"
)

// Tracker keeps score, combo and hit tallies for one round.
type Tracker struct {
	window  time.Duration
	cap     int
	penalty int

	score     int
	combo     int
	bestCombo int
	hits      int
	misses    int
	typeHits  []int
	lastHit   time.Duration
	hasHit    bool
}

// NewTracker creates a tracker for a table of types occupant kinds.
func NewTracker(cfg config.ScoringConfig, types int) *Tracker {
	return &Tracker{
		window:   cfg.ComboWindow(),
		cap:      max(cfg.ComboCap, 1),
		penalty:  cfg.MissPenalty,
		typeHits: make([]int, types),
	}
}

// Reset zeroes every counter.
func (t *Tracker) Reset() {
	t.score, t.combo, t.bestCombo = 0, 0, 0
	t.hits, t.misses = 0, 0
	clear(t.typeHits)
	t.lastHit, t.hasHit = 0, false
}

// Hit records a hit on type typ worth points at time now and returns the
// points awarded and the new combo. A hit less than the combo window after
// the previous one extends the combo up to the cap; otherwise it restarts
// at 1.
func (t *Tracker) Hit(typ, points int, now time.Duration) (awarded, combo int) {
	t.hits++
	if typ >= 0 && typ < len(t.typeHits) {
		t.typeHits[typ]++
	}

	if t.hasHit && now-t.lastHit < t.window {
		t.combo = min(t.combo+1, t.cap)
	} else {
		t.combo = 1
	}
	t.bestCombo = max(t.bestCombo, t.combo)
	t.lastHit, t.hasHit = now, true

	awarded = points * t.combo
	t.score += awarded
	return awarded, t.combo
}

// Miss records a miss and returns the (non-positive) score change. The score
// never drops below zero.
func (t *Tracker) Miss() int {
	t.misses++
	t.combo = 0
	before := t.score
	t.score = max(0, t.score-t.penalty)
	return t.score - before
}

// Score returns the current score.
func (t *Tracker) Score() int { return t.score }

// Combo returns the live combo at time now: zero once the window has passed
// since the last hit.
func (t *Tracker) Combo(now time.Duration) int {
	if !t.hasHit || now-t.lastHit >= t.window {
		return 0
	}
	return t.combo
}

// BestCombo returns the longest combo of the round.
func (t *Tracker) BestCombo() int { return t.bestCombo }

// Hits returns the hit count.
func (t *Tracker) Hits() int { return t.hits }

// Misses returns the miss count.
func (t *Tracker) Misses() int { return t.misses }

// LastHit returns the scheduler time of the last hit.
func (t *Tracker) LastHit() time.Duration { return t.lastHit }

// TypeHits returns a copy of the per-type hit counts.
func (t *Tracker) TypeHits() []int {
	return append([]int(nil), t.typeHits...)
}
