package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/sched"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

const (
	flashFor = 900 * time.Millisecond
	popFor   = 300 * time.Millisecond
)

// hud listens to the engine and keeps what the view needs between frames:
// the last interaction banner, recently whacked holes and finished rounds
// that still have to be saved.
type hud struct {
	whack.NopListener

	clock sched.Scheduler

	flash      string
	flashColor core.Color
	flashUntil time.Duration

	pops map[int]time.Duration // Hole -> end of the hit animation

	pending []whack.Summary // Finished rounds not yet handed to storage
	last    *whack.Summary  // Most recent finished round, for the game over screen
}

func newHUD(clock sched.Scheduler) *hud {
	return &hud{clock: clock, pops: make(map[int]time.Duration)}
}

func (h *hud) SlotSpawned(slot int, _ config.OccupantType) {
	delete(h.pops, slot)
}

func (h *hud) InteractionResult(slot int, r whack.Result) {
	now := h.clock.Now()
	switch r.Outcome {
	case whack.OutcomeHit:
		h.flash = fmt.Sprintf("+%d %s", r.Points, r.Occupant.Name)
		if r.Combo > 1 {
			h.flash += fmt.Sprintf("  COMBO x%d", r.Combo)
		}
		h.flashColor = core.ColorBrightGreen
		h.pops[slot] = now + popFor
	case whack.OutcomeMiss:
		h.flash = "MISS"
		if r.Points < 0 {
			h.flash += fmt.Sprintf(" %d", r.Points)
		}
		h.flashColor = core.ColorBrightRed
	default:
		return
	}
	h.flashUntil = now + flashFor
}

func (h *hud) PhaseChanged(from, to whack.Phase) {
	if to == whack.PhaseRunning && from != whack.PhasePaused {
		h.last = nil
		h.flash = ""
		clear(h.pops)
	}
	if to == whack.PhaseReady {
		h.last = nil
		h.flash = ""
	}
}

func (h *hud) RoundEnded(s whack.Summary) {
	h.pending = append(h.pending, s)
	h.last = &s
}

// takeEnded returns and forgets the rounds that finished since the last call.
func (h *hud) takeEnded() []whack.Summary {
	out := h.pending
	h.pending = nil
	return out
}

// banner returns the interaction banner if it is still showing.
func (h *hud) banner() (string, core.Color, bool) {
	if h.flash == "" || h.clock.Now() >= h.flashUntil {
		return "", core.ColorDefault, false
	}
	return h.flash, h.flashColor, true
}

// popping reports whether hole slot is showing its hit animation.
func (h *hud) popping(slot int) bool {
	until, ok := h.pops[slot]
	return ok && h.clock.Now() < until
}
