// Package whack implements the round engine of the whack arcade: a board of
// slots, a self-rescheduling spawner, combo scoring and the round controller
// that ties them to a countdown.
//
// An Engine is not safe for concurrent use. Every method and every timer
// callback must run on one goroutine; timers fire from inside the
// scheduler's Advance, so the goroutine that advances the clock is the one
// that drives the engine.
package whack

import (
	"time"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/sched"
)

// Phase is the round controller state.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Outcome classifies an interaction.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Round not running
	OutcomeHit
	OutcomeMiss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "Hit"
	case OutcomeMiss:
		return "Miss"
	default:
		return "Ignored"
	}
}

// Result describes what one interaction did.
type Result struct {
	Outcome  Outcome
	Slot     int
	Points   int // Signed change actually applied to the score
	Combo    int // Combo after the interaction
	Type     int // Index into the occupant table, -1 unless Outcome is OutcomeHit
	Occupant config.OccupantType
}

// EndReason records why a round finished.
type EndReason string

const (
	ReasonTimeUp  EndReason = "time_up"
	ReasonStopped EndReason = "stopped"
)

// RoundState is a point-in-time snapshot of the engine.
type RoundState struct {
	Phase         Phase
	Score         int
	Combo         int // Zero once the combo window has elapsed since the last hit
	BestCombo     int
	LastHit       time.Duration
	Hits          int
	Misses        int
	TimeRemaining int // Seconds
	RoundSeconds  int
	HighScore     int
	Occupied      int
	Player        string
	Variant       string
}

// TypeCount is the hit tally for one occupant type.
type TypeCount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hits int    `json:"hits"`
}

// Summary is the record of one finished round. It is produced exactly once
// per round and shares no memory with the engine.
type Summary struct {
	ID            string      `json:"id"`
	Variant       string      `json:"variant"`
	Player        string      `json:"player"`
	Score         int         `json:"score"`
	HighScore     int         `json:"high_score"`
	NewHighScore  bool        `json:"new_high_score"`
	BestCombo     int         `json:"best_combo"`
	Hits          int         `json:"hits"`
	Misses        int         `json:"misses"`
	TypeHits      []TypeCount `json:"type_hits"`
	RoundSeconds  int         `json:"round_seconds"`
	PlayedSeconds int         `json:"played_seconds"`
	StartedAt     time.Time   `json:"started_at"`
	EndedAt       time.Time   `json:"ended_at"`
	Reason        EndReason   `json:"reason"`
}

// Interactions returns hits plus misses.
func (s Summary) Interactions() int {
	return s.Hits + s.Misses
}

// HitRate returns hits as a percentage of interactions, or 0 with none.
func (s Summary) HitRate() float64 {
	if n := s.Interactions(); n > 0 {
		return float64(s.Hits) * 100 / float64(n)
	}
	return 0
}

// Rand is the random source used for jitter, slot choice and type draws.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Options carries the collaborators of an Engine.
type Options struct {
	Scheduler sched.Scheduler  // Required
	Rand      Rand             // Defaults to a time-seeded source
	Now       func() time.Time // Wall clock for summary timestamps, defaults to time.Now
	NewID     func() string    // Summary IDs, defaults to random UUIDs
	Listener  Listener         // Defaults to NopListener
	Variant   string
	Player    string
	HighScore int // Persisted best score for this player and variant
}
