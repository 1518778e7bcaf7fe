package whack

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/sched"
)

var errNoScheduler = errors.New("whack: a scheduler is required")

// Engine runs rounds on one board.
type Engine struct {
	cfg        config.WhackConfig
	sched      sched.Scheduler
	rng        Rand
	wall       func() time.Time
	newID      func() string
	listener   Listener
	difficulty *config.DifficultyManager

	board   *Board
	tracker *Tracker
	timers  sched.Group // Countdown tick and next spawn

	phase     Phase
	remaining int
	startedAt time.Time
	highScore int
	player    string
	variant   string
}

// New creates an engine in the Ready phase.
func New(cfg config.WhackConfig, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, errNoScheduler
	}

	e := &Engine{
		cfg:        cfg,
		sched:      opts.Scheduler,
		rng:        opts.Rand,
		wall:       opts.Now,
		newID:      opts.NewID,
		listener:   opts.Listener,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		tracker:    NewTracker(cfg.Scoring, len(cfg.Occupants)),
		remaining:  cfg.Round.Seconds,
		highScore:  opts.HighScore,
		player:     opts.Player,
		variant:    opts.Variant,
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.wall == nil {
		e.wall = time.Now
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	if e.listener == nil {
		e.listener = NopListener{}
	}
	e.board = NewBoard(e.sched, cfg.Board.Holes, func(i int) {
		e.listener.SlotVacated(i)
	})
	return e, nil
}

// Start begins a round from Ready or Ended. Counters, board and timers are
// reset first. It returns false in any other phase.
func (e *Engine) Start() bool {
	if e.phase != PhaseReady && e.phase != PhaseEnded {
		return false
	}

	e.timers.CancelAll()
	e.board.Build(e.cfg.Board.Holes)
	e.tracker.Reset()
	e.remaining = e.cfg.Round.Seconds
	e.startedAt = e.wall()

	e.setPhase(PhaseRunning)
	e.listener.Tick(e.remaining)
	e.armTick()
	e.scheduleSpawn()
	return true
}

// Pause suspends a running round. Score, combo and remaining time are kept
// and occupants stay up with their expiry frozen.
func (e *Engine) Pause() bool {
	if e.phase != PhaseRunning {
		return false
	}
	e.timers.CancelAll()
	e.board.Freeze()
	e.setPhase(PhasePaused)
	return true
}

// Resume continues a paused round with a fresh countdown second and a fresh
// spawn delay.
func (e *Engine) Resume() bool {
	if e.phase != PhasePaused {
		return false
	}
	e.setPhase(PhaseRunning)
	e.board.Thaw()
	e.armTick()
	e.scheduleSpawn()
	return true
}

// TogglePause pauses a running round or resumes a paused one.
func (e *Engine) TogglePause() bool {
	switch e.phase {
	case PhaseRunning:
		return e.Pause()
	case PhasePaused:
		return e.Resume()
	default:
		return false
	}
}

// End finishes a running or paused round early. The round is finalised
// exactly as on time-up.
func (e *Engine) End() bool {
	if e.phase != PhaseRunning && e.phase != PhasePaused {
		return false
	}
	e.finish(ReasonStopped)
	return true
}

// Reset returns to Ready from any phase, discarding the round in progress
// without a summary.
func (e *Engine) Reset() {
	e.timers.CancelAll()
	e.board.Clear()
	e.tracker.Reset()
	e.remaining = e.cfg.Round.Seconds
	e.setPhase(PhaseReady)
}

// Interact whacks slot i. Outside a running round it does nothing and
// reports OutcomeIgnored. An index off the board is an error in any phase.
func (e *Engine) Interact(i int) (Result, error) {
	if i < 0 || i >= e.board.Len() {
		return Result{Slot: i, Type: -1}, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSlot, i, e.board.Len())
	}
	if e.phase != PhaseRunning {
		return Result{Slot: i, Type: -1}, nil
	}

	var res Result
	if s, _ := e.board.Slot(i); s.Occupied {
		occ := e.cfg.Occupants[s.Type]
		points, combo := e.tracker.Hit(s.Type, occ.Points, e.sched.Now())
		res = Result{Outcome: OutcomeHit, Slot: i, Points: points, Combo: combo, Type: s.Type, Occupant: occ}
		e.board.Vacate(i)
	} else {
		delta := e.tracker.Miss()
		res = Result{Outcome: OutcomeMiss, Slot: i, Points: delta, Type: -1}
	}

	e.listener.InteractionResult(i, res)
	return res, nil
}

func (e *Engine) armTick() {
	e.timers.Add(e.sched.AfterFunc(time.Second, e.tick))
}

func (e *Engine) tick() {
	if e.phase != PhaseRunning {
		return
	}
	e.remaining--
	e.listener.Tick(e.remaining)
	if e.remaining <= 0 {
		e.finish(ReasonTimeUp)
		return
	}
	e.armTick()
}

// finish stops every timer, clears the board and emits the summary.
func (e *Engine) finish(reason EndReason) {
	e.timers.CancelAll()
	e.board.Clear()

	score := e.tracker.Score()
	newHigh := score > e.highScore
	if newHigh {
		e.highScore = score
	}

	counts := e.tracker.TypeHits()
	typeHits := make([]TypeCount, len(counts))
	for i, n := range counts {
		typeHits[i] = TypeCount{ID: e.cfg.Occupants[i].ID, Name: e.cfg.Occupants[i].Name, Hits: n}
	}

	summary := Summary{
		ID:            e.newID(),
		Variant:       e.variant,
		Player:        e.player,
		Score:         score,
		HighScore:     e.highScore,
		NewHighScore:  newHigh,
		BestCombo:     e.tracker.BestCombo(),
		Hits:          e.tracker.Hits(),
		Misses:        e.tracker.Misses(),
		TypeHits:      typeHits,
		RoundSeconds:  e.cfg.Round.Seconds,
		PlayedSeconds: e.cfg.Round.Seconds - e.remaining,
		StartedAt:     e.startedAt,
		EndedAt:       e.wall(),
		Reason:        reason,
	}

	e.setPhase(PhaseEnded)
	e.listener.RoundEnded(summary)
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	old := e.phase
	e.phase = p
	e.listener.PhaseChanged(old, p)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// State returns a snapshot of the round.
func (e *Engine) State() RoundState {
	now := e.sched.Now()
	return RoundState{
		Phase:         e.phase,
		Score:         e.tracker.Score(),
		Combo:         e.tracker.Combo(now),
		BestCombo:     e.tracker.BestCombo(),
		LastHit:       e.tracker.LastHit(),
		Hits:          e.tracker.Hits(),
		Misses:        e.tracker.Misses(),
		TimeRemaining: e.remaining,
		RoundSeconds:  e.cfg.Round.Seconds,
		HighScore:     e.highScore,
		Occupied:      e.board.OccupiedCount(),
		Player:        e.player,
		Variant:       e.variant,
	}
}

// Slots returns a view of the board.
func (e *Engine) Slots() []Slot {
	return e.board.Slots()
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.WhackConfig {
	return e.cfg
}

// Occupant returns the occupant type at index typ.
func (e *Engine) Occupant(typ int) (config.OccupantType, bool) {
	if typ < 0 || typ >= len(e.cfg.Occupants) {
		return config.OccupantType{}, false
	}
	return e.cfg.Occupants[typ], true
}

// Player returns the player name attached to summaries.
func (e *Engine) Player() string {
	return e.player
}

// SetPlayer changes the player name for the next summaries.
func (e *Engine) SetPlayer(name string) {
	e.player = name
}

// HighScore returns the best score known to the engine.
func (e *Engine) HighScore() int {
	return e.highScore
}

// SetHighScore replaces the persisted best score, e.g. after the player
// changes.
func (e *Engine) SetHighScore(score int) {
	e.highScore = score
}
