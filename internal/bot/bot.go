// Package bot plays whack rounds without a human: a computer player reacts
// to each spawn after a fixed delay and hits the right hole with a given
// skill. It backs the headless simulate command.
package bot

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/sched"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// Default bot tuning.
const (
	DefaultReaction = 350 * time.Millisecond
	DefaultSkill    = 0.8 // Chance of whacking the hole that just filled (0-1)
)

// Options tune the computer player.
type Options struct {
	Reaction time.Duration
	Skill    float64 // Clamped to [0, 1]; negative picks DefaultSkill
	Seed     int64 // Zero picks a time-based seed
	Variant  string
	Player   string
}

func (o Options) withDefaults() Options {
	if o.Reaction <= 0 {
		o.Reaction = DefaultReaction
	}
	if o.Skill < 0 {
		o.Skill = DefaultSkill
	}
	o.Skill = min(o.Skill, 1)
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Player == "" {
		o.Player = "bot"
	}
	return o
}

// Player listens to an engine and whacks holes after they fill.
type Player struct {
	whack.NopListener

	engine *whack.Engine
	sched  sched.Scheduler
	rng    *rand.Rand
	opts   Options
	timers sched.Group
	done   []whack.Summary
	ended  chan whack.Summary // Optional, fed without blocking
}

// NewPlayer builds an engine for cfg on s with the player attached.
func NewPlayer(cfg config.WhackConfig, s sched.Scheduler, opts Options) (*Player, error) {
	opts = opts.withDefaults()
	p := &Player{
		sched: s,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		opts:  opts,
	}
	engine, err := whack.New(cfg, whack.Options{
		Scheduler: s,
		Rand:      rand.New(rand.NewSource(opts.Seed + 1)),
		Listener:  p,
		Variant:   opts.Variant,
		Player:    opts.Player,
	})
	if err != nil {
		return nil, err
	}
	p.engine = engine
	return p, nil
}

// Engine returns the engine the player drives.
func (p *Player) Engine() *whack.Engine {
	return p.engine
}

// Summaries returns the rounds finished so far.
func (p *Player) Summaries() []whack.Summary {
	return p.done
}

func (p *Player) SlotSpawned(slot int, _ config.OccupantType) {
	p.timers.Add(p.sched.AfterFunc(p.opts.Reaction, func() {
		p.whack(slot)
	}))
}

func (p *Player) PhaseChanged(_, to whack.Phase) {
	if to != whack.PhaseRunning {
		p.timers.CancelAll()
	}
}

func (p *Player) RoundEnded(s whack.Summary) {
	p.done = append(p.done, s)
	if p.ended != nil {
		select {
		case p.ended <- s:
		default:
		}
	}
}

// whack aims at slot, or at its neighbour when the skill roll fails.
func (p *Player) whack(slot int) {
	if p.engine.Phase() != whack.PhaseRunning {
		return
	}
	if p.rng.Float64() >= p.opts.Skill {
		slot = (slot + 1) % p.engine.Config().Board.Holes
	}
	_, _ = p.engine.Interact(slot)
}

// Simulate plays rounds back to back on a virtual clock and returns their
// summaries. No wall time passes.
func Simulate(cfg config.WhackConfig, rounds int, opts Options) ([]whack.Summary, error) {
	clock := sched.NewVirtual()
	p, err := NewPlayer(cfg, clock, opts)
	if err != nil {
		return nil, err
	}
	roundLen := time.Duration(cfg.Round.Seconds+1) * time.Second
	for range rounds {
		p.engine.Start()
		clock.Advance(roundLen)
	}
	return p.Summaries(), nil
}

var errNoRound = errors.New("bot: round did not start")

// PlayLive plays one round in real time on a sched.Loop and returns its
// summary. Cancelling ctx ends the round early; the summary of the shortened
// round is still returned.
func PlayLive(ctx context.Context, cfg config.WhackConfig, opts Options, resolution time.Duration) (whack.Summary, error) {
	loop := sched.NewLoop(resolution)
	p, err := NewPlayer(cfg, loop.Scheduler(), opts)
	if err != nil {
		return whack.Summary{}, err
	}
	p.ended = make(chan whack.Summary, 1)

	// The loop outlives ctx so the round can still be ended on it.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()

	var (
		summary whack.Summary
		g       errgroup.Group
	)
	g.Go(func() error {
		return loop.Run(loopCtx)
	})
	g.Go(func() error {
		defer stopLoop()
		started := false
		if err := loop.Call(ctx, func() { started = p.engine.Start() }); err != nil {
			return err
		}
		if !started {
			return errNoRound
		}
		select {
		case summary = <-p.ended:
			return nil
		case <-ctx.Done():
		}
		if err := loop.Call(context.Background(), func() { p.engine.End() }); err != nil {
			return err
		}
		select {
		case summary = <-p.ended:
			return nil
		default:
			return ctx.Err()
		}
	})
	if err := g.Wait(); err != nil {
		return whack.Summary{}, err
	}
	return summary, nil
}
