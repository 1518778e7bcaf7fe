// Package config provides YAML-based round configuration loading and
// difficulty management for the whack arcade.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidConfig is returned when a configuration cannot drive a round.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// WhackConfig contains all tuning for one game variant.
type WhackConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Round      RoundConfig      `yaml:"round"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Spawn      TimingConfig     `yaml:"spawn"`      // Delay between spawns
	Visibility TimingConfig     `yaml:"visibility"` // How long an occupant stays up
	Occupants  Occupants        `yaml:"occupants"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board layout.
type BoardConfig struct {
	Holes   int `yaml:"holes"`
	Columns int `yaml:"columns"` // Layout hint for renderers
}

// RoundConfig defines the round timer.
type RoundConfig struct {
	Seconds int `yaml:"seconds"`
}

// ScoringConfig defines hit, miss and combo rules.
type ScoringConfig struct {
	MissPenalty   int `yaml:"miss_penalty"`
	ComboWindowMs int `yaml:"combo_window_ms"`
	ComboCap      int `yaml:"combo_cap"`
}

// ComboWindow returns the combo window as a duration.
func (s ScoringConfig) ComboWindow() time.Duration {
	return time.Duration(s.ComboWindowMs) * time.Millisecond
}

// TimingConfig describes a duration that shrinks as the round progresses:
// max(Min, Base - level*Ramp) plus a uniform jitter in [0, Jitter).
type TimingConfig struct {
	BaseMs   int `yaml:"base_ms"`
	MinMs    int `yaml:"min_ms"`
	RampMs   int `yaml:"ramp_ms"`
	JitterMs int `yaml:"jitter_ms"`
}

// At returns the duration for the given difficulty level, without jitter.
func (t TimingConfig) At(level float64) time.Duration {
	ms := math.Max(float64(t.MinMs), float64(t.BaseMs)-level*float64(t.RampMs))
	return time.Duration(ms * float64(time.Millisecond))
}

// Jitter returns the jitter bound as a duration.
func (t TimingConfig) Jitter() time.Duration {
	return time.Duration(t.JitterMs) * time.Millisecond
}

// OccupantType is one kind of target that can pop out of a hole.
type OccupantType struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Points int     `yaml:"points"`
	Weight float64 `yaml:"weight"`
	Color  string  `yaml:"color"` // Renderer hint, e.g. "green", "orange"
}

// Occupants is an ordered spawn table. Order matters: it is the walk order of
// the weighted draw and the order of per-type tallies.
type Occupants []OccupantType

// Pick returns the index of the type selected by r, a uniform draw in [0, 1).
// It walks the table accumulating weights and returns the first type whose
// cumulative weight reaches r. When rounding leaves r above the final sum the
// first type is returned.
func (o Occupants) Pick(r float64) int {
	cumulative := 0.0
	for i, t := range o {
		cumulative += t.Weight
		if r <= cumulative {
			return i
		}
	}
	return 0
}

// Index returns the position of the type with the given ID, or -1.
func (o Occupants) Index(id string) int {
	for i, t := range o {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// TotalWeight returns the sum of all weights.
func (o Occupants) TotalWeight() float64 {
	sum := 0.0
	for _, t := range o {
		sum += t.Weight
	}
	return sum
}

// DifficultyConfig defines how timings ramp over a round.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. An empty value means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WhackConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Visibility.BaseMs += 300
		cfg.Visibility.MinMs += 150
	case DifficultyHard:
		cfg.Scoring.MissPenalty *= 2
	}
}

// Validate checks that the configuration can drive a round.
func (c WhackConfig) Validate() error {
	switch {
	case c.Board.Holes < 1:
		return fmt.Errorf("%w: board.holes must be positive, got %d", ErrInvalidConfig, c.Board.Holes)
	case c.Round.Seconds < 1:
		return fmt.Errorf("%w: round.seconds must be positive, got %d", ErrInvalidConfig, c.Round.Seconds)
	case c.Scoring.MissPenalty < 0:
		return fmt.Errorf("%w: scoring.miss_penalty must not be negative", ErrInvalidConfig)
	case c.Scoring.ComboWindowMs <= 0:
		return fmt.Errorf("%w: scoring.combo_window_ms must be positive", ErrInvalidConfig)
	case c.Scoring.ComboCap < 1:
		return fmt.Errorf("%w: scoring.combo_cap must be at least 1", ErrInvalidConfig)
	}

	for name, t := range map[string]TimingConfig{"spawn": c.Spawn, "visibility": c.Visibility} {
		if t.MinMs <= 0 || t.BaseMs < t.MinMs || t.RampMs < 0 || t.JitterMs < 0 {
			return fmt.Errorf("%w: %s timings must satisfy 0 < min_ms <= base_ms, ramp_ms >= 0, jitter_ms >= 0",
				ErrInvalidConfig, name)
		}
	}

	if len(c.Occupants) == 0 {
		return fmt.Errorf("%w: occupants table is empty", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Occupants))
	for _, o := range c.Occupants {
		if o.ID == "" || seen[o.ID] {
			return fmt.Errorf("%w: occupant id %q is empty or duplicated", ErrInvalidConfig, o.ID)
		}
		seen[o.ID] = true
		if o.Points <= 0 || o.Weight < 0 {
			return fmt.Errorf("%w: occupant %q needs positive points and a non-negative weight", ErrInvalidConfig, o.ID)
		}
	}
	if sum := c.Occupants.TotalWeight(); math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("%w: occupant weights sum to %.3f, expected 1.0", ErrInvalidConfig, sum)
	}

	return nil
}
