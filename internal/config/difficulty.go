package config

import (
	"math"
	"time"
)

// DifficultyManager turns round progress into the current spawn and
// visibility timings.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) for the given round
// progress (0 at the start of a round, 1 when the timer runs out).
func (d *DifficultyManager) Level(progress float64) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnDelay returns the delay before the next spawn, without jitter.
func (d *DifficultyManager) SpawnDelay(t TimingConfig, progress float64) time.Duration {
	return t.At(d.Level(progress))
}

// VisibleFor returns how long a fresh occupant stays up, without jitter.
func (d *DifficultyManager) VisibleFor(t TimingConfig, progress float64) time.Duration {
	return t.At(d.Level(progress))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
