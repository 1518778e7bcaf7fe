package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/villain.yaml
var defaultVillainYAML []byte

// embeddedDefaults maps a variant ID to its embedded YAML.
var embeddedDefaults = map[string][]byte{
	"classic": defaultClassicYAML,
	"villain": defaultVillainYAML,
}

// hardcodedDefaults is the last resort when the embedded YAML cannot be parsed.
var hardcodedDefaults = map[string]func() WhackConfig{
	"classic": DefaultClassicConfig,
	"villain": DefaultVillainConfig,
}

// baseConfig holds the timings shared by both bundled variants.
func baseConfig() WhackConfig {
	return WhackConfig{
		Board: BoardConfig{
			Holes:   9,
			Columns: 3,
		},
		Round: RoundConfig{
			Seconds: 30,
		},
		Scoring: ScoringConfig{
			MissPenalty:   5,
			ComboWindowMs: 1500,
			ComboCap:      5,
		},
		Spawn: TimingConfig{
			BaseMs:   900,
			MinMs:    350,
			RampMs:   500,
			JitterMs: 300,
		},
		Visibility: TimingConfig{
			BaseMs:   1200,
			MinMs:    400,
			RampMs:   600,
			JitterMs: 300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
		},
	}
}

// DefaultClassicConfig returns the default classic whack-a-mole configuration.
func DefaultClassicConfig() WhackConfig {
	cfg := baseConfig()
	cfg.Occupants = Occupants{
		{ID: "plain", Name: "Mole", Points: 10, Weight: 0.8, Color: "yellow"},
		{ID: "bonus", Name: "Golden Mole", Points: 30, Weight: 0.2, Color: "brightyellow"},
	}
	return cfg
}

// DefaultVillainConfig returns the default Whack-a-Villain configuration.
func DefaultVillainConfig() WhackConfig {
	cfg := baseConfig()
	cfg.Occupants = Occupants{
		{ID: "loki", Name: "Loki", Points: 10, Weight: 0.55, Color: "green"},
		{ID: "mangog", Name: "Mangog", Points: 15, Weight: 0.33, Color: "orange"},
		{ID: "thanos", Name: "Thanos", Points: 25, Weight: 0.12, Color: "magenta"},
	}
	return cfg
}
