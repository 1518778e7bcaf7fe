package bot

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

func shortRound(seconds int) config.WhackConfig {
	cfg := config.DefaultClassicConfig()
	cfg.Round.Seconds = seconds
	return cfg
}

func TestSimulatePerfectBot(t *testing.T) {
	summaries, err := Simulate(shortRound(10), 3, Options{Skill: 1, Reaction: 100 * time.Millisecond, Seed: 42, Variant: "classic"})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}
	for i, s := range summaries {
		if s.Reason != whack.ReasonTimeUp {
			t.Errorf("round %d reason = %q, want time_up", i, s.Reason)
		}
		if s.Hits == 0 {
			t.Errorf("round %d: perfect bot scored no hits", i)
		}
		// Reacting well inside the visibility floor means nothing escapes.
		if s.Misses != 0 {
			t.Errorf("round %d: perfect bot missed %d times", i, s.Misses)
		}
		if s.Variant != "classic" || s.Player != "bot" {
			t.Errorf("round %d summary = %+v", i, s)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	opts := Options{Skill: 0.6, Seed: 7}
	a, err := Simulate(shortRound(8), 1, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(shortRound(8), 1, opts)
	if err != nil {
		t.Fatal(err)
	}
	if a[0].Score != b[0].Score || a[0].Hits != b[0].Hits || a[0].Misses != b[0].Misses {
		t.Errorf("same seed gave %+v and %+v", a[0], b[0])
	}
}

func TestSimulateSloppyBotMisses(t *testing.T) {
	summaries, err := Simulate(shortRound(20), 1, Options{Skill: 0.01, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	s := summaries[0]
	if s.Misses == 0 {
		t.Error("a bot that always aims wrong should miss")
	}
	if s.Score < 0 {
		t.Errorf("score = %d, must not go negative", s.Score)
	}
}

func TestOptionsSkill(t *testing.T) {
	tests := []struct {
		skill float64
		want  float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1.5, 1},
		{-1, DefaultSkill},
	}
	for _, tt := range tests {
		if got := (Options{Skill: tt.skill}).withDefaults().Skill; got != tt.want {
			t.Errorf("Skill %v became %v, want %v", tt.skill, got, tt.want)
		}
	}
}

func TestSimulateZeroSkillAimsWrong(t *testing.T) {
	base := Options{Reaction: 100 * time.Millisecond, Seed: 11}

	zero := base
	zero.Skill = 0
	clumsy, err := Simulate(shortRound(10), 1, zero)
	if err != nil {
		t.Fatal(err)
	}
	perfect := base
	perfect.Skill = 1
	sharp, err := Simulate(shortRound(10), 1, perfect)
	if err != nil {
		t.Fatal(err)
	}

	if clumsy[0].Misses == 0 {
		t.Error("a zero-skill bot should miss")
	}
	if clumsy[0].Hits >= sharp[0].Hits {
		t.Errorf("zero skill hit %d times, perfect bot %d", clumsy[0].Hits, sharp[0].Hits)
	}
}

func TestSimulateInvalidConfig(t *testing.T) {
	cfg := shortRound(10)
	cfg.Occupants = nil
	if _, err := Simulate(cfg, 1, Options{}); err == nil {
		t.Fatal("expected an invalid config error")
	}
}

func TestPlayLiveCancelEndsRound(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	s, err := PlayLive(ctx, shortRound(30), Options{Seed: 1}, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("PlayLive: %v", err)
	}
	if s.Reason != whack.ReasonStopped {
		t.Errorf("reason = %q, want stopped", s.Reason)
	}
	if s.ID == "" {
		t.Error("summary should carry an id")
	}
}

func TestPlayLiveFullRound(t *testing.T) {
	if testing.Short() {
		t.Skip("plays a one second round in real time")
	}
	s, err := PlayLive(context.Background(), shortRound(1), Options{Seed: 2}, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("PlayLive: %v", err)
	}
	if s.Reason != whack.ReasonTimeUp {
		t.Errorf("reason = %q, want time_up", s.Reason)
	}
}
