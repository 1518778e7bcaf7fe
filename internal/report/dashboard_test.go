package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/whack"
)

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   Trend
	}{
		{"none", nil, TrendSteady},
		{"single", []int{120}, TrendSteady},
		{"improving", []int{100, 100, 150, 150}, TrendImproving},
		{"declining", []int{200, 200, 100, 100}, TrendDeclining},
		{"within ten percent", []int{100, 105}, TrendSteady},
		{"odd count splits low", []int{100, 200, 200}, TrendImproving},
		{"exactly ten percent is steady", []int{100, 110}, TrendSteady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendOf(tt.scores); got != tt.want {
				t.Errorf("TrendOf(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}

func sampleGames() []whack.Summary {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return []whack.Summary{
		{ID: "g1", Player: "ada", Score: 100, Hits: 8, Misses: 2, BestCombo: 3, PlayedSeconds: 60, EndedAt: base},
		{ID: "g2", Player: "ada", Score: 151, Hits: 10, Misses: 5, BestCombo: 4, PlayedSeconds: 45, EndedAt: base.Add(time.Hour)},
		{ID: "g3", Player: "ada", Score: 250, Hits: 15, Misses: 1, BestCombo: 6, PlayedSeconds: 60, EndedAt: base.Add(2 * time.Hour)},
	}
}

func TestBuildDashboard(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	d := BuildDashboard(day, "ada", sampleGames())

	if d.Empty() {
		t.Fatal("dashboard should not be empty")
	}
	if d.Best != 250 {
		t.Errorf("Best = %d, want 250", d.Best)
	}
	// (100+151+250)/3 = 167
	if d.Average != 167 {
		t.Errorf("Average = %d, want 167", d.Average)
	}
	if d.Hits != 33 || d.Misses != 8 {
		t.Errorf("Hits/Misses = %d/%d, want 33/8", d.Hits, d.Misses)
	}
	// 33/41 = 80.49%
	if d.HitRate != 80 {
		t.Errorf("HitRate = %d, want 80", d.HitRate)
	}
	if d.PlaySeconds != 165 || d.PlayMinutes() != 3 {
		t.Errorf("play time = %ds (%dm), want 165s (3m)", d.PlaySeconds, d.PlayMinutes())
	}
	if d.Trend != TrendImproving {
		t.Errorf("Trend = %v, want Improving", d.Trend)
	}
	if d.DayLabel() != "2026-03-14" {
		t.Errorf("DayLabel() = %q", d.DayLabel())
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(time.Now(), "ada", nil)
	if !d.Empty() {
		t.Fatal("expected empty dashboard")
	}
	if d.HitRate != 0 || d.Average != 0 || d.Trend != TrendSteady {
		t.Errorf("empty dashboard has values: %+v", d)
	}
}

func TestBuildDashboardCopiesGames(t *testing.T) {
	games := sampleGames()
	d := BuildDashboard(time.Now(), "ada", games)
	games[0].Score = 9999
	if d.Games[0].Score != 100 {
		t.Error("dashboard shares its games slice with the caller")
	}
}

func TestDashboardJSONTrend(t *testing.T) {
	d := BuildDashboard(time.Now(), "ada", sampleGames())
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"trend":"improving"`) {
		t.Errorf("trend not encoded by name: %s", data)
	}
}

func TestDashboardText(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	empty := DashboardText(BuildDashboard(day, "ada", nil))
	if !strings.Contains(empty, "No games played today.") {
		t.Errorf("empty dashboard text missing notice:\n%s", empty)
	}

	out := DashboardText(BuildDashboard(day, "", sampleGames()))
	for _, want := range []string{"2026-03-14", "Anonymous", "Improving", "250", "80%"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard text missing %q:\n%s", want, out)
		}
	}
}
