// Package report turns finished rounds into per-game reports and daily
// dashboards, and delivers them by email through the Microsoft Graph
// sendMail API.
package report

import (
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// Trend describes how scores moved over a day.
type Trend int

const (
	TrendSteady Trend = iota
	TrendImproving
	TrendDeclining
)

// String returns a human-readable name for the trend.
func (t Trend) String() string {
	switch t {
	case TrendImproving:
		return "Improving"
	case TrendDeclining:
		return "Declining"
	default:
		return "Steady"
	}
}

// MarshalText encodes the trend by name.
func (t Trend) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(t.String())), nil
}

// Badge returns the trend with its arrow, as shown in reports.
func (t Trend) Badge() string {
	switch t {
	case TrendImproving:
		return "↗ Improving"
	case TrendDeclining:
		return "↘ Declining"
	default:
		return "→ Steady"
	}
}

// TrendOf compares the average of the later half of scores with the earlier
// half. A rise of more than 10% is Improving, a drop of more than 10% is
// Declining. Fewer than two scores are Steady.
func TrendOf(scores []int) Trend {
	if len(scores) < 2 {
		return TrendSteady
	}
	mid := len(scores) / 2
	first, second := mean(scores[:mid]), mean(scores[mid:])
	switch {
	case second > first*1.1:
		return TrendImproving
	case second < first*0.9:
		return TrendDeclining
	default:
		return TrendSteady
	}
}

func mean(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// Dashboard aggregates one player's rounds for one day.
type Dashboard struct {
	Day         time.Time       `json:"day"`
	Player      string          `json:"player"`
	Games       []whack.Summary `json:"games"`
	Best        int             `json:"best"`
	Average     int             `json:"average"`
	PlaySeconds int             `json:"play_seconds"`
	Hits        int             `json:"hits"`
	Misses      int             `json:"misses"`
	HitRate     int             `json:"hit_rate"` // Percent, rounded
	Trend       Trend           `json:"trend"`
}

// BuildDashboard computes the daily totals. games must be in play order.
func BuildDashboard(day time.Time, player string, games []whack.Summary) Dashboard {
	d := Dashboard{
		Day:    day,
		Player: player,
		Games:  append([]whack.Summary(nil), games...),
	}
	if len(games) == 0 {
		return d
	}

	scores := make([]int, len(games))
	for i, g := range games {
		scores[i] = g.Score
		d.Best = max(d.Best, g.Score)
		d.PlaySeconds += g.PlayedSeconds
		d.Hits += g.Hits
		d.Misses += g.Misses
	}
	d.Average = int(math.Round(mean(scores)))
	if total := d.Hits + d.Misses; total > 0 {
		d.HitRate = int(math.Round(float64(d.Hits) * 100 / float64(total)))
	}
	d.Trend = TrendOf(scores)
	return d
}

// Empty reports whether no rounds were played.
func (d Dashboard) Empty() bool {
	return len(d.Games) == 0
}

// PlayMinutes returns the total play time in whole minutes, rounded.
func (d Dashboard) PlayMinutes() int {
	return int(math.Round(float64(d.PlaySeconds) / 60))
}

// DayLabel returns the day as YYYY-MM-DD.
func (d Dashboard) DayLabel() string {
	return d.Day.Format("2006-01-02")
}
