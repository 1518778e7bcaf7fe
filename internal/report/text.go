package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	textTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	textLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	textValue = lipgloss.NewStyle().Bold(true)
	textBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 1)
)

// DashboardText renders a dashboard for the terminal.
func DashboardText(d Dashboard) string {
	var sb strings.Builder
	sb.WriteString(textTitle.Render("DAILY DASHBOARD " + d.DayLabel()))
	sb.WriteString("\n")
	sb.WriteString(textLabel.Render("Player: ") + textValue.Render(playerLabel(d.Player)))
	sb.WriteString("\n\n")

	if d.Empty() {
		sb.WriteString("No games played today.")
		return textBox.Render(sb.String())
	}

	metric := func(label string, v any) string {
		return textLabel.Render(label+" ") + textValue.Render(fmt.Sprint(v))
	}
	sb.WriteString(strings.Join([]string{
		metric("Games", len(d.Games)),
		metric("Best", d.Best),
		metric("Average", d.Average),
		metric("Play time", fmt.Sprintf("%dm", d.PlayMinutes())),
	}, "   "))
	sb.WriteString("\n")
	sb.WriteString(metric("Trend", d.Trend.Badge()))
	sb.WriteString("\n\n")

	rows := make([][]string, len(d.Games))
	for i, g := range d.Games {
		rows[i] = []string{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(g.Score),
			strconv.Itoa(g.Hits),
			strconv.Itoa(g.Misses),
			"x" + strconv.Itoa(g.BestCombo),
			g.EndedAt.Format("15:04"),
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GAME", "SCORE", "HITS", "MISS", "COMBO", "TIME").
		Rows(rows...)
	sb.WriteString(t.Render())
	sb.WriteString("\n")

	sb.WriteString(strings.Join([]string{
		metric("Total hits", d.Hits),
		metric("Total misses", d.Misses),
		metric("Hit rate", fmt.Sprintf("%d%%", d.HitRate)),
	}, "   "))

	return textBox.Render(sb.String())
}
