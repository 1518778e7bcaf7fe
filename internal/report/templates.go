package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/registry"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("report").
		Funcs(template.FuncMap{
			"inc":   func(i int) int { return i + 1 },
			"clock": func(t time.Time) string { return t.Format("15:04") },
			"stamp": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
			"rate":  func(s whack.Summary) string { return fmt.Sprintf("%.0f%%", s.HitRate()) },
		}).
		ParseFS(templateFS, "templates/*.html"),
)

type gameReportData struct {
	whack.Summary
	Title string
}

// RenderGameReport renders the HTML email for one finished round.
func RenderGameReport(s whack.Summary) (string, error) {
	return render("game.html", gameReportData{Summary: s, Title: variantTitle(s.Variant)})
}

// RenderDashboard renders the HTML email for a daily dashboard.
func RenderDashboard(d Dashboard) (string, error) {
	return render("dashboard.html", d)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("report: render %s: %w", name, err)
	}
	return buf.String(), nil
}

func variantTitle(id string) string {
	if v, err := registry.Create(id); err == nil {
		return v.Title()
	}
	return "Whack Arcade"
}
