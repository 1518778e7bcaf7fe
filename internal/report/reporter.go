package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// ErrEmptyDay is returned when a dashboard has no rounds to report.
var ErrEmptyDay = errors.New("report: no games played on that day")

// Reporter renders reports and hands them to a Mailer.
type Reporter struct {
	mailer    Mailer
	recipient string
	logger    *log.Logger
}

// NewReporter creates a reporter that mails to recipient. A nil logger uses
// the default logger.
func NewReporter(m Mailer, recipient string, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{mailer: m, recipient: recipient, logger: logger}
}

// GameReportSubject returns the subject line of a game report.
func GameReportSubject(s whack.Summary) string {
	return fmt.Sprintf("Whack Report — %s scored %d", playerLabel(s.Player), s.Score)
}

// DashboardSubject returns the subject line of a daily dashboard.
func DashboardSubject(d Dashboard) string {
	return fmt.Sprintf("Daily Dashboard — %s — %s", playerLabel(d.Player), d.DayLabel())
}

// SendGameReport mails the report of one finished round.
func (r *Reporter) SendGameReport(ctx context.Context, s whack.Summary) error {
	html, err := RenderGameReport(s)
	if err != nil {
		return err
	}
	return r.send(ctx, GameReportSubject(s), html, "game", s.ID)
}

// SendDailyDashboard mails a daily dashboard. Days without rounds are refused.
func (r *Reporter) SendDailyDashboard(ctx context.Context, d Dashboard) error {
	if d.Empty() {
		return ErrEmptyDay
	}
	html, err := RenderDashboard(d)
	if err != nil {
		return err
	}
	return r.send(ctx, DashboardSubject(d), html, "day", d.DayLabel())
}

func (r *Reporter) send(ctx context.Context, subject, html, key, value string) error {
	if r.recipient == "" {
		return errors.New("report: no recipient configured")
	}
	msg := Message{Subject: subject, HTML: html, To: []string{r.recipient}}
	if err := r.mailer.Send(ctx, msg); err != nil {
		r.logger.Warn("report not sent", key, value, "err", err)
		return err
	}
	r.logger.Info("report sent", key, value, "to", r.recipient)
	return nil
}

func playerLabel(name string) string {
	if name == "" {
		return "Anonymous"
	}
	return name
}
