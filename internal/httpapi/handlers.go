package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/whack-arcade/internal/registry"
	"github.com/vovakirdan/whack-arcade/internal/report"
	"github.com/vovakirdan/whack-arcade/internal/storage"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, registry.List())
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	variant := chi.URLParam(r, "variant")
	if !registry.Exists(variant) {
		writeError(w, http.StatusNotFound, "unknown_variant")
		return
	}
	limit, ok := queryLimit(r, 10, 100)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_limit")
		return
	}
	scores, err := s.store.TopScores(variant, limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, scores)
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.DailyGames(r.URL.Query().Get("player"), s.now())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if games == nil {
		games = []whack.Summary{}
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	game, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleGameReport(w http.ResponseWriter, r *http.Request) {
	game, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	html, err := report.RenderGameReport(game)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeHTML(w, html)
}

// handleDashboard serves the daily dashboard as HTML, or as JSON with
// ?format=json. date defaults to today in local time.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day := s.now()
	if v := q.Get("date"); v != "" {
		parsed, err := time.ParseInLocation(storage.DayLayout, v, day.Location())
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		day = parsed
	}

	player := q.Get("player")
	games, err := s.store.DailyGames(player, day)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	d := report.BuildDashboard(day, player, games)

	if q.Get("format") == "json" {
		if d.Games == nil {
			d.Games = []whack.Summary{}
		}
		writeJSON(w, http.StatusOK, d)
		return
	}
	html, err := report.RenderDashboard(d)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeHTML(w, html)
}

func (s *Server) lookupGame(w http.ResponseWriter, r *http.Request) (whack.Summary, bool) {
	game, err := s.store.GameByID(chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "game_not_found")
		return whack.Summary{}, false
	}
	if err != nil {
		s.internalError(w, r, err)
		return whack.Summary{}, false
	}
	return game, true
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	writeError(w, http.StatusInternalServerError, "internal")
}
