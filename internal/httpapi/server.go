// Package httpapi serves scores, finished rounds and daily dashboards over
// HTTP for browsers and scripts.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vovakirdan/whack-arcade/internal/storage"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// Store is the read side of the score database.
type Store interface {
	TopScores(variant string, limit int) ([]storage.ScoreEntry, error)
	GameByID(id string) (whack.Summary, error)
	DailyGames(player string, day time.Time) ([]whack.Summary, error)
}

// Config configures a Server.
type Config struct {
	Store      Store // Required
	Logger     *log.Logger
	CORSOrigin string           // Defaults to "*"
	Now        func() time.Time // Defaults to time.Now
}

// Server handles HTTP requests.
type Server struct {
	store  Store
	logger *log.Logger
	origin string
	now    func() time.Time
}

// New creates a server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Server{
		store:  cfg.Store,
		logger: cfg.Logger,
		origin: cfg.CORSOrigin,
		now:    cfg.Now,
	}
}

// Routes builds the router with its middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.origin},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         60 * 15,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/variants", s.handleVariants)
	r.Get("/scores/{variant}", s.handleScores)
	r.Route("/games", func(r chi.Router) {
		r.Get("/today", s.handleToday)
		r.Get("/{id}", s.handleGame)
		r.Get("/{id}/report", s.handleGameReport)
	})
	r.Get("/dashboard", s.handleDashboard)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("stopping http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"dur", time.Since(start),
			"req_id", chimw.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// queryLimit parses ?limit=, falling back to def and capping at ceiling.
func queryLimit(r *http.Request, def, ceiling int) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return min(n, ceiling), true
}
