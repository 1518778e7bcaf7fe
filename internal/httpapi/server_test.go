package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/storage"
	"github.com/vovakirdan/whack-arcade/internal/whack"

	_ "github.com/vovakirdan/whack-arcade/internal/variants"
)

var testNow = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := New(Config{
		Store:  store,
		Logger: log.New(io.Discard),
		Now:    func() time.Time { return testNow },
	})
	return srv, store
}

func seed(t *testing.T, store *storage.Store, id, player string, score int, ended time.Time) {
	t.Helper()
	err := store.RecordSummary(whack.Summary{
		ID:            id,
		Variant:       "villain",
		Player:        player,
		Score:         score,
		Hits:          score / 10,
		Misses:        1,
		RoundSeconds:  60,
		PlayedSeconds: 60,
		StartedAt:     ended.Add(-time.Minute),
		EndedAt:       ended,
		Reason:        whack.ReasonTimeUp,
	})
	if err != nil {
		t.Fatalf("RecordSummary(%s) failed: %v", id, err)
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv.Routes(), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"ok":true}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestVariants(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv.Routes(), "/variants")

	var got []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != "classic" || got[1].ID != "villain" {
		t.Errorf("variants = %+v", got)
	}
}

func TestScores(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Routes()
	seed(t, store, "a", "ada", 120, testNow.Add(-time.Hour))
	seed(t, store, "b", "bob", 300, testNow.Add(-30*time.Minute))

	rec := get(t, h, "/scores/villain?limit=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []storage.ScoreEntry
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Score != 300 || got[0].Player != "bob" {
		t.Errorf("scores = %+v", got)
	}

	if rec := get(t, h, "/scores/classic"); strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("empty leaderboard body = %s", rec.Body.String())
	}
	if rec := get(t, h, "/scores/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown variant status = %d", rec.Code)
	}
	if rec := get(t, h, "/scores/villain?limit=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d", rec.Code)
	}
}

func TestGamesToday(t *testing.T) {
	srv, store := newTestServer(t)
	seed(t, store, "old", "ada", 50, testNow.AddDate(0, 0, -1))
	seed(t, store, "t1", "ada", 100, testNow.Add(-2*time.Hour))
	seed(t, store, "t2", "bob", 200, testNow.Add(-time.Hour))

	rec := get(t, srv.Routes(), "/games/today?player=ada")
	var got []whack.Summary
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("today = %+v", got)
	}
}

func TestGameByID(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Routes()
	seed(t, store, "g1", "ada", 140, testNow)

	rec := get(t, h, "/games/g1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got whack.Summary
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 140 || got.Player != "ada" {
		t.Errorf("game = %+v", got)
	}

	if rec := get(t, h, "/games/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("missing game status = %d", rec.Code)
	}
}

func TestGameReport(t *testing.T) {
	srv, store := newTestServer(t)
	seed(t, store, "g1", "ada", 140, testNow)

	rec := get(t, srv.Routes(), "/games/g1/report")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Whack-a-Villain") || !strings.Contains(body, ">140<") {
		t.Error("report is missing title or score")
	}
}

func TestDashboard(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Routes()
	seed(t, store, "a", "ada", 100, testNow.Add(-3*time.Hour))
	seed(t, store, "b", "ada", 200, testNow.Add(-time.Hour))

	rec := get(t, h, "/dashboard?player=ada")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "↗ Improving") {
		t.Error("dashboard should show an improving trend")
	}

	rec = get(t, h, "/dashboard?player=ada&date=2026-03-13&format=json")
	var d struct {
		Games []whack.Summary `json:"games"`
		Trend string          `json:"trend"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(d.Games) != 0 || d.Trend != "steady" {
		t.Errorf("previous day dashboard = %+v", d)
	}

	if rec := get(t, h, "/dashboard?date=14-03-2026"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d", rec.Code)
	}
}

type failingStore struct{}

func (failingStore) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) GameByID(string) (whack.Summary, error) {
	return whack.Summary{}, errors.New("disk on fire")
}

func (failingStore) DailyGames(string, time.Time) ([]whack.Summary, error) {
	return nil, errors.New("disk on fire")
}

func TestStoreErrors(t *testing.T) {
	srv := New(Config{Store: failingStore{}, Logger: log.New(io.Discard)})
	h := srv.Routes()
	for _, target := range []string{"/scores/classic", "/games/x", "/games/today", "/dashboard"} {
		if rec := get(t, h, target); rec.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, want 500", target, rec.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	srv := New(Config{Store: failingStore{}, Logger: log.New(io.Discard), CORSOrigin: "https://whack.example"})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://whack.example")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://whack.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv.Routes(), "/nope")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "not_found") {
		t.Errorf("status = %d body = %s", rec.Code, rec.Body.String())
	}
}
