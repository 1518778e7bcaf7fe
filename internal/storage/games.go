package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// DayLayout is the format of the played_on column.
const DayLayout = "2006-01-02"

// stampLayout is the fixed-width UTC format of started_at and ended_at, so
// that ordering the text orders the instants.
const stampLayout = "2006-01-02T15:04:05.000000000Z"

const gameColumns = `id, variant, player, score, high_score, new_high, best_combo, hits, misses,
	type_hits, round_secs, played_secs, reason, started_at, ended_at`

// RecordSummary stores a finished round and its leaderboard score in one
// transaction. The round is filed under the local day it ended on.
func (s *Store) RecordSummary(sum whack.Summary) error {
	typeHits, err := json.Marshal(sum.TypeHits)
	if err != nil {
		return fmt.Errorf("storage: cannot encode type hits: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO games
		 (id, variant, player, score, high_score, new_high, best_combo, hits, misses,
		  type_hits, round_secs, played_secs, reason, played_on, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.ID, sum.Variant, sum.Player, sum.Score, sum.HighScore, sum.NewHighScore, sum.BestCombo,
		sum.Hits, sum.Misses, string(typeHits), sum.RoundSeconds, sum.PlayedSeconds, string(sum.Reason),
		sum.EndedAt.Format(DayLayout),
		sum.StartedAt.UTC().Format(stampLayout),
		sum.EndedAt.UTC().Format(stampLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %s: %w", sum.ID, err)
	}

	_, err = tx.Exec(
		"INSERT INTO scores (game_id, player, score, created_at) VALUES (?, ?, ?, ?)",
		sum.Variant, sum.Player, sum.Score, sum.EndedAt.UTC().Format(sqliteTime),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit game %s: %w", sum.ID, err)
	}
	return nil
}

var _ whack.SummaryRecorder = (*Store)(nil)

// GameByID retrieves a finished round. Returns ErrNotFound if it does not exist.
func (s *Store) GameByID(id string) (whack.Summary, error) {
	row := s.db.QueryRow(`SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	sum, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return whack.Summary{}, fmt.Errorf("%w: game %s", ErrNotFound, id)
	}
	if err != nil {
		return whack.Summary{}, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return sum, nil
}

// DailyGames returns the rounds that ended on day, oldest first. An empty
// player matches every player.
func (s *Store) DailyGames(player string, day time.Time) ([]whack.Summary, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE played_on = ?`
	args := []any{day.Format(DayLayout)}
	if player != "" {
		query += ` AND player = ?`
		args = append(args, player)
	}
	query += ` ORDER BY ended_at ASC`

	return s.queryGames(query, args...)
}

// RecentGames returns the most recently finished rounds, newest first.
func (s *Store) RecentGames(limit int) ([]whack.Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(`SELECT `+gameColumns+` FROM games ORDER BY ended_at DESC LIMIT ?`, limit)
}

func (s *Store) queryGames(query string, args ...any) ([]whack.Summary, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []whack.Summary
	for rows.Next() {
		sum, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan game: %w", err)
		}
		games = append(games, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(sc scanner) (whack.Summary, error) {
	var (
		sum                whack.Summary
		typeHits, reason   string
		startedAt, endedAt any
	)
	err := sc.Scan(
		&sum.ID, &sum.Variant, &sum.Player, &sum.Score, &sum.HighScore, &sum.NewHighScore,
		&sum.BestCombo, &sum.Hits, &sum.Misses, &typeHits, &sum.RoundSeconds, &sum.PlayedSeconds,
		&reason, &startedAt, &endedAt,
	)
	if err != nil {
		return whack.Summary{}, err
	}

	if err := json.Unmarshal([]byte(typeHits), &sum.TypeHits); err != nil {
		return whack.Summary{}, fmt.Errorf("decode type hits of %s: %w", sum.ID, err)
	}
	sum.Reason = whack.EndReason(reason)
	sum.StartedAt = parseTime(startedAt).Local()
	sum.EndedAt = parseTime(endedAt).Local()
	return sum, nil
}
