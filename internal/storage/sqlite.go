// Package storage persists finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished game. Score is the number of zombies defeated.
type Run struct {
	ID        int64
	GameID    string
	Score     int
	Ticks     uint64 // Simulation ticks the run lasted
	Player    string // SSH user or "local"
	CreatedAt time.Time
}

// GameStats aggregates all runs of one game.
type GameStats struct {
	GameID     string
	Runs       int
	HighScore  int
	AvgScore   float64
	LongestRun uint64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// Parent directories are created and the schema is migrated.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Player == "" {
		r.Player = "local"
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, ticks, player) VALUES (?, ?, ?, ?)",
		r.GameID, r.Score, int64(r.Ticks), r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveScore records a score with no run details.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveRun(Run{GameID: gameID, Score: score})
}

// TopScores returns the best runs of a game, highest score first.
// Ties go to the longer run.
func (s *Store) TopScores(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, ticks, player, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, ticks DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &ticks, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the best score of a game, or 0 if none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all runs of a game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats aggregates all runs of a game. A game with no runs yields zero stats.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var longest int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(ticks), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &longest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LongestRun = uint64(longest)

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both driver time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
