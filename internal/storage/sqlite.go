// Package storage provides SQLite-based persistence for puzzle boards.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-128/internal/grid"
)

// ErrNoBoard is returned by LoadBoard when the player has no saved board.
var ErrNoBoard = errors.New("storage: no saved board")

// Store manages the SQLite database connection for board persistence.
type Store struct {
	db *sql.DB
}

// BoardState is one player's persisted game.
type BoardState struct {
	Grid      grid.Grid
	GameOver  bool
	Moves     int
	UpdatedAt time.Time
}

// FinishedGame records a game that reached the terminal tile.
type FinishedGame struct {
	ID        int64
	Player    string
	Moves     int
	MaxTile   int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS boards (
			player TEXT PRIMARY KEY,
			grid TEXT NOT NULL,
			game_over INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS finished_games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			moves INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_finished_games_player ON finished_games(player);
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

// SaveBoard stores the player's current board, replacing any previous one.
func (s *Store) SaveBoard(player string, state BoardState) error {
	data, err := json.Marshal(state.Grid)
	if err != nil {
		return fmt.Errorf("storage: cannot encode grid: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO boards (player, grid, game_over, moves, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
			grid = excluded.grid,
			game_over = excluded.game_over,
			moves = excluded.moves,
			updated_at = excluded.updated_at`,
		player, string(data), boolToInt(state.GameOver), state.Moves,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save board: %w", err)
	}
	return nil
}

// LoadBoard returns the player's saved board.
// Returns ErrNoBoard if none exists, or an error wrapping grid.ErrShape if
// the stored grid is not 4x4.
func (s *Store) LoadBoard(player string) (BoardState, error) {
	var state BoardState
	var rawGrid string
	var gameOver int
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT grid, game_over, moves, updated_at FROM boards WHERE player = ?",
		player,
	).Scan(&rawGrid, &gameOver, &state.Moves, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return BoardState{}, ErrNoBoard
	}
	if err != nil {
		return BoardState{}, fmt.Errorf("storage: cannot load board: %w", err)
	}

	if err := json.Unmarshal([]byte(rawGrid), &state.Grid); err != nil {
		return BoardState{}, fmt.Errorf("storage: stored board for %q: %w", player, err)
	}
	state.GameOver = gameOver != 0
	state.UpdatedAt = parseTime(updatedAt)

	return state, nil
}

// DeleteBoard removes the player's saved board. Deleting a missing board is not an error.
func (s *Store) DeleteBoard(player string) error {
	if _, err := s.db.Exec("DELETE FROM boards WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot delete board: %w", err)
	}
	return nil
}

// RecordFinished logs a game that reached the terminal tile.
// Returns the ID of the inserted record.
func (s *Store) RecordFinished(player string, moves, maxTile int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO finished_games (player, moves, max_tile) VALUES (?, ?, ?)",
		player, moves, maxTile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record finished game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// FinishedGames returns the player's most recent finished games, newest first.
func (s *Store) FinishedGames(player string, limit int) ([]FinishedGame, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, moves, max_tile, created_at
		 FROM finished_games
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query finished games: %w", err)
	}
	defer rows.Close()

	var games []FinishedGame
	for rows.Next() {
		var fg FinishedGame
		var createdAt any
		if err := rows.Scan(&fg.ID, &fg.Player, &fg.Moves, &fg.MaxTile, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		fg.CreatedAt = parseTime(createdAt)
		games = append(games, fg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// FinishedCount returns how many games the player has finished.
func (s *Store) FinishedCount(player string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM finished_games WHERE player = ?",
		player,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count finished games: %w", err)
	}
	return count, nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
