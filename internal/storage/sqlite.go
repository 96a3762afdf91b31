// Package storage provides SQLite-based persistence for ship movement logs.
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

	"github.com/vovakirdan/hexfleet/internal/hex"
)

// Move actions.
const (
	ActionStart     = "start"
	ActionForward   = "forward"
	ActionTurnLeft  = "turn-left"
	ActionTurnRight = "turn-right"
)

// Store manages the SQLite database connection for the move log.
type Store struct {
	db *sql.DB
}

// Move is one logged ship action. From and To are equal for turns.
type Move struct {
	ID        int64
	SessionID string
	Ship      string
	Action    string
	From      hex.Address
	To        hex.Address
	Facing    hex.Facing // Facing after the action
	CreatedAt time.Time
}

// SessionSummary describes one logged session.
type SessionSummary struct {
	SessionID string
	Scenario  string
	Moves     int
	LastMove  time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			scenario TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			ship TEXT NOT NULL,
			action TEXT NOT NULL,
			from_hex TEXT NOT NULL,
			to_hex TEXT NOT NULL,
			facing TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_moves_session ON moves(session_id, id);
		CREATE INDEX IF NOT EXISTS idx_moves_ship ON moves(session_id, ship, id);
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

// StartSession registers a session for a scenario. Starting an existing
// session again is a no-op.
func (s *Store) StartSession(sessionID, scenario string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO sessions (session_id, scenario) VALUES (?, ?)",
		sessionID, scenario,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot start session: %w", err)
	}
	return nil
}

// RecordMove appends a move to the log.
// Returns the ID of the inserted record.
func (s *Store) RecordMove(m Move) (int64, error) {
	if m.SessionID == "" || m.Ship == "" {
		return 0, errors.New("storage: move needs a session and a ship")
	}
	if !m.Facing.Valid() {
		return 0, fmt.Errorf("storage: invalid facing %d", m.Facing)
	}

	result, err := s.db.Exec(
		`INSERT INTO moves (session_id, ship, action, from_hex, to_hex, facing)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.SessionID, m.Ship, m.Action, m.From.Label(), m.To.Label(), m.Facing.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Moves returns every move of a session in the order they were made.
func (s *Store) Moves(sessionID string) ([]Move, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, ship, action, from_hex, to_hex, facing, created_at
		 FROM moves
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return moves, nil
}

// LastPosition returns where a ship ended up in a session. ok is false if
// the ship has no logged moves.
func (s *Store) LastPosition(sessionID, ship string) (hex.Address, hex.Facing, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, ship, action, from_hex, to_hex, facing, created_at
		 FROM moves
		 WHERE session_id = ? AND ship = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		sessionID, ship,
	)

	m, err := scanMove(row)
	if errors.Is(err, sql.ErrNoRows) {
		return hex.Address{}, 0, false, nil
	}
	if err != nil {
		return hex.Address{}, 0, false, err
	}
	return m.To, m.Facing, true, nil
}

// Sessions returns the most recently active sessions.
func (s *Store) Sessions(limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT s.session_id, s.scenario, COUNT(m.id), MAX(COALESCE(m.created_at, s.created_at))
		 FROM sessions s
		 LEFT JOIN moves m ON m.session_id = s.session_id
		 GROUP BY s.session_id, s.scenario
		 ORDER BY MAX(COALESCE(m.id, 0)) DESC, s.session_id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var result []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var last any
		if err := rows.Scan(&sum.SessionID, &sum.Scenario, &sum.Moves, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.LastMove = parseTime(last)
		result = append(result, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// ClearSession deletes a session and its moves.
func (s *Store) ClearSession(sessionID string) error {
	if _, err := s.db.Exec("DELETE FROM moves WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("storage: cannot clear moves: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanMove reads one moves row, re-validating hexes and facing.
func scanMove(row scanner) (Move, error) {
	var m Move
	var from, to, facing string
	var createdAt any

	if err := row.Scan(&m.ID, &m.SessionID, &m.Ship, &m.Action, &from, &to, &facing, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m, err
		}
		return m, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	var err error
	if m.From, err = hex.ParseLabel(from); err != nil {
		return m, fmt.Errorf("storage: move %d: %w", m.ID, err)
	}
	if m.To, err = hex.ParseLabel(to); err != nil {
		return m, fmt.Errorf("storage: move %d: %w", m.ID, err)
	}
	if m.Facing, err = hex.ParseFacing(facing); err != nil {
		return m, fmt.Errorf("storage: move %d: %w", m.ID, err)
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
