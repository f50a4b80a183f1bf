// Package storage provides SQLite-based persistence for recorded play
// sessions. A session is the seed plus the ordered input events, which is
// enough to replay a run deterministically. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Session describes one recorded play session.
type Session struct {
	ID        int64
	Seed      int64
	GridW     int
	GridH     int
	TickRate  int
	Ticks     uint64 // Total simulation ticks in the recording
	CreatedAt time.Time
}

// InputEvent is a single recorded input, applied at the given tick during
// replay.
type InputEvent struct {
	Tick   uint64
	Action core.Action
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			grid_w INTEGER NOT NULL,
			grid_h INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS session_inputs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			action INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_session_inputs ON session_inputs(session_id, tick);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession stores a session and its input events in one transaction.
// Returns the new session ID.
func (s *Store) SaveSession(sess Session, events []InputEvent) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	res, err := tx.Exec(
		`INSERT INTO sessions (seed, grid_w, grid_h, tick_rate, ticks) VALUES (?, ?, ?, ?, ?)`,
		sess.Seed, sess.GridW, sess.GridH, sess.TickRate, sess.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read session id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO session_inputs (session_id, tick, action) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare input insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(id, ev.Tick, int(ev.Action)); err != nil {
			return 0, fmt.Errorf("storage: cannot insert input at tick %d: %w", ev.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return id, nil
}

// Sessions returns up to limit sessions, newest first.
func (s *Store) Sessions(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT id, seed, grid_w, grid_h, tick_rate, ticks, created_at
		 FROM sessions ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Seed, &sess.GridW, &sess.GridH,
			&sess.TickRate, &sess.Ticks, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// Session returns a single session by ID.
func (s *Store) Session(id int64) (Session, error) {
	var sess Session
	err := s.db.QueryRow(
		`SELECT id, seed, grid_w, grid_h, tick_rate, ticks, created_at
		 FROM sessions WHERE id = ?`, id).
		Scan(&sess.ID, &sess.Seed, &sess.GridW, &sess.GridH,
			&sess.TickRate, &sess.Ticks, &sess.CreatedAt)
	if err != nil {
		return Session{}, fmt.Errorf("storage: cannot load session %d: %w", id, err)
	}
	return sess, nil
}

// Inputs returns the recorded input events for a session, in tick order.
func (s *Store) Inputs(sessionID int64) ([]InputEvent, error) {
	rows, err := s.db.Query(
		`SELECT tick, action FROM session_inputs WHERE session_id = ? ORDER BY tick, id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	var out []InputEvent
	for rows.Next() {
		var ev InputEvent
		var action int
		if err := rows.Scan(&ev.Tick, &action); err != nil {
			return nil, fmt.Errorf("storage: cannot scan input: %w", err)
		}
		ev.Action = core.Action(action)
		out = append(out, ev)
	}
	return out, rows.Err()
}
