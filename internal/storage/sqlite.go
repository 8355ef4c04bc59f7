// Package storage provides SQLite-based persistence for played sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// ErrUnknownSession is returned when a move references a missing session.
var ErrUnknownSession = errors.New("storage: unknown session")

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one played board: where it came from and when.
type Session struct {
	ID        string
	Seed      int64
	TileSetID string
	Dim       geom.Dimensions
	CreatedAt time.Time
}

// MoveRecord is a stored robot move.
type MoveRecord struct {
	ID        int64
	SessionID string
	Seq       int
	Robot     string
	Way       string
	From      geom.Pos
	To        geom.Pos
	Distance  int
	CreatedAt time.Time
}

// String formats the record the way world.Move prints.
func (r MoveRecord) String() string {
	return fmt.Sprintf("%s %s: %v -> %v (%d)", r.Robot, r.Way, r.From, r.To, r.Distance)
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	Sessions      int
	Moves         int
	AvgMoves      float64
	MovesPerRobot map[string]int
	LastPlayed    time.Time
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
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			tileset_id TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_columns INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			seq INTEGER NOT NULL,
			robot TEXT NOT NULL,
			way TEXT NOT NULL,
			from_x INTEGER NOT NULL,
			from_y INTEGER NOT NULL,
			to_x INTEGER NOT NULL,
			to_y INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(session_id, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_moves_session ON moves(session_id, seq);
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

// StartSession records a new session and returns its generated ID.
func (s *Store) StartSession(seed int64, tileSetID string, dim geom.Dimensions) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, seed, tileset_id, board_rows, board_columns) VALUES (?, ?, ?, ?, ?)",
		id, seed, tileSetID, dim.Rows, dim.Columns,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// RecordMove appends a move to the session and returns its sequence number.
// Sequence numbers start at 1 for every session.
func (s *Store) RecordMove(sessionID string, m world.Move) (int, error) {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sessions WHERE id = ?", sessionID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query session: %w", err)
	}
	if exists == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}

	var seq int
	err = s.db.QueryRow(
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM moves WHERE session_id = ?",
		sessionID,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot compute move sequence: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO moves
		 (session_id, seq, robot, way, from_x, from_y, to_x, to_y, distance)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, seq, m.Robot.String(), m.Way.String(),
		m.From.X, m.From.Y, m.To.X, m.To.Y, m.Distance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record move: %w", err)
	}
	return seq, nil
}

// SessionByID retrieves a session. Returns nil, nil when it does not exist.
func (s *Store) SessionByID(id string) (*Session, error) {
	var sess Session
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, seed, tileset_id, board_rows, board_columns, created_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.Seed, &sess.TileSetID, &sess.Dim.Rows, &sess.Dim.Columns, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	sess.CreatedAt = parseTime(createdAt)
	return &sess, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, tileset_id, board_rows, board_columns, created_at
		 FROM sessions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.Seed, &sess.TileSetID, &sess.Dim.Rows, &sess.Dim.Columns, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionMoves retrieves the moves of a session in play order.
func (s *Store) SessionMoves(sessionID string) ([]MoveRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, seq, robot, way, from_x, from_y, to_x, to_y, distance, created_at
		 FROM moves
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var createdAt any
		if err := rows.Scan(
			&m.ID,
			&m.SessionID,
			&m.Seq,
			&m.Robot,
			&m.Way,
			&m.From.X,
			&m.From.Y,
			&m.To.X,
			&m.To.Y,
			&m.Distance,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return moves, nil
}

// SessionStats retrieves aggregated statistics over all sessions.
func (s *Store) SessionStats() (*Stats, error) {
	stats := &Stats{MovesPerRobot: make(map[string]int)}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(created_at) FROM sessions`,
	).Scan(&stats.Sessions, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	rows, err := s.db.Query(`SELECT robot, COUNT(*) FROM moves GROUP BY robot`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get move stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var robot string
		var count int
		if err := rows.Scan(&robot, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.MovesPerRobot[robot] = count
		stats.Moves += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if stats.Sessions > 0 {
		stats.AvgMoves = float64(stats.Moves) / float64(stats.Sessions)
	}
	return stats, nil
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
