// Package storage provides SQLite-based persistence for weather session history.
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
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("storage: not found")

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Session is one recorded run of a weather scene.
type Session struct {
	ID         string
	SceneID    string
	Seed       int64
	Frames     int
	SimSeconds float64
	Strikes    int
	StartedAt  time.Time
	EndedAt    time.Time // Zero while the session is running
}

// Finished reports whether FinishSession was called for the session.
func (s Session) Finished() bool {
	return !s.EndedAt.IsZero()
}

// LightningStrike is one recorded thunderstorm strike.
type LightningStrike struct {
	ID         int64
	SessionID  string
	SimSeconds float64 // Simulated time of the strike within its session
	BoltAngle  float64
	CreatedAt  time.Time
}

// SceneStats contains aggregated statistics for a scene.
type SceneStats struct {
	SceneID    string
	Sessions   int
	Frames     int64
	SimSeconds float64
	Strikes    int64
	LastPlayed time.Time
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

	store := &Store{db: db, now: time.Now}

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
			scene_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			sim_seconds REAL NOT NULL DEFAULT 0,
			strikes INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene_id ON sessions(scene_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at DESC);

		CREATE TABLE IF NOT EXISTS lightning (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			sim_seconds REAL NOT NULL,
			bolt_angle REAL NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_lightning_session_id ON lightning(session_id);
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

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

// StartSession records the start of a scene run and returns its ID.
func (s *Store) StartSession(sceneID string, seed int64) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, scene_id, seed, started_at) VALUES (?, ?, ?, ?)",
		id, sceneID, seed, s.timestamp(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// FinishSession stores the final counters of a session and marks it ended.
// Calling it again overwrites the counters.
func (s *Store) FinishSession(id string, frames int, simSeconds float64, strikes int) error {
	res, err := s.db.Exec(
		`UPDATE sessions
		 SET frames = ?, sim_seconds = ?, strikes = ?, ended_at = ?
		 WHERE id = ?`,
		frames, simSeconds, strikes, s.timestamp(), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: finish session %s: %w", id, ErrNotFound)
	}
	return nil
}

// RecordLightning stores one strike of a session.
// Returns the ID of the inserted record.
func (s *Store) RecordLightning(sessionID string, simSeconds, boltAngle float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO lightning (session_id, sim_seconds, bolt_angle, created_at) VALUES (?, ?, ?, ?)",
		sessionID, simSeconds, boltAngle, s.timestamp(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record lightning: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, scene_id, seed, frames, sim_seconds, strikes, started_at, ended_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var sess Session
	var startedAt, endedAt any
	err := row.Scan(
		&sess.ID,
		&sess.SceneID,
		&sess.Seed,
		&sess.Frames,
		&sess.SimSeconds,
		&sess.Strikes,
		&startedAt,
		&endedAt,
	)
	if err != nil {
		return sess, err
	}
	sess.StartedAt = parseTime(startedAt)
	sess.EndedAt = parseTime(endedAt)
	return sess, nil
}

// Session retrieves a session by ID.
func (s *Store) Session(id string) (*Session, error) {
	row := s.db.QueryRow("SELECT "+sessionColumns+" FROM sessions WHERE id = ?", id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &sess, nil
}

// RecentSessions retrieves the most recently started sessions.
// sceneID filters by scene when non-empty.
func (s *Store) RecentSessions(sceneID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE ? = '' OR scene_id = ?
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		sceneID, sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Lightning retrieves the strikes of a session in simulated time order.
func (s *Store) Lightning(sessionID string) ([]LightningStrike, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, sim_seconds, bolt_angle, created_at
		 FROM lightning
		 WHERE session_id = ?
		 ORDER BY sim_seconds, id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lightning: %w", err)
	}
	defer rows.Close()

	var strikes []LightningStrike
	for rows.Next() {
		var l LightningStrike
		var createdAt any
		if err := rows.Scan(&l.ID, &l.SessionID, &l.SimSeconds, &l.BoltAngle, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		l.CreatedAt = parseTime(createdAt)
		strikes = append(strikes, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return strikes, nil
}

// SceneTotals retrieves aggregated statistics for every scene with history.
func (s *Store) SceneTotals() (map[string]*SceneStats, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), SUM(frames), SUM(sim_seconds), SUM(strikes), MAX(started_at)
		 FROM sessions
		 GROUP BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene totals: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SceneStats)
	for rows.Next() {
		var st SceneStats
		var lastPlayed any
		if err := rows.Scan(&st.SceneID, &st.Sessions, &st.Frames, &st.SimSeconds, &st.Strikes, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.SceneID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearHistory deletes the sessions of a scene and their strikes.
// An empty sceneID clears everything.
func (s *Store) ClearHistory(sceneID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.Exec(
		`DELETE FROM lightning
		 WHERE session_id IN (SELECT id FROM sessions WHERE ? = '' OR scene_id = ?)`,
		sceneID, sceneID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear lightning: %w", err)
	}

	_, err = tx.Exec("DELETE FROM sessions WHERE ? = '' OR scene_id = ?", sceneID, sceneID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
// NULL and unparsable values yield the zero time.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(v)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
