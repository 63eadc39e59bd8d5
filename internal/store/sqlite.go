package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abacist/abacus/internal/calc"
	"github.com/abacist/abacus/internal/token"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = "1"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite creates a new SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS variables (
			label TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			saved_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tokens TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	version, err := s.getMetadataUnlocked("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err := s.setMetadataUnlocked("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// SaveVariable upserts a variable by label.
func (s *SQLite) SaveVariable(v calc.Variable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`
		INSERT INTO variables (label, value, unit, color, saved_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(label) DO UPDATE SET
			value = excluded.value,
			unit = excluded.unit,
			color = excluded.color,
			saved_at = excluded.saved_at
	`, v.Label, v.Value, v.Unit, v.Color.String(), v.SavedAt.UnixNano())
	return err
}

// DeleteVariable removes a variable by label.
func (s *SQLite) DeleteVariable(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM variables WHERE label = ?", label)
	return err
}

// Variables returns saved variables, newest first.
func (s *SQLite) Variables() ([]calc.Variable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query("SELECT label, value, unit, color, saved_at FROM variables ORDER BY saved_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []calc.Variable
	for rows.Next() {
		var v calc.Variable
		var color string
		var savedAt int64
		if err := rows.Scan(&v.Label, &v.Value, &v.Unit, &color, &savedAt); err != nil {
			return nil, err
		}
		v.Color, _ = token.ParseColor(color)
		v.SavedAt = time.Unix(0, savedAt).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// AppendHistory records one calculation.
func (s *SQLite) AppendHistory(e calc.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens, err := encodeTokens(e.Tokens)
	if err != nil {
		return err
	}
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err = s.db.Exec(
		"INSERT INTO history (tokens, result, created_at) VALUES (?, ?, ?)",
		tokens, e.Result, at.UnixNano(),
	)
	return err
}

// History returns calculations, newest first, at most limit entries
// (0 means all).
func (s *SQLite) History(limit int) ([]calc.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := "SELECT tokens, result, created_at FROM history ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []calc.Entry
	for rows.Next() {
		var tokens, result string
		var createdAt int64
		if err := rows.Scan(&tokens, &result, &createdAt); err != nil {
			return nil, err
		}
		e := calc.Entry{Result: result}
		if e.Tokens, err = decodeTokens(tokens); err != nil {
			return nil, err
		}
		e.At = time.Unix(0, createdAt).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// getMetadataUnlocked retrieves metadata without locking (init only).
func (s *SQLite) getMetadataUnlocked(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// setMetadataUnlocked stores metadata without locking (init only).
func (s *SQLite) setMetadataUnlocked(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
