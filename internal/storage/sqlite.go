// Package storage provides SQLite-based persistence for named calculation
// profiles and result snapshots, so upgrade paths can be compared across
// sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ProfileEntry describes a saved profile without its YAML body.
type ProfileEntry struct {
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SnapshotEntry records one calculated hourly total for a profile, taken
// at a point in time.
type SnapshotEntry struct {
	ID        int64
	Profile   string
	Category  string // stream ID, or "total" for the grand total
	Hourly    float64
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			body BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			category TEXT NOT NULL,
			hourly REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_profile ON snapshots(profile, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_snapshots_category ON snapshots(profile, category);
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

// SaveProfile stores or replaces a named profile's YAML body.
func (s *Store) SaveProfile(name string, body []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO profiles (name, body) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		name, body,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %s: %w", name, err)
	}
	return nil
}

// GetProfile returns the YAML body of a saved profile.
// Returns nil without error if the profile does not exist.
func (s *Store) GetProfile(name string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(
		"SELECT body FROM profiles WHERE name = ?", name,
	).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile %s: %w", name, err)
	}
	return body, nil
}

// ListProfiles returns every saved profile, newest update first.
func (s *Store) ListProfiles() ([]ProfileEntry, error) {
	rows, err := s.db.Query(
		`SELECT name, created_at, updated_at
		 FROM profiles
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var entries []ProfileEntry
	for rows.Next() {
		var e ProfileEntry
		var createdAt, updatedAt any
		if err := rows.Scan(&e.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = scanTime(createdAt)
		e.UpdatedAt = scanTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteProfile removes a saved profile and its snapshots.
func (s *Store) DeleteProfile(name string) error {
	if _, err := s.db.Exec("DELETE FROM profiles WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete profile %s: %w", name, err)
	}
	if _, err := s.db.Exec("DELETE FROM snapshots WHERE profile = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete snapshots for %s: %w", name, err)
	}
	return nil
}

// SaveSnapshot records one calculated hourly value for a profile.
// Returns the ID of the inserted record.
func (s *Store) SaveSnapshot(profile, category string, hourly float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO snapshots (profile, category, hourly) VALUES (?, ?, ?)",
		profile, category, hourly,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSnapshots retrieves the most recent snapshots for a profile.
func (s *Store) RecentSnapshots(profile string, limit int) ([]SnapshotEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile, category, hourly, created_at
		 FROM snapshots
		 WHERE profile = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var entries []SnapshotEntry
	for rows.Next() {
		var e SnapshotEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Category, &e.Hourly, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = scanTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTotal returns the highest recorded grand total for a profile.
// Returns 0 if no snapshots exist.
func (s *Store) BestTotal(profile string) (float64, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT MAX(hourly) FROM snapshots WHERE profile = ? AND category = 'total'`,
		profile,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best total: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Float64, nil
}

// scanTime parses a DATETIME column that the driver may hand back as
// either time.Time or string.
func scanTime(v any) time.Time {
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
