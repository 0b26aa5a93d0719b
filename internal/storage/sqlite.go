// Package storage provides a SQLite-backed level pack.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-chips/internal/sim/levels"
)

// ErrNotFound is returned when a level ID is not in the pack.
var ErrNotFound = errors.New("storage: level not found")

// Store manages the SQLite database connection for the level pack.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// PackEntry describes one stored level without its contents.
type PackEntry struct {
	ID        string // row key, a UUID
	LevelID   string
	Name      string
	Format    string // file extension the level was imported from
	Size      int    // bytes
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A nil logger discards log output.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

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

	store := &Store{db: db, logger: logger}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	logger.Debug("level pack opened", "path", dbPath)
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			level_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			format TEXT NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_level_id ON levels(level_id);
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

// ImportLevel stores the raw file contents of a level under its level ID,
// replacing any earlier import of the same ID. The level must load cleanly.
// Returns the row key.
func (s *Store) ImportLevel(lvl levels.Level, ext string, raw []byte) (string, error) {
	if lvl.ID == "" {
		return "", fmt.Errorf("storage: cannot import level without an ID")
	}
	if err := lvl.Validate(); err != nil {
		return "", fmt.Errorf("storage: cannot import level: %w", err)
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO levels (id, level_id, name, format, data)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(level_id) DO UPDATE SET
		   id = excluded.id,
		   name = excluded.name,
		   format = excluded.format,
		   data = excluded.data,
		   created_at = CURRENT_TIMESTAMP`,
		id, lvl.ID, lvl.Name, ext, raw,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save level: %w", err)
	}

	s.logger.Info("level imported", "level", lvl.ID, "id", id, "format", ext)
	return id, nil
}

// ListLevels returns every stored level ordered by level ID.
func (s *Store) ListLevels() ([]PackEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, name, format, length(data), created_at
		 FROM levels
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []PackEntry
	for rows.Next() {
		var e PackEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Name, &e.Format, &e.Size, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LoadLevel decodes a stored level by its level ID.
func (s *Store) LoadLevel(levelID string) (levels.Level, error) {
	var format string
	var data []byte
	err := s.db.QueryRow(
		"SELECT format, data FROM levels WHERE level_id = ?",
		levelID,
	).Scan(&format, &data)

	if errors.Is(err, sql.ErrNoRows) {
		return levels.Level{}, fmt.Errorf("%w: %s", ErrNotFound, levelID)
	}
	if err != nil {
		return levels.Level{}, fmt.Errorf("storage: cannot query level: %w", err)
	}

	lvl, err := levels.ParseBytes(data, format, "")
	if err != nil {
		return levels.Level{}, fmt.Errorf("storage: cannot decode level %s: %w", levelID, err)
	}
	if lvl.ID == "" {
		lvl.ID = levelID
	}
	return lvl, nil
}

// DeleteLevel removes a stored level.
func (s *Store) DeleteLevel(levelID string) error {
	res, err := s.db.Exec("DELETE FROM levels WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, levelID)
	}
	s.logger.Info("level deleted", "level", levelID)
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
