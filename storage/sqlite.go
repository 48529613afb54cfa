// Package storage keeps per-level run statistics in SQLite through the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/milk9111/phaseshift/config"
)

var ErrNotOpen = errors.New("storage: store is not open")

// Store is safe to use as a nil pointer: recording is skipped.
type Store struct {
	db *sql.DB
}

// LevelStats is the running tally for one level.
type LevelStats struct {
	Level    string
	Falls    int
	Deaths   int
	Restarts int
	Clears   int
	// BestClearMs is zero until the level has been cleared.
	BestClearMs int64
	UpdatedAt   time.Time
}

// Open creates or opens the database at dbPath, creating parent
// directories and running migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

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
		CREATE TABLE IF NOT EXISTS level_stats (
			level TEXT PRIMARY KEY,
			falls INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			restarts INTEGER NOT NULL DEFAULT 0,
			clears INTEGER NOT NULL DEFAULT 0,
			best_clear_ms INTEGER,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) RecordFall(level string) error {
	return s.bump(level, "falls")
}

func (s *Store) RecordDeath(level string) error {
	return s.bump(level, "deaths")
}

func (s *Store) RecordRestart(level string) error {
	return s.bump(level, "restarts")
}

// RecordClear counts a clear and keeps the fastest elapsed time.
func (s *Store) RecordClear(level string, elapsedMs int64) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO level_stats (level, clears, best_clear_ms) VALUES (?, 1, ?)
		ON CONFLICT(level) DO UPDATE SET
			clears = clears + 1,
			best_clear_ms = CASE
				WHEN best_clear_ms IS NULL OR excluded.best_clear_ms < best_clear_ms THEN excluded.best_clear_ms
				ELSE best_clear_ms
			END,
			updated_at = CURRENT_TIMESTAMP`,
		level, elapsedMs,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record clear for %s: %w", level, err)
	}
	return nil
}

// bump increments one counter column. column is always a constant from
// this file.
func (s *Store) bump(level, column string) error {
	if s == nil || s.db == nil {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO level_stats (level, %[1]s) VALUES (?, 1)
		ON CONFLICT(level) DO UPDATE SET %[1]s = %[1]s + 1, updated_at = CURRENT_TIMESTAMP`, column)
	if _, err := s.db.Exec(query, level); err != nil {
		return fmt.Errorf("storage: cannot record %s for %s: %w", column, level, err)
	}
	return nil
}

const statsColumns = `level, falls, deaths, restarts, clears, COALESCE(best_clear_ms, 0), updated_at`

// Stats returns the tally for level; a level never played has all zeros.
func (s *Store) Stats(level string) (LevelStats, error) {
	if s == nil || s.db == nil {
		return LevelStats{}, ErrNotOpen
	}
	row := s.db.QueryRow("SELECT "+statsColumns+" FROM level_stats WHERE level = ?", level)
	st, err := scanStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return LevelStats{Level: level}, nil
	}
	if err != nil {
		return LevelStats{}, fmt.Errorf("storage: cannot read stats for %s: %w", level, err)
	}
	return st, nil
}

// AllStats returns every recorded level ordered by name.
func (s *Store) AllStats() ([]LevelStats, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotOpen
	}
	rows, err := s.db.Query("SELECT " + statsColumns + " FROM level_stats ORDER BY level")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var out []LevelStats
	for rows.Next() {
		st, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner) (LevelStats, error) {
	var st LevelStats
	err := row.Scan(&st.Level, &st.Falls, &st.Deaths, &st.Restarts, &st.Clears, &st.BestClearMs, &st.UpdatedAt)
	return st, err
}
