package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"habitctl/internal/models"
)

// position preserves insertion order across save/load cycles.
const schema = `
CREATE TABLE IF NOT EXISTS habits (
	position   INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL,
	name       TEXT NOT NULL,
	streak     INTEGER NOT NULL DEFAULT 0,
	last_done  TEXT,
	created_at TEXT NOT NULL
);`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	s.db = db
	return db, nil
}

func (s *SQLiteStore) Load() (*models.Collection, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, name, streak, last_done, created_at FROM habits ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	col := &models.Collection{}
	for rows.Next() {
		var h models.Habit
		var lastDone sql.NullString
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.Streak, &lastDone, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		if lastDone.Valid {
			h.LastDone = &lastDone.String
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			h.CreatedAt = t
		}
		col.Habits = append(col.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	return col, nil
}

// Save rewrites the habits table in a single transaction.
func (s *SQLiteStore) Save(col *models.Collection) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}

	for _, h := range col.Habits {
		var lastDone any
		if h.LastDone != nil {
			lastDone = *h.LastDone
		}
		if _, err := tx.Exec(
			`INSERT INTO habits (id, name, streak, last_done, created_at) VALUES (?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Streak, lastDone, h.CreatedAt.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("failed to insert habit %q: %w", h.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
