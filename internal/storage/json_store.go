package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"habitctl/internal/models"
)

type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Load() (*models.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Collection{}, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	col := &models.Collection{}
	if err := json.Unmarshal(data, col); err != nil {
		return nil, fmt.Errorf("failed to parse storage %s: %w", s.path, err)
	}

	return col, nil
}

// Save writes the collection to a temp file in the same directory and renames
// it over the target, so an interrupted write cannot truncate the previous
// state.
func (s *JSONStore) Save(col *models.Collection) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	if col.Habits == nil {
		col = &models.Collection{Habits: []models.Habit{}}
	}
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
