package storage

import "habitctl/internal/models"

// MemoryStore keeps the collection in memory. It exists so the tracker can be
// exercised without filesystem side effects.
type MemoryStore struct {
	col models.Collection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*models.Collection, error) {
	return copyCollection(&s.col), nil
}

func (s *MemoryStore) Save(col *models.Collection) error {
	s.col = *copyCollection(col)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Path() string {
	return ":memory:"
}

// copyCollection deep-copies so callers cannot alias stored state.
func copyCollection(col *models.Collection) *models.Collection {
	out := &models.Collection{Habits: make([]models.Habit, len(col.Habits))}
	copy(out.Habits, col.Habits)
	for i := range out.Habits {
		if out.Habits[i].LastDone != nil {
			v := *out.Habits[i].LastDone
			out.Habits[i].LastDone = &v
		}
	}
	return out
}
