package storage

import (
	"testing"

	"habitctl/internal/models"
)

func TestMemoryStore_LoadReturnsIndependentCopy(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Save(&models.Collection{Habits: []models.Habit{
		{Name: "Read", Streak: 2, LastDone: strPtr("2024-01-01")},
	}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	col, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	col.Habits[0].Streak = 99
	*col.Habits[0].LastDone = "2030-01-01"

	again, _ := store.Load()
	if again.Habits[0].Streak != 2 {
		t.Errorf("mutating a loaded collection must not affect the store, got streak %d", again.Habits[0].Streak)
	}
	if *again.Habits[0].LastDone != "2024-01-01" {
		t.Errorf("mutating a loaded last_done must not affect the store, got %s", *again.Habits[0].LastDone)
	}
}

func TestMemoryStore_StartsEmpty(t *testing.T) {
	store := NewMemoryStore()

	col, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(col.Habits) != 0 {
		t.Errorf("expected empty collection, got %d habits", len(col.Habits))
	}
}
