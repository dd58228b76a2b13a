package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"habitctl/internal/models"
	"habitctl/internal/storage"
)

// Tracker implements the habit lifecycle on top of an injected store. Every
// operation loads the full collection, optionally mutates it, and saves it
// back before returning.
type Tracker struct {
	store storage.Provider
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// Status is one row of List output.
type Status struct {
	Name      string
	Streak    int
	DoneToday bool
}

// DoneResult reports the outcome of MarkDone. AlreadyDone is set when the
// habit had already been marked for the same day and nothing changed.
type DoneResult struct {
	Streak      int
	AlreadyDone bool
}

// TopHabit names the habit with the longest streak.
type TopHabit struct {
	Name   string
	Streak int
}

// Stats aggregates the collection for a given day. Top is nil when the
// collection is empty.
type Stats struct {
	DoneToday int
	Total     int
	Top       *TopHabit
}

// Add creates a habit with no streak. The name must be non-empty after
// trimming and unique under case-insensitive comparison.
func (t *Tracker) Add(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	col, err := t.store.Load()
	if err != nil {
		return err
	}
	if col.Find(name) >= 0 {
		return fmt.Errorf("%q: %w", name, ErrAlreadyExists)
	}

	col.Habits = append(col.Habits, models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Streak:    0,
		CreatedAt: time.Now().UTC(),
	})
	return t.store.Save(col)
}

// MarkDone records the habit as done on the given day (YYYY-MM-DD) and
// applies the streak rule: a second mark on the same day is a no-op, a mark
// the day after the previous one extends the streak, anything else (never
// done, a gap, a future or unparseable last-done date) starts over at 1.
func (t *Tracker) MarkDone(name, today string) (DoneResult, error) {
	day, err := time.ParseInLocation(models.DayLayout, today, time.Local)
	if err != nil {
		return DoneResult{}, fmt.Errorf("invalid day %q: %w", today, err)
	}

	col, err := t.store.Load()
	if err != nil {
		return DoneResult{}, err
	}
	i := col.Find(name)
	if i < 0 {
		return DoneResult{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	h := &col.Habits[i]
	if h.DoneOn(today) {
		return DoneResult{Streak: h.Streak, AlreadyDone: true}, nil
	}

	yesterday := day.AddDate(0, 0, -1).Format(models.DayLayout)
	if last, ok := h.LastDoneDay(); ok && last.Format(models.DayLayout) == yesterday {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.LastDone = &today

	if err := t.store.Save(col); err != nil {
		return DoneResult{}, err
	}
	return DoneResult{Streak: h.Streak}, nil
}

// List returns one row per habit in insertion order. DoneToday compares the
// recorded last-done date against the given day.
func (t *Tracker) List(today string) ([]Status, error) {
	col, err := t.store.Load()
	if err != nil {
		return nil, err
	}

	rows := make([]Status, 0, len(col.Habits))
	for _, h := range col.Habits {
		rows = append(rows, Status{
			Name:      h.Name,
			Streak:    h.Streak,
			DoneToday: h.DoneOn(today),
		})
	}
	return rows, nil
}

// Stats summarizes the collection. Ties on streak go to the earliest-added
// habit.
func (t *Tracker) Stats(today string) (Stats, error) {
	col, err := t.store.Load()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Total: len(col.Habits)}
	for _, h := range col.Habits {
		if h.DoneOn(today) {
			st.DoneToday++
		}
		if st.Top == nil || h.Streak > st.Top.Streak {
			st.Top = &TopHabit{Name: h.Name, Streak: h.Streak}
		}
	}
	return st, nil
}

// Remove deletes every habit matching name case-insensitively. The invariant
// says at most one should match; removing all is defensive.
func (t *Tracker) Remove(name string) error {
	col, err := t.store.Load()
	if err != nil {
		return err
	}

	kept := make([]models.Habit, 0, len(col.Habits))
	for _, h := range col.Habits {
		if !strings.EqualFold(h.Name, name) {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(col.Habits) {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	col.Habits = kept
	return t.store.Save(col)
}
