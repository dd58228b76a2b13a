package models

import (
	"strings"
	"time"
)

// DayLayout is the calendar-date format used for done tracking.
const DayLayout = "2006-01-02"

// Habit represents a recurring practice and its current streak
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Streak    int       `json:"streak"`
	LastDone  *string   `json:"last_done"` // YYYY-MM-DD, nil when never done
	CreatedAt time.Time `json:"created_at"`
}

// LastDoneDay parses the recorded last-done date. The second return is false
// when the habit has never been done or the stored value does not parse;
// streak continuity treats both the same.
func (h Habit) LastDoneDay() (time.Time, bool) {
	if h.LastDone == nil {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DayLayout, *h.LastDone, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DoneOn reports whether the habit was marked done on the given day.
func (h Habit) DoneOn(day string) bool {
	return h.LastDone != nil && *h.LastDone == day
}

// Collection is the full ordered set of habits persisted as one unit.
// Insertion order is preserved for display.
type Collection struct {
	Habits []Habit `json:"habits"`
}

// Find returns the index of the habit whose name matches case-insensitively,
// or -1 when there is none.
func (c *Collection) Find(name string) int {
	for i, h := range c.Habits {
		if strings.EqualFold(h.Name, name) {
			return i
		}
	}
	return -1
}
