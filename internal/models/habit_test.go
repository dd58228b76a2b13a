package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestHabit_LastDoneDay(t *testing.T) {
	h := Habit{Name: "Read", LastDone: strPtr("2024-01-15")}
	d, ok := h.LastDoneDay()
	if !ok {
		t.Fatal("expected a valid last-done day")
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	if !d.Equal(want) {
		t.Errorf("expected %v, got %v", want, d)
	}
}

func TestHabit_LastDoneDayNeverDone(t *testing.T) {
	h := Habit{Name: "Read"}
	if _, ok := h.LastDoneDay(); ok {
		t.Error("never-done habit should have no last-done day")
	}
}

func TestHabit_LastDoneDayCorrupt(t *testing.T) {
	h := Habit{Name: "Read", LastDone: strPtr("01/15/2024")}
	if _, ok := h.LastDoneDay(); ok {
		t.Error("corrupt date should not parse")
	}
}

func TestHabit_DoneOn(t *testing.T) {
	h := Habit{Name: "Read", LastDone: strPtr("2024-01-15")}
	if !h.DoneOn("2024-01-15") {
		t.Error("expected habit done on its last-done day")
	}
	if h.DoneOn("2024-01-16") {
		t.Error("habit should not be done on another day")
	}
	if (Habit{Name: "Run"}).DoneOn("2024-01-15") {
		t.Error("never-done habit should not be done on any day")
	}
}

func TestCollection_FindIsCaseInsensitive(t *testing.T) {
	col := Collection{Habits: []Habit{
		{Name: "Read 10 pages"},
		{Name: "Run"},
	}}

	if i := col.Find("read 10 PAGES"); i != 0 {
		t.Errorf("expected index 0, got %d", i)
	}
	if i := col.Find("run"); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := col.Find("Swim"); i != -1 {
		t.Errorf("expected -1 for missing habit, got %d", i)
	}
}
