package cli

import (
	"testing"
	"time"

	"habitctl/internal/models"
)

func TestJoinName(t *testing.T) {
	if got := joinName([]string{"Read", "10", "pages"}); got != "Read 10 pages" {
		t.Errorf("expected %q, got %q", "Read 10 pages", got)
	}
	if got := joinName([]string{"Run"}); got != "Run" {
		t.Errorf("expected %q, got %q", "Run", got)
	}
	if got := joinName(nil); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}

func TestResolveDay(t *testing.T) {
	if got := resolveDay("2024-01-01"); got != "2024-01-01" {
		t.Errorf("override should win, got %q", got)
	}
	if got := resolveDay(""); got != time.Now().Format(models.DayLayout) {
		t.Errorf("expected today's date, got %q", got)
	}
}
