package cli

import (
	"strings"
	"time"

	"habitctl/internal/models"
	"habitctl/internal/storage"
	"habitctl/internal/tracker"
)

// Context carries the shared dependencies into the kong command Run methods.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// joinName rebuilds a habit name from positional arguments, joined with
// single spaces.
func joinName(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}

// resolveDay returns the override day if set, otherwise the host's local
// calendar date.
func resolveDay(override string) string {
	if override != "" {
		return override
	}
	return time.Now().Format(models.DayLayout)
}
