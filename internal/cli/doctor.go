package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"habitctl/internal/models"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	col, err := ctx.Store.Load()
	if err != nil {
		fmt.Printf("❌ Storage readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage readable: OK (%d habits at %s)\n", len(col.Habits), ctx.Store.Path())

		if err := checkUniqueNames(col); err != nil {
			fmt.Printf("❌ Unique names: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Unique names: OK\n")
		}

		if err := checkStreaks(col); err != nil {
			fmt.Printf("❌ Streak invariants: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Streak invariants: OK\n")
		}

		if n := countCorruptDates(col); n > 0 {
			fmt.Printf("⚠ Last-done dates: WARNING\n")
			fmt.Printf("   %d habit(s) have unparseable last-done dates and behave as never done\n", n)
		} else {
			fmt.Printf("✓ Last-done dates: OK\n")
		}
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	if n, err := countSiblingProcesses(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if n > 0 {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %d other habitctl process(es) running; storage is not multi-process safe\n", n)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkUniqueNames(col *models.Collection) error {
	seen := make(map[string]string, len(col.Habits))
	for _, h := range col.Habits {
		key := strings.ToLower(h.Name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("duplicate habit name: %q and %q", prev, h.Name)
		}
		seen[key] = h.Name
	}
	return nil
}

func checkStreaks(col *models.Collection) error {
	for _, h := range col.Habits {
		if h.Streak < 0 {
			return fmt.Errorf("habit %q has negative streak %d", h.Name, h.Streak)
		}
		if h.LastDone != nil && h.Streak < 1 {
			return fmt.Errorf("habit %q was marked done but has streak %d", h.Name, h.Streak)
		}
	}
	return nil
}

func countCorruptDates(col *models.Collection) int {
	n := 0
	for _, h := range col.Habits {
		if h.LastDone == nil {
			continue
		}
		if _, ok := h.LastDoneDay(); !ok {
			n++
		}
	}
	return n
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// countSiblingProcesses counts other running processes with our executable
// name. The store has no locking, so a sibling risks lost updates.
func countSiblingProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}

	self := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if p.Pid() != os.Getpid() && p.Executable() == self {
			count++
		}
	}
	return count, nil
}
