package cli

import (
	"errors"
	"fmt"

	"habitctl/internal/tracker"
)

type DoneCmd struct {
	Name []string `arg:"" help:"Name of the habit."`
	Date string   `help:"Mark done for a specific day (YYYY-MM-DD) instead of today." hidden:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	name := joinName(c.Name)

	res, err := ctx.Tracker.MarkDone(name, resolveDay(c.Date))
	if errors.Is(err, tracker.ErrNotFound) {
		fmt.Printf("Habit '%s' not found. Use 'add' to create it.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	if res.AlreadyDone {
		fmt.Printf("Already marked '%s' as done today.\n", name)
		return nil
	}
	fmt.Printf("Marked '%s' as done. Streak: %d\n", name, res.Streak)
	return nil
}
