package cli

import (
	"errors"
	"fmt"

	"habitctl/internal/tracker"
)

type AddCmd struct {
	Name []string `arg:"" help:"Name of the habit."`
}

func (c *AddCmd) Run(ctx *Context) error {
	name := joinName(c.Name)

	err := ctx.Tracker.Add(name)
	switch {
	case errors.Is(err, tracker.ErrAlreadyExists):
		fmt.Printf("Habit '%s' already exists.\n", name)
		return nil
	case errors.Is(err, tracker.ErrInvalidName):
		fmt.Println("Habit name must not be empty.")
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("Added habit: %s\n", name)
	return nil
}
