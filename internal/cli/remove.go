package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"habitctl/internal/tracker"
)

type RemoveCmd struct {
	Name []string `arg:"" help:"Name of the habit to remove."`
	Yes  bool     `short:"y" help:"Skip the confirmation prompt."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	name := joinName(c.Name)

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Remove habit '%s'?", name)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	err := ctx.Tracker.Remove(name)
	if errors.Is(err, tracker.ErrNotFound) {
		fmt.Printf("Habit '%s' not found.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Removed habit: %s\n", name)
	return nil
}
