package cli

import "fmt"

type ListCmd struct {
	Date string `help:"Evaluate done-today against this day (YYYY-MM-DD)." hidden:""`
}

func (c *ListCmd) Run(ctx *Context) error {
	rows, err := ctx.Tracker.List(resolveDay(c.Date))
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No habits found. Use 'add' to create one.")
		return nil
	}

	fmt.Println(titleStyle.Render("Your Habits:"))
	for _, r := range rows {
		marker := pendingStyle.Render("○")
		status := "not done"
		if r.DoneToday {
			marker = doneStyle.Render("✓")
			status = "done"
		}
		fmt.Printf("%s %s | Streak: %s | Today: %s\n",
			marker, r.Name, streakStyle.Render(fmt.Sprintf("%d", r.Streak)), status)
	}
	return nil
}
