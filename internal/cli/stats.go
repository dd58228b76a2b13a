package cli

import "fmt"

type StatsCmd struct {
	Date string `help:"Evaluate done-today against this day (YYYY-MM-DD)." hidden:""`
}

func (c *StatsCmd) Run(ctx *Context) error {
	st, err := ctx.Tracker.Stats(resolveDay(c.Date))
	if err != nil {
		return err
	}

	if st.Total == 0 {
		fmt.Println("No habits tracked yet.")
		return nil
	}

	fmt.Printf("%d/%d habits done today.\n", st.DoneToday, st.Total)
	if st.Top != nil {
		fmt.Printf("Longest streak: %s (%d days)\n", st.Top.Name, st.Top.Streak)
	}
	return nil
}
