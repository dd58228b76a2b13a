package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"habitctl/internal/cli"
	"habitctl/internal/storage"
	"habitctl/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	File    string `help:"Storage file path (.json or .db)." type:"path" default:"~/.local/share/habitctl/habits.json"`

	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	Done   cli.DoneCmd   `cmd:"" help:"Mark a habit done for today."`
	List   cli.ListCmd   `cmd:"" help:"List tracked habits."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show progress stats."`
	Remove cli.RemoveCmd `cmd:"" help:"Remove a habit."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive habit list."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run storage and environment diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Personal habit tracker with daily streaks"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.File, ".db") {
		store = storage.NewSQLiteStore(CLI.File)
	} else {
		store = storage.NewJSONStore(CLI.File)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
