package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hoops/internal/platform/tui"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores",
	Long: `Open an interactive scoreboard. Tab switches difficulty and C toggles
between the selected court and all courts.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Without a database the board still opens, empty.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	court := ""
	if cmd.Flags().Changed("court") {
		court = flagCourt
	}
	return tui.RunScoreboard(store, court, width, height)
}
