package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

var flagAllCourts bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Print high scores",
	Long: `Display the top 10 rounds for a difficulty, or a summary of every
difficulty when none is given.

Examples:
  hoops scores
  hoops scores hard
  hoops scores easy --court compact
  hoops scores medium --all-courts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllCourts, "all-courts", false, "Include rounds from every court")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	d, err := config.ParseDifficulty(args[0])
	if err != nil {
		return err
	}
	court := flagCourt
	if flagAllCourts {
		court = ""
	}

	scores, err := store.TopScores(string(d), court, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	where := "all courts"
	if court != "" {
		where = court
	}
	fmt.Printf("High Scores - %s (%s)\n", d.Title(), where)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hoops play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Points", "Court", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-10s  %s\n", i+1, entry.Points, entry.Court, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(string(d), court); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println("Hoops - all rounds")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-4s  %-7s  %s\n", "Level", "Rounds", "Best", "Average", "Last played")
	fmt.Printf("  %-8s  %-6s  %-4s  %-7s  %s\n", "-----", "------", "----", "-------", "-----------")
	for _, d := range config.Difficulties() {
		st, ok := stats[string(d)]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-4d  %-7.1f  %s\n",
			d.Title(), st.Rounds, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentScores(5)
	if err != nil || len(recent) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println("Recent rounds:")
	for _, e := range recent {
		fmt.Printf("  %-8s  %-10s  %3d  %s\n", e.Difficulty, e.Court, e.Points, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
