// hoops is a terminal basketball shooting game.
//
// Usage:
//
//	hoops play               - Play on the local terminal
//	hoops serve              - Start SSH server for remote play
//	hoops scores [difficulty] - Print high scores
//	hoops board              - Browse high scores interactively
//	hoops courts             - List available courts
//	hoops config             - Print the resolved game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.hoops/scores.db)
//	--config <path>     - Custom game config YAML
//	--court <id>        - Court layout (default: classic)
//	--court-file <path> - Court layout YAML, overrides --court
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hoops/internal/assets"
	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/registry"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

var (
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagCourt     string
	flagCourtFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoops",
	Short: "Hoops - shoot baskets against the clock in your terminal",
	Long: `Hoops is a terminal basketball game. Walk the court, pick up the
ball, hold SPACE to charge a throw and sink as many baskets as you can
before the round clock runs out.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  scores   - Print high scores
  board    - Browse high scores
  courts   - List available courts
  config   - Print the resolved game config

Examples:
  hoops play
  hoops play --court compact
  hoops serve --ssh :2222
  hoops scores hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCourt, "court", registry.DefaultCourt, "Court layout id")
	rootCmd.PersistentFlags().StringVar(&flagCourtFile, "court-file", "", "Path to a court layout YAML (overrides --court)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(courtsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves the game config and court from the global flags.
func loadSettings() (config.HoopsConfig, config.CourtConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, config.CourtConfig{}, err
	}
	court, err := assets.Court(flagCourt, flagCourtFile)
	if err != nil {
		return cfg, court, err
	}
	return cfg, court, nil
}
