package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hoops/internal/assets"
	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/core"
	"github.com/vovakirdan/tui-hoops/internal/platform/tui"
	"github.com/vovakirdan/tui-hoops/internal/storage"
)

var (
	flagLogPath string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a game on this terminal.

Controls:
  W/A/S/D      - Walk and strafe
  Arrow keys   - Turn and look up/down
  E            - Grab the ball when the prompt shows
  Space (hold) - Charge the throw, release to shoot
  P/Esc        - Pause
  M            - Main menu (after the round)
  Q/Ctrl+C     - Quit

Examples:
  hoops play
  hoops play --court compact
  hoops play --config ./my-hoops.yaml --log ./hoops.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Log file (default ~/.hoops/hoops.log)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every gameplay event")
}

// openLog opens the log file. The alternate screen owns the terminal, so
// play never logs to stderr.
func openLog() (*log.Logger, *os.File, error) {
	path := flagLogPath
	if path == "" {
		dir, err := config.UserDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, "hoops.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hoops",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, court, err := loadSettings()
	if err != nil {
		return err
	}

	logger, logFile, err := openLog()
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("session started", "court", court.ID, "fps", flagFPS)
	return tui.Run(tui.Options{
		Config: cfg,
		Loader: assets.NewLoader(cfg, court),
		Court:  court.ID,
		Store:  store,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Player: os.Getenv("USER"),
	})
}
