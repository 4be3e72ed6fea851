package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-128/internal/core"
	"github.com/vovakirdan/tui-128/internal/logging"
	"github.com/vovakirdan/tui-128/internal/platform/tui"
	"github.com/vovakirdan/tui-128/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the local board",
	Long: `Resume the saved board, or start a new one, and play in the terminal.

The board is saved after every move, so quitting and running play again
continues where you left off.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  N/R               - New game
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Examples:
  game128 play
  game128 play --seed 42
  game128 play --db ./state.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to the configured file or nowhere.
	logger, closer := logging.New(cfg.Log, "game128", io.Discard)
	defer closer.Close()

	var store tui.BoardStore
	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open boards database", "error", err)
	} else {
		defer db.Close()
		store = db
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	player := localPlayer()
	g := tui.OpenGame(store, player, gameConfig(cfg), newRNG(flagSeed), logger)

	if err := tui.Run(g, tui.ModelOptions{
		Store:  store,
		Player: player,
		Logger: logger,
		Config: rtc,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
