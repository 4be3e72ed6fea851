package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-128/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved board",
	Long: `Delete the saved board so the next play starts a new game.
Finished games are kept.

Examples:
  game128 reset
  game128 reset --player alice`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagPlayer, "player", "", "Player whose board to delete (default: current user)")
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening boards database: %w", err)
	}
	defer store.Close()

	player := flagPlayer
	if player == "" {
		player = localPlayer()
	}

	if err := store.DeleteBoard(player); err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}
	fmt.Printf("Board for %s deleted.\n", player)
	return nil
}
