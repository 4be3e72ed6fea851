package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-128/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved board",
	Long: `Print the saved board, its status and the number of finished games.

Examples:
  game128 show
  game128 show --player alice   # A board saved by the SSH server`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagPlayer, "player", "", "Player whose board to show (default: current user)")
}

func runShow(_ *cobra.Command, _ []string) error {
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

	state, err := store.LoadBoard(player)
	switch {
	case errors.Is(err, storage.ErrNoBoard):
		fmt.Printf("No saved board for %s.\n", player)
		fmt.Println()
		fmt.Println("Run 'game128 play' to start one.")
	case err != nil:
		return fmt.Errorf("loading board: %w", err)
	default:
		status := "playing"
		if state.GameOver {
			status = "game over"
		}
		fmt.Printf("Board - %s\n", player)
		fmt.Println()
		fmt.Println(state.Grid.String())
		fmt.Println()
		fmt.Printf("Status:  %s\n", status)
		fmt.Printf("Moves:   %d\n", state.Moves)
		fmt.Printf("Best:    %d\n", state.Grid.MaxTile())
		fmt.Printf("Updated: %s\n", state.UpdatedAt.Format("2006-01-02 15:04"))
	}

	finished, err := store.FinishedCount(player)
	if err == nil {
		fmt.Printf("Finished games: %d\n", finished)
	}

	recent, err := store.FinishedGames(player, 5)
	if err != nil || len(recent) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Printf("  %-6s  %-7s  %s\n", "Moves", "Tile", "Date")
	fmt.Printf("  %-6s  %-7s  %s\n", "-----", "----", "----")
	for _, g := range recent {
		fmt.Printf("  %-6d  %-7d  %s\n", g.Moves, g.MaxTile, g.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
