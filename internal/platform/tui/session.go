package tui

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-128/internal/game"
	"github.com/vovakirdan/tui-128/internal/grid"
	"github.com/vovakirdan/tui-128/internal/storage"
)

// BoardStore persists boards between sessions. *storage.Store implements it.
type BoardStore interface {
	LoadBoard(player string) (storage.BoardState, error)
	SaveBoard(player string, state storage.BoardState) error
	RecordFinished(player string, moves, maxTile int) (int64, error)
}

// OpenGame resumes the player's saved board, or starts a new game when there
// is none or it cannot be read. A nil store always starts a new game.
func OpenGame(store BoardStore, player string, cfg game.Config, src grid.Source, logger *log.Logger) *game.Game {
	if store == nil {
		return game.New(cfg, src)
	}

	state, err := store.LoadBoard(player)
	switch {
	case err == nil:
		logger.Debug("board restored", "player", player, "moves", state.Moves, "game_over", state.GameOver)
		return game.Restore(cfg, src, state.Grid, state.GameOver, state.Moves)
	case errors.Is(err, storage.ErrNoBoard):
		logger.Debug("no saved board", "player", player)
	default:
		logger.Warn("discarding unreadable board", "player", player, "error", err)
	}
	return game.New(cfg, src)
}
