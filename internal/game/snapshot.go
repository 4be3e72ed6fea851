package game

import "github.com/vovakirdan/tui-128/internal/grid"

// Snapshot captures the complete game state for persistence and display.
type Snapshot struct {
	Board         grid.Grid `json:"board"`
	Status        Status    `json:"status"`
	Moves         int       `json:"moves"`
	TerminalValue int       `json:"terminal_value"`
	MaxTile       int       `json:"max_tile"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:         g.board,
		Status:        g.status,
		Moves:         g.moves,
		TerminalValue: g.cfg.TerminalValue,
		MaxTile:       g.board.MaxTile(),
	}
}
