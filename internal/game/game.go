// Package game runs one 128 puzzle: it holds the current grid, applies
// directional moves through the grid engine, spawns tiles after successful
// moves, and ends the game when the terminal tile appears.
package game

import (
	"github.com/vovakirdan/tui-128/internal/grid"
)

// DefaultTerminalValue is the tile that ends the game.
const DefaultTerminalValue = 128

// Status is the game's lifecycle state.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// Config holds per-game settings.
type Config struct {
	TerminalValue int // tile value whose appearance ends the game
}

// DefaultConfig returns the standard 128 settings.
func DefaultConfig() Config {
	return Config{TerminalValue: DefaultTerminalValue}
}

// Game is a single-player session. It is not safe for concurrent use.
type Game struct {
	cfg    Config
	rng    grid.Source
	board  grid.Grid
	status Status
	moves  int
}

// Outcome reports what a call to Apply did.
type Outcome struct {
	Ignored  bool // game was already over
	Moved    bool // at least one tile moved
	Spawned  bool // a new tile was placed
	GameOver bool // this move produced the terminal tile
}

// New starts a game on a freshly seeded grid.
func New(cfg Config, src grid.Source) *Game {
	g := &Game{cfg: normalize(cfg), rng: src}
	g.Reset()
	return g
}

// Restore resumes a previously persisted game.
func Restore(cfg Config, src grid.Source, board grid.Grid, gameOver bool, moves int) *Game {
	status := StatusPlaying
	if gameOver {
		status = StatusGameOver
	}
	return &Game{
		cfg:    normalize(cfg),
		rng:    src,
		board:  board,
		status: status,
		moves:  moves,
	}
}

func normalize(cfg Config) Config {
	if cfg.TerminalValue <= 0 {
		cfg.TerminalValue = DefaultTerminalValue
	}
	return cfg
}

// Reset discards the current board and starts over in StatusPlaying.
func (g *Game) Reset() {
	g.board = grid.GenerateInitial(g.rng)
	g.status = StatusPlaying
	g.moves = 0
}

// Apply shifts the board in direction d.
// Nothing happens once the game is over. A move that changes the board is
// followed by a spawn. The terminal check runs on the move result before the
// spawn, whether or not anything moved.
func (g *Game) Apply(d grid.Direction) Outcome {
	if g.status == StatusGameOver {
		return Outcome{Ignored: true}
	}

	res := grid.Move(g.board, d)
	out := Outcome{Moved: res.Moved}

	if res.Moved {
		spawned := grid.AddRandomCell(res.Grid, g.rng)
		out.Spawned = spawned != res.Grid
		g.board = spawned
		g.moves++
	}

	if res.Grid.Contains(grid.Cell(g.cfg.TerminalValue)) {
		g.status = StatusGameOver
		out.GameOver = true
	}

	return out
}

// Board returns a copy of the current grid.
func (g *Game) Board() grid.Grid {
	return g.board
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the terminal tile has been reached.
func (g *Game) Over() bool {
	return g.status == StatusGameOver
}

// Moves returns the number of accepted moves since the last reset.
func (g *Game) Moves() int {
	return g.moves
}

// TerminalValue returns the configured game-ending tile.
func (g *Game) TerminalValue() int {
	return g.cfg.TerminalValue
}
