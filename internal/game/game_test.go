package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-128/internal/grid"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewGame(t *testing.T) {
	g := New(DefaultConfig(), newRNG())

	if g.Status() != StatusPlaying {
		t.Errorf("Status() = %s, want playing", g.Status())
	}
	if n := g.Board().TileCount(); n != 2 {
		t.Errorf("initial tile count = %d, want 2", n)
	}
	if g.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", g.Moves())
	}
	if g.TerminalValue() != 128 {
		t.Errorf("TerminalValue() = %d, want 128", g.TerminalValue())
	}
}

func TestZeroTerminalValueUsesDefault(t *testing.T) {
	g := New(Config{}, newRNG())
	if g.TerminalValue() != DefaultTerminalValue {
		t.Errorf("TerminalValue() = %d, want %d", g.TerminalValue(), DefaultTerminalValue)
	}
}

func TestApplySpawnsAfterMove(t *testing.T) {
	board := grid.Grid{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 0)

	out := g.Apply(grid.Left)

	if !out.Moved || !out.Spawned {
		t.Fatalf("Apply(Left) = %+v, want moved and spawned", out)
	}
	if g.Board()[0][0] != 2 {
		t.Errorf("tile should slide to (0,0), board:\n%v", g.Board())
	}
	if n := g.Board().TileCount(); n != 2 {
		t.Errorf("tile count after move = %d, want 2", n)
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", g.Moves())
	}
}

func TestApplyNoMoveNoSpawn(t *testing.T) {
	board := grid.Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 3)

	out := g.Apply(grid.Left)

	if out.Moved || out.Spawned {
		t.Errorf("Apply(Left) = %+v, want no movement", out)
	}
	if g.Board() != board {
		t.Errorf("board changed without movement:\n%v", g.Board())
	}
	if g.Moves() != 3 {
		t.Errorf("Moves() = %d, want 3", g.Moves())
	}
}

func TestTerminalValueEndsGame(t *testing.T) {
	board := grid.Grid{
		{64, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 0)

	out := g.Apply(grid.Left)

	if !out.GameOver {
		t.Fatalf("Apply(Left) = %+v, want game over", out)
	}
	if g.Status() != StatusGameOver {
		t.Errorf("Status() = %s, want game_over", g.Status())
	}
	if g.Board()[0][0] != 128 {
		t.Errorf("merged tile = %v, want 128", g.Board()[0][0])
	}
}

func TestTerminalValueWithoutMovement(t *testing.T) {
	board := grid.Grid{
		{128, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 0)

	out := g.Apply(grid.Left)

	if out.Moved {
		t.Error("tile at (0,0) should not move left")
	}
	if !out.GameOver {
		t.Error("terminal tile on the board should end the game even without movement")
	}
}

func TestNoTerminalValueKeepsPlaying(t *testing.T) {
	board := grid.Grid{
		{32, 32, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 0)

	if out := g.Apply(grid.Left); out.GameOver {
		t.Errorf("Apply(Left) = %+v, want play to continue", out)
	}
	if g.Over() {
		t.Error("game should still be playing")
	}
}

func TestConfiguredTerminalValue(t *testing.T) {
	board := grid.Grid{
		{32, 32, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(Config{TerminalValue: 64}, newRNG(), board, false, 0)

	if out := g.Apply(grid.Left); !out.GameOver {
		t.Errorf("Apply(Left) = %+v, want game over at 64", out)
	}
}

func TestFullBoardIsNotGameOver(t *testing.T) {
	board := grid.Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 0)

	for _, d := range grid.Directions {
		if out := g.Apply(d); out.Moved || out.GameOver {
			t.Errorf("Apply(%s) = %+v on a stuck board", d, out)
		}
	}
	if g.Status() != StatusPlaying {
		t.Errorf("stuck board should stay playing, got %s", g.Status())
	}
}

func TestGameOverIgnoresInput(t *testing.T) {
	board := grid.Grid{
		{128, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(DefaultConfig(), newRNG(), board, true, 9)

	out := g.Apply(grid.Left)

	if !out.Ignored {
		t.Errorf("Apply after game over = %+v, want ignored", out)
	}
	if g.Board() != board {
		t.Error("board changed after game over")
	}
}

func TestResetReturnsToPlaying(t *testing.T) {
	g := Restore(DefaultConfig(), newRNG(), grid.Grid{{128}}, true, 12)

	g.Reset()

	if g.Status() != StatusPlaying {
		t.Errorf("Status() after reset = %s, want playing", g.Status())
	}
	if g.Moves() != 0 {
		t.Errorf("Moves() after reset = %d, want 0", g.Moves())
	}
	if n := g.Board().TileCount(); n != 2 {
		t.Errorf("tile count after reset = %d, want 2", n)
	}
}

func TestDeterministicGames(t *testing.T) {
	g1 := New(DefaultConfig(), rand.New(rand.NewSource(12345)))
	g2 := New(DefaultConfig(), rand.New(rand.NewSource(12345)))

	for _, d := range []grid.Direction{grid.Left, grid.Up, grid.Right, grid.Down, grid.Left} {
		g1.Apply(d)
		g2.Apply(d)
	}

	if g1.Board() != g2.Board() {
		t.Errorf("same seed should produce the same game:\n%v\nvs\n%v", g1.Board(), g2.Board())
	}
}

func TestSnapshot(t *testing.T) {
	board := grid.Grid{
		{2, 0, 0, 0},
		{0, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 5)

	snap := g.Snapshot()

	if snap.Status != StatusPlaying {
		t.Errorf("Snapshot Status = %s, want playing", snap.Status)
	}
	if snap.MaxTile != 64 {
		t.Errorf("Snapshot MaxTile = %d, want 64", snap.MaxTile)
	}
	if snap.Moves != 5 {
		t.Errorf("Snapshot Moves = %d, want 5", snap.Moves)
	}
	if snap.TerminalValue != 128 {
		t.Errorf("Snapshot TerminalValue = %d, want 128", snap.TerminalValue)
	}
	if snap.Board != board {
		t.Error("Snapshot Board differs from the game board")
	}
}
