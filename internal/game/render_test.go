package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-128/internal/core"
	"github.com/vovakirdan/tui-128/internal/grid"
)

func TestRenderShowsTiles(t *testing.T) {
	board := grid.Grid{
		{2, 0, 0, 0},
		{0, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 32},
	}
	g := Restore(DefaultConfig(), newRNG(), board, false, 0)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"128", "Join the tiles, get to 128!", "64", "32"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("overlay should not show while playing")
	}
}

func TestRenderTileColors(t *testing.T) {
	board := grid.Grid{{64}}
	g := Restore(DefaultConfig(), newRNG(), board, false, 0)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	boardX := (80 - BoardWidth) / 2
	// Top-left tile interior
	cell := screen.GetCell(boardX+1, headerRows+1)
	if cell.Color != core.ColorTile64 {
		t.Errorf("tile color = %d, want %d", cell.Color, core.ColorTile64)
	}
	empty := screen.GetCell(boardX+1+tileWidth+1, headerRows+1)
	if empty.Color != core.ColorEmptyTile {
		t.Errorf("empty tile color = %d, want %d", empty.Color, core.ColorEmptyTile)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := Restore(DefaultConfig(), newRNG(), grid.Grid{{128}}, true, 40)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "You reached 128 in 40 moves") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(DefaultConfig(), newRNG())
	screen := core.NewScreen(20, 10)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}
}
