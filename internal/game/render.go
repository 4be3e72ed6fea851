package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-128/internal/core"
	"github.com/vovakirdan/tui-128/internal/grid"
)

const (
	tileWidth  = 7
	tileHeight = 3
	headerRows = 3

	// BoardWidth and BoardHeight include the outer frame.
	BoardWidth  = grid.Size*(tileWidth+1) + 1
	BoardHeight = grid.Size*(tileHeight+1) + 1

	// MinScreenW and MinScreenH are the smallest screen Render can use.
	MinScreenW = BoardWidth + 2
	MinScreenH = headerRows + BoardHeight + 1
)

// Render draws the header, the board and, once the game is over, the
// closing overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - BoardWidth) / 2
	boardY := headerRows

	g.renderHeader(dst)
	renderBoard(dst, g.board, boardX, boardY)

	if g.Over() {
		g.renderGameOver(dst, core.NewRect(boardX, boardY, BoardWidth, BoardHeight))
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorMuted)
}

// renderHeader draws the title and the goal line.
func (g *Game) renderHeader(dst *core.Screen) {
	dst.DrawTextCentered(0, strconv.Itoa(g.cfg.TerminalValue), core.ColorTitle)
	goal := fmt.Sprintf("Join the tiles, get to %d!", g.cfg.TerminalValue)
	dst.DrawTextCentered(1, goal, core.ColorMuted)
}

// renderBoard draws the frame and every tile.
func renderBoard(dst *core.Screen, board grid.Grid, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, BoardWidth, BoardHeight), core.ColorFrame)

	for r := range grid.Size {
		for c := range grid.Size {
			value := int(board[r][c])
			tile := core.NewRect(
				boardX+1+c*(tileWidth+1),
				boardY+1+r*(tileHeight+1),
				tileWidth,
				tileHeight,
			)
			color := core.TileColor(value)
			dst.FillRect(tile, ' ', color)

			if value == 0 {
				continue
			}

			// Center the value in the tile
			label := strconv.Itoa(value)
			cx, cy := tile.Center()
			dst.DrawTextColored(cx-len(label)/2, cy, label, color)
		}
	}
}

// renderGameOver draws the end-of-game box over the board.
func (g *Game) renderGameOver(dst *core.Screen, board core.Rect) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("You reached %d in %d moves", g.cfg.TerminalValue, g.moves),
		"Press N for a new game",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	inner := box.Inset(1)

	dst.FillRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	for i, line := range lines {
		dst.DrawTextColored(inner.X+(inner.W-len(line))/2, inner.Y+i, line, core.ColorOverlay)
	}
}
