// Package grid implements the 4x4 sliding-tile engine: board values,
// rotation, row compaction and merge, and random tile placement.
// It has no state and performs no I/O; every operation returns a new Grid.
package grid

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Cell is one grid slot. Empty marks a free slot; any other value is a
// positive power of two.
type Cell int

// Empty is the free-slot marker.
const Empty Cell = 0

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// MarshalJSON encodes Empty as null and tiles as numbers.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsEmpty() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalJSON decodes null as Empty.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = Empty
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("grid: invalid cell %s: %w", data, err)
	}
	*c = Cell(v)
	return nil
}

// Row is one horizontal line of the board.
type Row [Size]Cell

// Grid is the full board, row-major. Grid is an array, so assigning or
// passing it copies every cell.
type Grid [Size]Row

// Position identifies one cell.
type Position struct {
	Row int
	Col int
}

// ErrShape is returned when decoded data is not exactly Size rows of Size cells.
var ErrShape = errors.New("grid: want 4 rows of 4 cells")

// MarshalJSON encodes the grid as a row-major nested array of nullable integers.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]Cell, Size)
	for r := range Size {
		rows[r] = g[r][:]
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes a nested array and rejects any other shape.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("grid: decode: %w", err)
	}
	if len(rows) != Size {
		return fmt.Errorf("%w: got %d rows", ErrShape, len(rows))
	}
	var out Grid
	for r, row := range rows {
		if len(row) != Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrShape, r, len(row))
		}
		copy(out[r][:], row)
	}
	*g = out
	return nil
}

// At returns the cell at p.
func (g Grid) At(p Position) Cell {
	return g[p.Row][p.Col]
}

// With returns a copy of g with the cell at p set to v.
func (g Grid) With(p Position, v Cell) Grid {
	g[p.Row][p.Col] = v
	return g
}

// EmptyPositions returns all free positions in row-major order.
func (g Grid) EmptyPositions() []Position {
	var cells []Position
	for r := range Size {
		for c := range Size {
			if g[r][c].IsEmpty() {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Contains reports whether any cell holds v.
func (g Grid) Contains(v Cell) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value, or 0 for an empty board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if int(g[r][c]) > maxVal {
				maxVal = int(g[r][c])
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += int(g[r][c])
		}
	}
	return total
}

// TileCount returns the number of occupied cells.
func (g Grid) TileCount() int {
	return Size*Size - len(g.EmptyPositions())
}

// String renders the grid as rows of space-separated values, "." for empty.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g[r][c].IsEmpty() {
				sb.WriteString(".")
				continue
			}
			sb.WriteString(strconv.Itoa(int(g[r][c])))
		}
	}
	return sb.String()
}
