package grid

// Result is the outcome of Move.
type Result struct {
	Grid  Grid
	Moved bool // true iff any cell differs from the input
}

// MoveRowLeft slides every tile in row to the left and merges equal
// neighbours pairwise. A merged tile does not merge again in the same pass,
// so [2 2 2 2] becomes [4 4 _ _].
// Returns the new row and whether it differs from the input.
func MoveRowLeft(row Row) (Row, bool) {
	var result Row
	n := 0
	pending := Empty

	for _, cell := range row {
		switch {
		case cell.IsEmpty():
			continue
		case pending.IsEmpty():
			pending = cell
		case pending == cell:
			result[n] = pending * 2
			n++
			pending = Empty
		default:
			result[n] = pending
			n++
			pending = cell
		}
	}

	if !pending.IsEmpty() {
		result[n] = pending
	}

	return result, result != row
}

// Move shifts the whole grid in direction d.
// The grid is rotated so that d becomes a move to the left, every row is
// compacted with MoveRowLeft, and the result is rotated back.
func Move(g Grid, d Direction) Result {
	if !d.valid() {
		return Result{Grid: g}
	}

	rotated := Rotate(g, d.ForwardDegrees())
	moved := false
	for r := range Size {
		row, rowMoved := MoveRowLeft(rotated[r])
		rotated[r] = row
		moved = moved || rowMoved
	}

	return Result{
		Grid:  Rotate(rotated, d.InverseDegrees()),
		Moved: moved,
	}
}
