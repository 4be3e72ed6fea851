package grid

// Rotate turns g counter-clockwise by degrees. Only 0, 90, 180 and 270 rotate;
// any other value returns g unchanged.
func Rotate(g Grid, degrees int) Grid {
	switch degrees {
	case 0, 90, 180, 270:
		return rotateQuarterTurns(g, degrees/90)
	default:
		return g
	}
}

// rotateQuarterTurns applies turns counter-clockwise quarter turns.
// One turn maps out[c][r] = in[r][Size-1-c].
func rotateQuarterTurns(g Grid, turns int) Grid {
	out := g
	for range turns % 4 {
		var next Grid
		for r := range Size {
			for c := range Size {
				next[c][r] = out[r][Size-1-c]
			}
		}
		out = next
	}
	return out
}
