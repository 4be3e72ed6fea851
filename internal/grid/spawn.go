package grid

// Source supplies uniformly distributed values in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// TwoProbability is the chance that a spawned tile is 2 rather than 4.
const TwoProbability = 0.9

// GenerateInitial returns an empty grid seeded with two tiles of value 2
// at random free positions.
func GenerateInitial(src Source) Grid {
	var g Grid
	for range 2 {
		if p, ok := pickEmpty(g, src); ok {
			g[p.Row][p.Col] = 2
		}
	}
	return g
}

// AddRandomCell places one tile at a random free position: 2 with
// probability TwoProbability, otherwise 4. A full grid is returned unchanged.
func AddRandomCell(g Grid, src Source) Grid {
	p, ok := pickEmpty(g, src)
	if !ok {
		return g
	}

	value := Cell(4)
	if src.Float64() < TwoProbability {
		value = 2
	}
	return g.With(p, value)
}

// pickEmpty chooses a free position uniformly.
func pickEmpty(g Grid, src Source) (Position, bool) {
	empty := g.EmptyPositions()
	if len(empty) == 0 {
		return Position{}, false
	}

	i := int(src.Float64() * float64(len(empty)))
	if i >= len(empty) {
		i = len(empty) - 1
	}
	return empty[i], true
}
