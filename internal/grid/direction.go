package grid

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name produced by String back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}

// valid reports whether d is one of the four declared directions.
func (d Direction) valid() bool {
	return d >= Up && d <= Right
}

// ForwardDegrees is the counter-clockwise rotation that turns a move in d
// into a move to the left.
func (d Direction) ForwardDegrees() int {
	switch d {
	case Left:
		return 0
	case Up:
		return 90
	case Right:
		return 180
	case Down:
		return 270
	default:
		return 0
	}
}

// InverseDegrees undoes ForwardDegrees.
func (d Direction) InverseDegrees() int {
	return (360 - d.ForwardDegrees()) % 360
}
