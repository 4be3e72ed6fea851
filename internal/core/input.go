package core

import "github.com/vovakirdan/tui-128/internal/grid"

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionNewGame        // N, R - start over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the board direction for a movement action.
// The second result is false for actions that do not move tiles.
func (a Action) Direction() (grid.Direction, bool) {
	switch a {
	case ActionUp:
		return grid.Up, true
	case ActionDown:
		return grid.Down, true
	case ActionLeft:
		return grid.Left, true
	case ActionRight:
		return grid.Right, true
	default:
		return 0, false
	}
}
