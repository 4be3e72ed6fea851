// Package core provides fundamental types for the puzzle's platform layer:
// screen buffer, colors, actions and geometry. It has no Bubble Tea
// dependency so drawing code stays pure and testable.
package core

// Rect is an axis-aligned area of screen cells. X and Y are the top-left
// cell; Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the middle cell, rounding toward the bottom-right.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Centered returns a w by h rectangle sharing r's center.
// The result may extend beyond r when it is larger.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// Inset shrinks r by n cells on every side. Sizes never go below zero.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}
