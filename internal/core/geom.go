// Package core provides the platform types shared by games and frontends:
// screen buffers, geometry and input frames. It has no UI dependencies so
// game logic stays pure and testable.
package core

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle (right/bottom exclusive).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is a continuous axis-aligned box in world units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// StrictlyContains reports whether (x, y) lies inside the box with all four
// edges excluded.
func (b Box) StrictlyContains(x, y float64) bool {
	return x > b.X && x < b.Right() && y > b.Y && y < b.Bottom()
}

// OverlapsX reports whether the horizontal extents of the two boxes overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.X < other.Right() && b.Right() > other.X
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
