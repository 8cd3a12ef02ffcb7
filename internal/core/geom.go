// Package core provides fundamental types and utilities for the starship
// animation. It contains no external dependencies (especially no Bubble Tea)
// to keep routine logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned region of the grid.
type Rect struct {
	X, Y int // Top-left corner position (column, row)
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Position is a fractional grid coordinate. Routines move in sub-cell steps
// and round to a display cell only when drawing.
type Position struct {
	Row, Col float64
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Cell returns the display cell nearest to the position.
func (p Position) Cell() (row, col int) {
	return Round(p.Row), Round(p.Col)
}

// Size is a bounding box in cells.
type Size struct {
	Rows, Cols int
}

// PlayableRect returns the region of a rows x cols grid that lies inside the
// given border margin.
func PlayableRect(rows, cols, margin int) Rect {
	return NewRect(margin, margin, cols-2*margin, rows-2*margin)
}

// ClampAnchor moves anchor by delta and clamps the result so that a box of the
// given size anchored at its top-left corner stays inside bounds.
// When the box does not fit, the top-left edge of bounds wins.
func ClampAnchor(anchor, delta Position, box Size, bounds Rect) Position {
	next := anchor.Add(delta)
	maxRow := float64(bounds.Bottom() - box.Rows)
	maxCol := float64(bounds.Right() - box.Cols)
	return Position{
		Row: math.Max(float64(bounds.Y), math.Min(next.Row, maxRow)),
		Col: math.Max(float64(bounds.X), math.Min(next.Col, maxCol)),
	}
}

// Round rounds half away from zero to the nearest integer.
func Round(v float64) int {
	return int(math.Round(v))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
