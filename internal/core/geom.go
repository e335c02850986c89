// Package core provides the platform-neutral types shared by the game adapter
// and the terminal shell: geometry, a colored rune buffer and input frames.
// It has no Bubble Tea dependency so adapters stay testable.
package core

// Rect represents an axis-aligned rectangle in terminal cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Scaler maps world units onto a grid of terminal cells.
// Coordinates are scaled independently on each axis.
type Scaler struct {
	WorldW, WorldH int
	CellsW, CellsH int
}

// X converts a world x coordinate to a column.
func (s Scaler) X(x int) int {
	return scale(x, s.WorldW, s.CellsW)
}

// Y converts a world y coordinate to a row.
func (s Scaler) Y(y int) int {
	return scale(y, s.WorldH, s.CellsH)
}

// Rect converts a world rectangle to cells. Edges are scaled separately so
// adjacent world rectangles stay adjacent; a non-empty world rectangle always
// covers at least one cell.
func (s Scaler) Rect(x, y, w, h int) Rect {
	left, top := s.X(x), s.Y(y)
	right, bottom := s.X(x+w), s.Y(y+h)
	if w > 0 && right == left {
		right++
	}
	if h > 0 && bottom == top {
		bottom++
	}
	return NewRect(left, top, right-left, bottom-top)
}

// scale maps v from [0, from) to [0, to), flooring toward negative infinity.
func scale(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	n := v * to
	q := n / from
	if n%from != 0 && n < 0 {
		q--
	}
	return q
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
