package orthopack

import "fmt"

// Rect describes a placed item's footprint: an origin and effective
// dimensions (post-rotation, if any).
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect initializes a new rectangle using the specified origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// String returns a string describing the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("<%d, %d, %d, %d>", r.X, r.Y, r.Width, r.Height)
}

// Right returns the coordinate of the right edge of the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the coordinate of the far edge of the rectangle along the
// length axis.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// ContainsRect tests whether the specified rectangle is contained within
// the bounds of the receiver.
func (r Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.X+rect.Width <= r.X+r.Width &&
		r.Y <= rect.Y &&
		rect.Y+rect.Height <= r.Y+r.Height
}

// Intersects tests whether the receiver has any overlap with the specified
// rectangle. Used by invariant tests to assert non-overlap of placements.
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.X+r.Width &&
		r.X < rect.X+rect.Width &&
		rect.Y < r.Y+r.Height &&
		r.Y < rect.Y+rect.Height
}
