package orthopack

import "fmt"

// Point describes a candidate placement origin, or the location of a
// placed item's corner, in the 2D plane of a container.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPoint initializes a new point with the specified coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Eq tests whether the receiver and another point have equal values.
func (p Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// origin is the fixed starting point of every construction run (category O).
var origin = Point{X: 0, Y: 0}
