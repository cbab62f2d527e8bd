package isocontour

import "fmt"

// Point is a single vertex in the plane, given by its x and y coordinate.
type Point struct {
	X, Y float64
}

// Less orders points lexicographically by (X, Y). Cycle normalization uses
// it to pick a cycle's first vertex and to order cycles; the stitcher's
// endpoint sort, which orders by (y, x), does not use it.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
