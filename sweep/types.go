package sweep

// Point is a vertex of the output contour, in the caller's original
// coordinate space (not the compressed y-index space used internally by
// the segment tree).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned input rectangle. The caller is responsible for
// filtering or canonicalizing; Contour treats any rectangle with XLo>=XHi
// or YLo>=YHi as empty and ignores it (§4.1).
type Rect struct {
	XLo, YLo, XHi, YHi float64
}

// Empty reports whether r has zero width or zero height.
func (r Rect) Empty() bool {
	return r.XLo >= r.XHi || r.YLo >= r.YHi
}

// Cycle is a closed, ordered sequence of vertices, the closing edge from
// the last back to the first left implicit.
type Cycle struct {
	Vertices []Point
}

// ContourResult is the output of a single Contour call: the set of cycles
// that bound the union of the input rectangles.
type ContourResult struct {
	Cycles []Cycle
}
