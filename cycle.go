package isocontour

import "sort"

// Cycle is a closed, simple, axis-aligned polygonal curve: an ordered,
// non-empty sequence of vertices with the closing edge from the last vertex
// back to the first left implicit. Edges alternate strictly between
// horizontal and vertical (§6). A non-hole cycle is listed counter-clockwise
// (in a coordinate system where y grows downward, interior-on-the-left);
// holes are clockwise.
type Cycle struct {
	Vertices []Point
}

// Normalize rotates the vertex sequence in place so that the
// lexicographically smallest (X, Y) vertex comes first. It does not reverse
// the sequence: per the reference behavior documented in §4.6/§9, rotation
// only is the chosen convention, not a canonicalization that also flips
// orientation.
func (c *Cycle) Normalize() {
	if len(c.Vertices) == 0 {
		return
	}
	min := 0
	for i, v := range c.Vertices {
		if v.Less(c.Vertices[min]) {
			min = i
		}
	}
	if min == 0 {
		return
	}
	rotated := make([]Point, len(c.Vertices))
	copy(rotated, c.Vertices[min:])
	copy(rotated[len(c.Vertices)-min:], c.Vertices[:min])
	c.Vertices = rotated
}

// Normalized returns a copy of c with Normalize applied.
func (c Cycle) Normalized() Cycle {
	out := Cycle{Vertices: append([]Point(nil), c.Vertices...)}
	out.Normalize()
	return out
}

// Applying returns a copy of c with t applied to every vertex.
func (c Cycle) Applying(t Transform) Cycle {
	out := Cycle{Vertices: make([]Point, len(c.Vertices))}
	for i, v := range c.Vertices {
		out.Vertices[i] = t.Apply(v)
	}
	return out
}

// less reports whether c sorts before d, lexicographically comparing their
// (already normalized) vertex sequences and breaking ties by length. Used by
// Contour.Normalize to order the cycle set deterministically.
func (c Cycle) less(d Cycle) bool {
	n := len(c.Vertices)
	if len(d.Vertices) < n {
		n = len(d.Vertices)
	}
	for i := 0; i < n; i++ {
		if c.Vertices[i] != d.Vertices[i] {
			return c.Vertices[i].Less(d.Vertices[i])
		}
	}
	return len(c.Vertices) < len(d.Vertices)
}

// sortCycles sorts cycles lexicographically by vertex sequence, breaking
// ties by length, as required by Contour.Normalize.
func sortCycles(cycles []Cycle) {
	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].less(cycles[j])
	})
}
