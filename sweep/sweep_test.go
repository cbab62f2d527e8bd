package sweep

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// normalize rotates verts so the lexicographically smallest (x,y) vertex
// comes first, without flipping direction, matching isocontour.Cycle.Normalize.
func normalize(verts []Point) []Point {
	if len(verts) == 0 {
		return verts
	}
	min := 0
	for i, v := range verts {
		if less(v, verts[min]) {
			min = i
		}
	}
	out := make([]Point, len(verts))
	copy(out, verts[min:])
	copy(out[len(verts)-min:], verts[:min])
	return out
}

func less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func normalizeAll(cycles []Cycle) [][]Point {
	out := make([][]Point, len(cycles))
	for i, c := range cycles {
		out[i] = normalize(c.Vertices)
	}
	sort.Slice(out, func(i, j int) bool {
		n := len(out[i])
		if len(out[j]) < n {
			n = len(out[j])
		}
		for k := 0; k < n; k++ {
			if out[i][k] != out[j][k] {
				return less(out[i][k], out[j][k])
			}
		}
		return len(out[i]) < len(out[j])
	})
	return out
}

func TestContourEmpty(t *testing.T) {
	got := Contour(nil, nil, 0)
	assert.Empty(t, got.Cycles)
}

func TestContourOnlyEmptyRects(t *testing.T) {
	got := Contour(nil, []Rect{
		{XLo: 1, YLo: 1, XHi: 1, YHi: 5}, // zero width
		{XLo: 1, YLo: 1, XHi: 5, YHi: 1}, // zero height
	}, 0)
	assert.Empty(t, got.Cycles)
}

func TestContourSingleRect(t *testing.T) {
	got := Contour(nil, []Rect{{XLo: 1, YLo: 2, XHi: 4, YHi: 6}}, 0)
	require.Len(t, got.Cycles, 1)
	want := []Point{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6}}
	assert.Equal(t, want, normalize(got.Cycles[0].Vertices))
}

func TestContourDisjoint(t *testing.T) {
	got := Contour(nil, []Rect{
		{XLo: 1, YLo: 2, XHi: 4, YHi: 6},
		{XLo: 5, YLo: 6, XHi: 12, YHi: 14},
	}, 0)
	want := [][]Point{
		{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6}},
		{{X: 5, Y: 6}, {X: 12, Y: 6}, {X: 12, Y: 14}, {X: 5, Y: 14}},
	}
	sort.Slice(want, func(i, j int) bool { return less(want[i][0], want[j][0]) })
	assert.Equal(t, want, normalizeAll(got.Cycles))
}

func TestContourLShape(t *testing.T) {
	got := Contour(nil, []Rect{
		{XLo: 1, YLo: 2, XHi: 4, YHi: 6},
		{XLo: 2, YLo: 3, XHi: 7, YHi: 9},
	}, 0)
	require.Len(t, got.Cycles, 1)
	want := []Point{
		{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 7, Y: 3},
		{X: 7, Y: 9}, {X: 2, Y: 9}, {X: 2, Y: 6}, {X: 1, Y: 6},
	}
	assert.Equal(t, want, normalize(got.Cycles[0].Vertices))
}

func TestContourOffsetOverlap(t *testing.T) {
	got := Contour(nil, []Rect{
		{XLo: 2, YLo: 71, XHi: 4, YHi: 74},
		{XLo: 1, YLo: 72, XHi: 3, YHi: 73},
	}, 0)
	require.Len(t, got.Cycles, 1)
	want := []Point{
		{X: 1, Y: 72}, {X: 2, Y: 72}, {X: 2, Y: 71}, {X: 4, Y: 71},
		{X: 4, Y: 74}, {X: 2, Y: 74}, {X: 2, Y: 73}, {X: 1, Y: 73},
	}
	assert.Equal(t, want, normalize(got.Cycles[0].Vertices))
}

func TestContourHole(t *testing.T) {
	// A square frame, 10x10 outer with a 4x4 hole in the middle, built
	// from four strips that touch edge to edge.
	got := Contour(nil, []Rect{
		{XLo: 0, YLo: 0, XHi: 10, YHi: 3},  // top strip
		{XLo: 0, YLo: 7, XHi: 10, YHi: 10}, // bottom strip
		{XLo: 0, YLo: 3, XHi: 3, YHi: 7},   // left strip
		{XLo: 7, YLo: 3, XHi: 10, YHi: 7},  // right strip
	}, 0)
	require.Len(t, got.Cycles, 2)

	// one cycle is CCW (positive shoelace area), one CW (negative).
	var signs []bool
	for _, c := range got.Cycles {
		signs = append(signs, area(c.Vertices) > 0)
	}
	assert.ElementsMatch(t, []bool{true, false}, signs)
}

func area(verts []Point) float64 {
	var sum float64
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return sum / 2
}

func TestContourIdempotentUnion(t *testing.T) {
	rects := []Rect{
		{XLo: 1, YLo: 2, XHi: 4, YHi: 6},
		{XLo: 2, YLo: 3, XHi: 7, YHi: 9},
	}
	doubled := append(append([]Rect{}, rects...), rects...)

	got1 := Contour(nil, rects, 0)
	got2 := Contour(nil, doubled, 0)
	assert.Equal(t, normalizeAll(got1.Cycles), normalizeAll(got2.Cycles))
}

func TestContourEveryEdgeAxisAligned(t *testing.T) {
	got := Contour(nil, []Rect{
		{XLo: 1, YLo: 2, XHi: 4, YHi: 6},
		{XLo: 2, YLo: 3, XHi: 7, YHi: 9},
		{XLo: 10, YLo: 10, XHi: 20, YHi: 20},
	}, 0)
	for _, c := range got.Cycles {
		n := len(c.Vertices)
		require.True(t, n%2 == 0, "cycle has odd vertex count %d", n)
		for i := 0; i < n; i++ {
			a, b := c.Vertices[i], c.Vertices[(i+1)%n]
			horiz := a.Y == b.Y
			vert := a.X == b.X
			assert.True(t, horiz != vert, "edge (%v -> %v) is not exactly one of H/V", a, b)
		}
	}
}
