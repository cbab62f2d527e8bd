package sweep

import (
	"sort"

	"github.com/arl/assertgo"
)

// contourVertex is one of the two endpoints of a contourEdge, tagged with
// its edge's index and whether it is the edge's start or end (§4.5).
type contourVertex struct {
	Y, X    float64
	EdgeIdx int
	IsEnd   bool
}

// stitch assembles the emitted vertical edges, plus their implicit
// horizontal connectors, into closed cycles (§4.5).
//
// maxVertsHint, if > 0, pre-sizes each cycle's vertex slice; it is only a
// hint and every cycle still grows its slice past the hint if needed.
func stitch(ctx *Context, edges []contourEdge, ys yScale, maxVertsHint int) []Cycle {
	ctx.startTimer(TimerStitch)
	defer ctx.stopTimer(TimerStitch)

	n := len(edges)
	if n == 0 {
		return nil
	}

	verts := make([]contourVertex, 0, 2*n)
	for i, e := range edges {
		s, en := e.start(ys), e.end(ys)
		verts = append(verts, contourVertex{Y: s.Y, X: s.X, EdgeIdx: i, IsEnd: false})
		verts = append(verts, contourVertex{Y: en.Y, X: en.X, EdgeIdx: i, IsEnd: true})
	}

	// Sort lexicographically by (y, x): this groups endpoints into pairs
	// by horizontal line, left-to-right (§4.5 step 2).
	sort.Slice(verts, func(i, j int) bool {
		a, b := verts[i], verts[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	assert.True(len(verts)%2 == 0, "stitch: odd endpoint count %d", len(verts))

	link := make(map[int]int, n)
	for i := 0; i+1 < len(verts); i += 2 {
		a, b := verts[i], verts[i+1]
		assert.True(a.IsEnd != b.IsEnd,
			"stitch: pair at (%g,%g)/(%g,%g) doesn't have exactly one end vertex", a.X, a.Y, b.X, b.Y)
		if a.IsEnd {
			link[a.EdgeIdx] = b.EdgeIdx
		} else {
			link[b.EdgeIdx] = a.EdgeIdx
		}
	}

	ptsCap := 1
	if maxVertsHint > ptsCap {
		ptsCap = maxVertsHint
	}

	visited := make([]bool, n)
	var cycles []Cycle
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		pts := make([]Point, 1, ptsCap)
		pts[0] = edges[start].end(ys)
		visited[start] = true

		cur := start
		next, ok := link[cur]
		assert.True(ok, "stitch: edge %d has no outgoing link", cur)
		for next != start {
			pts = append(pts, edges[next].start(ys), edges[next].end(ys))
			visited[next] = true
			cur = next
			next, ok = link[cur]
			assert.True(ok, "stitch: edge %d has no outgoing link", cur)
		}
		pts = append(pts, edges[start].start(ys))
		cycles = append(cycles, Cycle{Vertices: pts})
	}
	ctx.Progressf("stitch: %d edges -> %d cycles", n, len(cycles))
	return cycles
}
