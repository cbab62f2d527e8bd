package sweep

// edgeCrossing is a vertical contour edge's crossing type, carried over
// from the event that produced it.
type edgeCrossing = crossingType

// contourEdge is a vertical edge of the output contour: x is fixed, and
// the edge spans [YLoIdx, YHiIdx) in compressed y-index space (§3). Start
// and End give its two endpoints in traversal order per the orientation
// rule of §4.4.
type contourEdge struct {
	X              float64
	YLoIdx, YHiIdx int
	Crossing       edgeCrossing
}

// start returns the edge's first endpoint: an Entering edge is traversed
// upward (from YHi to YLo), an Exiting edge downward (from YLo to YHi).
func (e contourEdge) start(ys yScale) Point {
	if e.Crossing == entering {
		return Point{X: e.X, Y: ys.Values[e.YHiIdx]}
	}
	return Point{X: e.X, Y: ys.Values[e.YLoIdx]}
}

// end returns the edge's second endpoint; see start.
func (e contourEdge) end(ys yScale) Point {
	if e.Crossing == entering {
		return Point{X: e.X, Y: ys.Values[e.YLoIdx]}
	}
	return Point{X: e.X, Y: ys.Values[e.YHiIdx]}
}

// endpointBuffer accumulates the boundary spans the segment tree reports
// for a single event, coalescing adjacent ones (§4.3, "Adjacency
// coalescing of emitted spans"): consecutive reported spans [a,b) and
// [b,c) merge into a single [a,c) edge.
type endpointBuffer struct {
	endpoints []int
}

func (b *endpointBuffer) reset() {
	b.endpoints = b.endpoints[:0]
}

func (b *endpointBuffer) report(s span) {
	if n := len(b.endpoints); n > 0 && b.endpoints[n-1] == s.Lo {
		b.endpoints = b.endpoints[:n-1]
	} else {
		b.endpoints = append(b.endpoints, s.Lo)
	}
	b.endpoints = append(b.endpoints, s.Hi)
}

// pairs returns the coalesced (lo, hi) spans accumulated so far.
func (b *endpointBuffer) pairs() []span {
	n := len(b.endpoints)
	out := make([]span, 0, n/2)
	for i := 0; i+1 < n; i += 2 {
		out = append(out, span{Lo: b.endpoints[i], Hi: b.endpoints[i+1]})
	}
	return out
}

// runSweep processes events left to right against tree, appending one
// contourEdge per coalesced boundary span emitted at each event (§4.4).
func runSweep(ctx *Context, tree *segmentTree, ys yScale, events []event) []contourEdge {
	ctx.startTimer(TimerSweep)
	defer ctx.stopTimer(TimerSweep)

	var edges []contourEdge
	var buf endpointBuffer
	for _, ev := range events {
		buf.reset()
		s := span{Lo: ev.YLoIdx, Hi: ev.YHiIdx}
		switch ev.Type {
		case entering:
			tree.insert(s, buf.report)
		case exiting:
			tree.remove(s, buf.report)
		}
		for _, p := range buf.pairs() {
			edges = append(edges, contourEdge{
				X:        ev.X,
				YLoIdx:   p.Lo,
				YHiIdx:   p.Hi,
				Crossing: ev.Type,
			})
		}
	}
	ctx.Progressf("sweep: %d events -> %d contour edges", len(events), len(edges))
	return edges
}
