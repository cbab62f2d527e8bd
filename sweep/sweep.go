package sweep

// Contour computes the union contour of rects (§1-§4). ctx may be nil, in
// which case logging and timing are simply disabled.
//
// maxVertsHint, if > 0, pre-sizes the vertex slice stitch allocates for
// each emitted cycle. It is a hint only: stitch still grows the slice as
// needed if the hint undershoots.
//
// Per §4.1's single early-out: if rects contains no non-empty rectangle,
// Contour returns ContourResult{} immediately, without building any
// events or segment tree.
func Contour(ctx *Context, rects []Rect, maxVertsHint int) ContourResult {
	ctx.startTimer(TimerTotal)
	defer ctx.stopTimer(TimerTotal)

	ctx.startTimer(TimerCompressCoords)
	ys, indexOf := buildYScale(rects)
	ctx.stopTimer(TimerCompressCoords)

	if ys.Len() == 0 {
		ctx.Progressf("contour: no non-empty rectangles, returning empty result")
		return ContourResult{}
	}

	ctx.startTimer(TimerBuildEvents)
	events := buildEvents(rects, indexOf)
	ctx.stopTimer(TimerBuildEvents)

	tree := newSegmentTree(ys.NumLeaves())
	edges := runSweep(ctx, tree, ys, events)
	cycles := stitch(ctx, edges, ys, maxVertsHint)

	return ContourResult{Cycles: cycles}
}
