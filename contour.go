package isocontour

import (
	"math"

	"github.com/arl/isocontour/sweep"
)

// Contour is the polygonal union contour of a finite collection of
// iso-oriented rectangles: a set of simple, mutually non-intersecting
// cycles whose union of interiors equals the union of the input
// rectangles' interiors (§1).
type Contour struct {
	Cycles []Cycle
}

// Build computes the union contour of rects. It never signals a domain
// error: an empty input, or an input containing only empty rectangles,
// yields Contour{} (§7).
//
// cfg may be nil, in which case DefaultConfig() is used.
func Build(rects []Rect, cfg *Config) Contour {
	if cfg == nil {
		d := DefaultConfig()
		cfg = &d
	}
	ctx := sweep.NewContext(false)
	ctx.EnableLog(cfg.EnableLog)
	ctx.EnableTimers(cfg.EnableTimers)
	sr := make([]sweep.Rect, len(rects))
	for i, r := range rects {
		sr[i] = sweep.Rect{XLo: r.XLo, YLo: r.YLo, XHi: r.XHi, YHi: r.YHi}
	}
	sc := sweep.Contour(ctx, sr, cfg.MaxVertsHint)

	out := Contour{Cycles: make([]Cycle, len(sc.Cycles))}
	for i, cyc := range sc.Cycles {
		verts := make([]Point, len(cyc.Vertices))
		for j, v := range cyc.Vertices {
			verts[j] = Point{X: v.X, Y: v.Y}
		}
		out.Cycles[i] = Cycle{Vertices: verts}
	}
	if cfg.NormalizeOutput {
		out.Normalize()
	}
	return out
}

// Normalize normalizes c in place: each cycle is normalized (see
// Cycle.Normalize), then the cycle set is sorted lexicographically by
// vertex sequence, breaking ties by length (§4.6).
func (c *Contour) Normalize() {
	for i := range c.Cycles {
		c.Cycles[i].Normalize()
	}
	sortCycles(c.Cycles)
}

// Normalized returns a copy of c with Normalize applied.
func (c Contour) Normalized() Contour {
	out := Contour{Cycles: append([]Cycle(nil), c.Cycles...)}
	out.Normalize()
	return out
}

// Applying returns a copy of c with t applied to every vertex of every
// cycle.
func (c Contour) Applying(t Transform) Contour {
	out := Contour{Cycles: make([]Cycle, len(c.Cycles))}
	for i, cyc := range c.Cycles {
		out.Cycles[i] = cyc.Applying(t)
	}
	return out
}

// Area returns the signed area of the contour: the sum of each cycle's
// shoelace area, which is positive for CCW (outer) cycles and negative for
// CW (hole) cycles, so that the total equals the union area of the input
// rectangles (§8, "Area conservation").
func (c Contour) Area() float64 {
	var total float64
	for _, cyc := range c.Cycles {
		total += shoelaceArea(cyc.Vertices)
	}
	return total
}

// Bounds returns the axis-aligned bounding box of every vertex in c. It
// returns the zero Rect if c has no cycles.
func (c Contour) Bounds() Rect {
	if len(c.Cycles) == 0 {
		return Rect{}
	}
	lo := [2]float32{float32(math.Inf(1)), float32(math.Inf(1))}
	hi := [2]float32{float32(math.Inf(-1)), float32(math.Inf(-1))}
	for _, cyc := range c.Cycles {
		for _, v := range cyc.Vertices {
			boundsf32(Rect{XLo: v.X, YLo: v.Y, XHi: v.X, YHi: v.Y}, &lo, &hi)
		}
	}
	return Rect{XLo: float64(lo[0]), YLo: float64(lo[1]), XHi: float64(hi[0]), YHi: float64(hi[1])}
}

func shoelaceArea(verts []Point) float64 {
	n := len(verts)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return sum / 2
}
