package isocontour

import "github.com/arl/gogeo/f32"

// Rect is an axis-aligned (iso-oriented) rectangle, given by its low and
// high corners. A well-formed Rect has XLo <= XHi and YLo <= YHi.
type Rect struct {
	XLo, YLo, XHi, YHi float64
}

// NewRect returns the Rect with corners (x0,y0) and (x1,y1), canonicalized
// so that XLo <= XHi and YLo <= YHi.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{XLo: x0, YLo: y0, XHi: x1, YHi: y1}
}

// Dx returns r's width.
func (r Rect) Dx() float64 { return r.XHi - r.XLo }

// Dy returns r's height.
func (r Rect) Dy() float64 { return r.YHi - r.YLo }

// Empty reports whether r has zero width or zero height. Per §4.1, empty
// rectangles are filtered out before coordinate compression and never
// contribute to the contour.
func (r Rect) Empty() bool {
	return r.XLo >= r.XHi || r.YLo >= r.YHi
}

// boundsf32 grows the running bounding box (lo, hi) to also cover r, after
// converting r's corners to float32. Used by Contour.Bounds to accumulate a
// bounding box over a cycle's vertices without pulling in a second bounds
// type.
func boundsf32(r Rect, lo, hi *[2]float32) {
	x0, y0, x1, y1 := float32(r.XLo), float32(r.YLo), float32(r.XHi), float32(r.YHi)
	f32.SetMin(&lo[0], x0)
	f32.SetMin(&lo[1], y0)
	f32.SetMax(&hi[0], x1)
	f32.SetMax(&hi[1], y1)
}
