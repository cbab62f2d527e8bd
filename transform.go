package isocontour

// Transform is an affine transform of the plane, stored as the 2x3 matrix
//
//	[a b tx]
//	[c d ty]
//
// applied to a point (x, y) as (a*x + b*y + tx, c*x + d*y + ty).
//
// Transform exists to make Cycle.Applying and Contour.Applying (§6) usable
// without reaching for a general-purpose geometry package: rendering,
// path synthesis and richer geometry transforms remain out of scope per §1,
// but translation, scaling and axis reflection are enough to exercise the
// translation-invariance and integer-scaling fuzz properties in §8.
type Transform struct {
	A, B, C, D, Tx, Ty float64
}

// Identity is the Transform that maps every point to itself.
var Identity = Transform{A: 1, D: 1}

// Translate returns the Transform that translates by (dx, dy).
func Translate(dx, dy float64) Transform {
	return Transform{A: 1, D: 1, Tx: dx, Ty: dy}
}

// Scale returns the Transform that scales x by sx and y by sy about the
// origin.
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// ReflectX returns the Transform that mirrors points across the x-axis.
func ReflectX() Transform {
	return Transform{A: 1, D: -1}
}

// ReflectY returns the Transform that mirrors points across the y-axis.
func ReflectY() Transform {
	return Transform{A: -1, D: 1}
}

// Then composes t followed by u: Then(u).Apply(p) == u.Apply(t.Apply(p)).
func (t Transform) Then(u Transform) Transform {
	return Transform{
		A:  u.A*t.A + u.B*t.C,
		B:  u.A*t.B + u.B*t.D,
		C:  u.C*t.A + u.D*t.C,
		D:  u.C*t.B + u.D*t.D,
		Tx: u.A*t.Tx + u.B*t.Ty + u.Tx,
		Ty: u.C*t.Tx + u.D*t.Ty + u.Ty,
	}
}

// Apply applies t to p.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.Tx,
		Y: t.C*p.X + t.D*p.Y + t.Ty,
	}
}

// ApplyRect applies t to r's corners and returns the canonicalized result.
// Only meaningful for iso-oriented transforms (axis-aligned scale/reflect/
// translate, no rotation), which is the only kind the constructors in this
// file produce; a Transform with non-zero B or C is not handled.
func (t Transform) ApplyRect(r Rect) Rect {
	p0 := t.Apply(Point{X: r.XLo, Y: r.YLo})
	p1 := t.Apply(Point{X: r.XHi, Y: r.YHi})
	return NewRect(p0.X, p0.Y, p1.X, p1.Y)
}
