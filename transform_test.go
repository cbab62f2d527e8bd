package isocontour

import "testing"

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
		p    Point
		want Point
	}{
		{"identity", Identity, Point{X: 3, Y: -4}, Point{X: 3, Y: -4}},
		{"translate", Translate(2, -5), Point{X: 1, Y: 1}, Point{X: 3, Y: -4}},
		{"scale", Scale(2, 3), Point{X: 1, Y: 1}, Point{X: 2, Y: 3}},
		{"reflect x", ReflectX(), Point{X: 1, Y: 1}, Point{X: 1, Y: -1}},
		{"reflect y", ReflectY(), Point{X: 1, Y: 1}, Point{X: -1, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.t.Apply(tt.p)
			if got != tt.want {
				t.Errorf("%s.Apply(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
			}
		})
	}
}

func TestTransformThenComposes(t *testing.T) {
	a := Translate(1, 2)
	b := Scale(3, 4)
	composed := a.Then(b)

	p := Point{X: 5, Y: 6}
	got := composed.Apply(p)
	want := b.Apply(a.Apply(p))
	if got != want {
		t.Errorf("composed.Apply(%v) = %v, want %v", p, got, want)
	}
}

func TestTransformApplyRectCanonicalizes(t *testing.T) {
	r := Rect{XLo: 1, YLo: 2, XHi: 4, YHi: 6}
	got := ReflectX().ApplyRect(r)
	want := NewRect(1, -2, 4, -6)
	if got != want {
		t.Errorf("ReflectX().ApplyRect(%v) = %v, want %v", r, got, want)
	}
}
