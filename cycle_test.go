package isocontour

import "testing"

func TestCycleNormalizeRotatesOnly(t *testing.T) {
	c := Cycle{Vertices: []Point{{X: 4, Y: 6}, {X: 1, Y: 6}, {X: 1, Y: 2}, {X: 4, Y: 2}}}
	c.Normalize()
	want := []Point{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6}}
	if len(c.Vertices) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(c.Vertices), len(want))
	}
	for i := range want {
		if c.Vertices[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, c.Vertices[i], want[i])
		}
	}
}

func TestCycleNormalizeEmpty(t *testing.T) {
	c := Cycle{}
	c.Normalize() // must not panic
	if len(c.Vertices) != 0 {
		t.Errorf("got %d vertices, want 0", len(c.Vertices))
	}
}

func TestCycleApplyingLeavesOriginalUntouched(t *testing.T) {
	c := Cycle{Vertices: []Point{{X: 1, Y: 1}, {X: 2, Y: 1}}}
	shifted := c.Applying(Translate(10, 10))

	if c.Vertices[0] != (Point{X: 1, Y: 1}) {
		t.Errorf("original cycle mutated: %v", c.Vertices[0])
	}
	want := Point{X: 11, Y: 11}
	if shifted.Vertices[0] != want {
		t.Errorf("shifted.Vertices[0] = %v, want %v", shifted.Vertices[0], want)
	}
}
