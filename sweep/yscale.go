package sweep

import "sort"

// yScale is the sorted, strictly-increasing sequence of distinct
// y-coordinates contributed by the non-empty input rectangles (§4.1). It
// provides both the index-to-value map (Values) used when turning a
// compressed span back into real-world y-coordinates, and a transient
// value-to-index map used only while events are being built.
type yScale struct {
	Values []float64
}

// buildYScale collects the distinct y coordinates of the non-empty
// rectangles in rects, sorts them, and returns the resulting yScale along
// with a value->index lookup.
//
// Per §4.1's result contract: if rects contains no non-empty rectangle,
// the returned yScale is empty (len(Values) == 0); otherwise
// len(Values) >= 2, since every non-empty rectangle contributes two
// distinct y values.
func buildYScale(rects []Rect) (ys yScale, indexOf map[float64]int) {
	seen := make(map[float64]struct{})
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		seen[r.YLo] = struct{}{}
		seen[r.YHi] = struct{}{}
	}
	if len(seen) == 0 {
		return yScale{}, nil
	}

	values := make([]float64, 0, len(seen))
	for y := range seen {
		values = append(values, y)
	}
	sort.Float64s(values)

	indexOf = make(map[float64]int, len(values))
	for i, y := range values {
		indexOf[y] = i
	}
	return yScale{Values: values}, indexOf
}

// Len returns the number of distinct y-values, i.e. |YScale| in §3.
func (ys yScale) Len() int { return len(ys.Values) }

// NumLeaves returns the number of unit leaf-segments the segment tree is
// built over: n = |ys| - 1 (§4.3). Zero when ys has fewer than two values.
func (ys yScale) NumLeaves() int {
	if len(ys.Values) < 2 {
		return 0
	}
	return len(ys.Values) - 1
}
