package sweep

import "sort"

// crossingType tags a sweep event as opening or closing a rectangle's
// y-interval. Entering sorts before Exiting at equal x (§4.2): this is
// what fuses edge-to-edge-touching rectangles instead of splitting them.
type crossingType uint8

const (
	entering crossingType = iota
	exiting
)

// event is a single sweep event: at x, the y-index interval [YLoIdx,
// YHiIdx) becomes active (Entering) or inactive (Exiting).
type event struct {
	X      float64
	Type   crossingType
	YLoIdx int
	YHiIdx int
}

// buildEvents produces the two sweep events for every non-empty rectangle
// in rects (§4.2) and returns them sorted lexicographically on
// (X, Type, YLoIdx, YHiIdx).
func buildEvents(rects []Rect, indexOf map[float64]int) []event {
	events := make([]event, 0, 2*len(rects))
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		lo, hi := indexOf[r.YLo], indexOf[r.YHi]
		events = append(events,
			event{X: r.XLo, Type: entering, YLoIdx: lo, YHiIdx: hi},
			event{X: r.XHi, Type: exiting, YLoIdx: lo, YHiIdx: hi},
		)
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.YLoIdx != b.YLoIdx {
			return a.YLoIdx < b.YLoIdx
		}
		return a.YHiIdx < b.YHiIdx
	})
	return events
}
