// Package sweep implements the plane-sweep union-contour algorithm of
// Lipski & Preparata (1979), "Finding the Contour of a Union of
// Iso-Oriented Rectangles".
//
// The general life-cycle of a single Contour call is:
//
//   - compress the y-coordinates of the non-empty input rectangles (yscale.go)
//   - build and sort the entering/exiting sweep events (event.go)
//   - sweep the events left to right, driving a segment tree over the
//     compressed y-axis that reports exposed boundary spans as it is
//     mutated (segmenttree.go, driver.go)
//   - stitch the emitted vertical edges, plus their implicit horizontal
//     connectors, into closed cycles (stitch.go)
//
// None of the scratch state built along the way (the YScale, the event
// list, the segment tree, the edge and vertex lists) survives past the
// call that built it; only the resulting Cycle slice is returned.
package sweep
