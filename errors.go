package isocontour

import "errors"

// ErrNoRectangles is reported by the CLI's build command when an input file
// names no rectangles at all. It is not returned by Build, which treats an
// empty input as a total, valid case yielding Contour{} (§7) — it only
// applies at the file-parsing boundary, where an empty file is more likely
// a mistake than an intentional empty contour.
var ErrNoRectangles = errors.New("isocontour: no rectangles in input")
