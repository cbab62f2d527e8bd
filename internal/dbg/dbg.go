// Command dbg is a manual debug harness: it builds a contour from a small
// hardcoded rectangle set and dumps the resulting cycles, for use while
// developing the sweep package without wiring up the full CLI.
package main

import (
	"fmt"
	"log"

	"github.com/arl/isocontour"
)

func main() {
	rects := []isocontour.Rect{
		isocontour.NewRect(0, 0, 10, 3),
		isocontour.NewRect(0, 7, 10, 10),
		isocontour.NewRect(0, 3, 3, 7),
		isocontour.NewRect(7, 3, 10, 7),
	}

	cfg := isocontour.Config{EnableLog: true, NormalizeOutput: true}
	contour := isocontour.Build(rects, &cfg)

	fmt.Printf("built %d cycle(s), area %g\n", len(contour.Cycles), contour.Area())
	for i, c := range contour.Cycles {
		log.Printf("cycle %d: %v", i, c.Vertices)
	}
}
