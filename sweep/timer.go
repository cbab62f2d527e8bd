package sweep

// TimerLabel identifies one of the sweep pipeline's timed stages.
//
// @see Context
type TimerLabel int

const (
	// TimerTotal is the total time of a single Contour call.
	TimerTotal TimerLabel = iota
	// TimerCompressCoords is the time spent building the YScale (§4.1).
	TimerCompressCoords
	// TimerBuildEvents is the time spent building and sorting events (§4.2).
	TimerBuildEvents
	// TimerSweep is the time spent driving the segment tree across all
	// events (§4.3, §4.4).
	TimerSweep
	// TimerStitch is the time spent stitching contour edges into cycles
	// (§4.5).
	TimerStitch

	numTimers
)
