package isocontour

// Config carries the optional, named knobs for a contour Build call: a
// small struct of build-time settings rather than positional parameters
// threaded through the call.
type Config struct {
	// MaxVertsHint pre-sizes the cycle vertex slices the sweep allocates,
	// as a hint only; it is never validated against the actual output.
	MaxVertsHint int

	// EnableLog turns on progress/warning logging on the build context
	// passed down to the sweep package.
	EnableLog bool

	// EnableTimers turns on per-stage timing on the build context.
	EnableTimers bool

	// NormalizeOutput, if true, calls Contour.Normalize before Build
	// returns, so callers get a deterministic cycle order without an
	// extra call. Off by default: normalization is O(v log v) extra work
	// most callers don't need.
	NormalizeOutput bool
}

// DefaultConfig returns the Config used when Build is called with cfg ==
// nil: no logging, no timers, no output normalization.
func DefaultConfig() Config {
	return Config{}
}
