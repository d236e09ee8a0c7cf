package constants

import "time"

// Game Loop Timing
const (
	// FixedUpdateInterval is the default fixed-update period (30Hz)
	FixedUpdateInterval = time.Second / 30

	// FrameInterval is the minimum wall time budget of one loop tick
	// Keeps the cooperative loop from spinning a core; zero disables pacing
	FrameInterval = time.Millisecond
)
