package parameter

import "time"

// Viewer timing
const (
	// ViewerFrameInterval is the redraw rate (~60 FPS)
	ViewerFrameInterval = 16 * time.Millisecond

	// ViewerStepInterval is the default delay between simulation phases
	ViewerStepInterval = 40 * time.Millisecond

	ViewerStepIntervalMin = 1 * time.Millisecond
	ViewerStepIntervalMax = 1 * time.Second

	// ViewerMaxStepsPerFrame caps catch-up after a stall
	ViewerMaxStepsPerFrame = 64
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "rockfall.log"
)
