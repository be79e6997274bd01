package parameter

// Cycle detection
const (
	// DefaultSkylineDepth limits how many rows of reachable surface a
	// fingerprint captures. Rocks rarely settle more than a few dozen rows
	// below the top; only open shafts run deeper.
	DefaultSkylineDepth = 128

	MaxSkylineDepth = 4096
)

// Environment overrides
const (
	EnvSkylineDepth = "ROCKFALL_SKYLINE_DEPTH"
	EnvDetectCycles = "ROCKFALL_DETECT_CYCLES"
)
