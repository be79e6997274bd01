package tower

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/rockfall/parameter"
)

var (
	ErrNegativeDrops = errors.New("tower: negative drop count")
	ErrSkylineDepth  = errors.New("tower: skyline depth out of range")
)

// Config tunes the simulator
type Config struct {
	// SkylineDepth caps the rows of reachable surface in each fingerprint.
	// Below the cap the fingerprint is exact; a surface cut at the cap relies on
	// the detector's confirmation pass.
	SkylineDepth int

	// DetectCycles enables period detection and extrapolation
	DetectCycles bool
}

// DefaultConfig returns the standard configuration
func DefaultConfig() Config {
	return Config{
		SkylineDepth: parameter.DefaultSkylineDepth,
		DetectCycles: true,
	}
}

// LoadConfig returns DefaultConfig with environment overrides applied.
// Unparseable values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if depth := os.Getenv(parameter.EnvSkylineDepth); depth != "" {
		if val, err := strconv.Atoi(depth); err == nil {
			cfg.SkylineDepth = val
		}
	}

	if detect := os.Getenv(parameter.EnvDetectCycles); detect != "" {
		if val, err := strconv.ParseBool(detect); err == nil {
			cfg.DetectCycles = val
		}
	}

	return cfg
}

// Validate checks the configuration bounds
func (c Config) Validate() error {
	if c.SkylineDepth < 1 || c.SkylineDepth > parameter.MaxSkylineDepth {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrSkylineDepth, c.SkylineDepth, parameter.MaxSkylineDepth)
	}
	return nil
}
