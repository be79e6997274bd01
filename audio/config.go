package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/parameter"
)

// Config controls the viewer's sound cues
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// DefaultConfig returns the standard audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      parameter.AudioDefaultEnabled,
		MasterVolume: parameter.AudioDefaultMasterVolume,
		SampleRate:   constant.AudioSampleRate,
	}
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(parameter.EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv(parameter.EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv(parameter.EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
