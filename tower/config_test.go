package tower

import (
	"testing"

	"github.com/lixenwraith/rockfall/parameter"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(parameter.EnvSkylineDepth, "")
	t.Setenv(parameter.EnvDetectCycles, "")

	cfg := LoadConfig()
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(parameter.EnvSkylineDepth, "24")
	t.Setenv(parameter.EnvDetectCycles, "false")

	cfg := LoadConfig()
	if cfg.SkylineDepth != 24 {
		t.Errorf("SkylineDepth = %d, want 24", cfg.SkylineDepth)
	}
	if cfg.DetectCycles {
		t.Error("DetectCycles should be disabled")
	}
}

func TestLoadConfig_InvalidIgnored(t *testing.T) {
	t.Setenv(parameter.EnvSkylineDepth, "deep")
	t.Setenv(parameter.EnvDetectCycles, "maybe")

	if cfg := LoadConfig(); cfg != DefaultConfig() {
		t.Errorf("Invalid values should be ignored, got %+v", cfg)
	}
}
