package tower

import "github.com/lixenwraith/rockfall/wind"

// Simulate returns the tower height after drops rocks under the default configuration
func Simulate(pattern wind.Pattern, drops int64) (int64, error) {
	return SimulateWith(pattern, drops, DefaultConfig())
}

// SimulateLiteral drops every rock without cycle detection
func SimulateLiteral(pattern wind.Pattern, drops int64) (int64, error) {
	cfg := DefaultConfig()
	cfg.DetectCycles = false
	return SimulateWith(pattern, drops, cfg)
}

// SimulateWith runs a fresh simulator with cfg
func SimulateWith(pattern wind.Pattern, drops int64, cfg Config) (int64, error) {
	sim, err := NewSimulator(pattern, cfg)
	if err != nil {
		return 0, err
	}
	return sim.Run(drops)
}
