package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Settle Sound
const (
	SettleSoundFrequency = 220.0
	SettleSoundDuration  = 40 * time.Millisecond
	SettleSoundAttack    = 2 * time.Millisecond
	SettleSoundRelease   = 30 * time.Millisecond
)

// Cycle Chime
const (
	CycleChimeFundamental = 880.0
	CycleChimeOvertone    = 1320.0
	CycleChimeDuration    = 400 * time.Millisecond
	CycleChimeAttack      = 5 * time.Millisecond
	CycleChimeRelease     = 300 * time.Millisecond
)
