package parameter

// Audio defaults
const (
	AudioDefaultEnabled      = true
	AudioDefaultMasterVolume = 0.5
)

// Environment overrides
const (
	EnvAudioEnabled = "ROCKFALL_AUDIO_ENABLED"
	EnvMasterVolume = "ROCKFALL_MASTER_VOLUME"
	EnvSampleRate   = "ROCKFALL_SAMPLE_RATE"
)
