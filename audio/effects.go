package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/rockfall/constant"
)

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s and ends it after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns an enveloped sine at freq
func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0fHz: %w", freq, err)
	}
	return NewEnvelope(sine, duration, attack, release, rate), nil
}

// CreateSettleSound generates a short low knock for a rock coming to rest
func CreateSettleSound(cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	knock, err := tone(constant.SettleSoundFrequency, constant.SettleSoundDuration,
		constant.SettleSoundAttack, constant.SettleSoundRelease, rate)
	if err != nil {
		return nil, err
	}
	return newVolume(knock, cfg.MasterVolume), nil
}

// CreateCycleSound generates a two-partial chime for a detected cycle
func CreateCycleSound(cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	fund, err := tone(constant.CycleChimeFundamental, constant.CycleChimeDuration,
		constant.CycleChimeAttack, constant.CycleChimeRelease, rate)
	if err != nil {
		return nil, err
	}
	over, err := tone(constant.CycleChimeOvertone, constant.CycleChimeDuration,
		constant.CycleChimeAttack, constant.CycleChimeRelease/2, rate)
	if err != nil {
		return nil, err
	}

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return beep.Take(rate.N(constant.CycleChimeDuration), newVolume(mixed, cfg.MasterVolume)), nil
}
