package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/rockfall/constant"
)

// drain streams s to completion and returns all samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

// TestEnvelope_LengthAndBounds verifies the envelope ends on time and stays in range
func TestEnvelope_LengthAndBounds(t *testing.T) {
	rate := beep.SampleRate(44100)
	sine, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatalf("SineTone: %v", err)
	}

	duration := 50 * time.Millisecond
	env := NewEnvelope(sine, duration, 5*time.Millisecond, 20*time.Millisecond, rate)
	samples := drain(t, env)

	if len(samples) != rate.N(duration) {
		t.Errorf("Expected %d samples, got %d", rate.N(duration), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1.0 || s[0] > 1.0 {
			t.Fatalf("Sample %d out of range: %f", i, s[0])
		}
	}
	if samples[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", samples[0][0])
	}
	if env.Err() != nil {
		t.Errorf("Expected no error, got: %v", env.Err())
	}
}

// TestCreateSettleSound verifies the settle knock is short and audible
func TestCreateSettleSound(t *testing.T) {
	cfg := DefaultConfig()
	s, err := CreateSettleSound(cfg)
	if err != nil {
		t.Fatalf("CreateSettleSound: %v", err)
	}

	samples := drain(t, s)
	if want := beep.SampleRate(cfg.SampleRate).N(constant.SettleSoundDuration); len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}

	peak := 0.0
	for _, v := range samples {
		peak = max(peak, v[0], -v[0])
	}
	if peak == 0 {
		t.Error("Settle sound is silent")
	}
}

// TestCreateCycleSound_Muted verifies zero volume yields silence
func TestCreateCycleSound_Muted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	s, err := CreateCycleSound(cfg)
	if err != nil {
		t.Fatalf("CreateCycleSound: %v", err)
	}
	for i, v := range drain(t, s) {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("Sample %d not silent: %v", i, v)
		}
	}
}

// TestCreateCycleSound_InvalidRate verifies tone errors surface
func TestCreateCycleSound_InvalidRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 1000 // below Nyquist for the chime partials

	if _, err := CreateCycleSound(cfg); err == nil {
		t.Error("Expected error for a sample rate too low for the chime")
	}
}

// TestSoundManager_DisabledIsSilent verifies a disabled manager never opens the device
func TestSoundManager_DisabledIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if sm.Active() {
		t.Error("Disabled manager should not be active")
	}

	sm.Play(SoundSettle)
	sm.Play(SoundCycle)
	sm.Cleanup()
}
