package status

import (
	"sync"
	"testing"
)

func TestMetricMap_GetReturnsStablePointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	a := m.Get("x")
	a.Store(1.5)
	b := m.Get("x")

	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}
	if b.Load() != 1.5 {
		t.Errorf("Expected 1.5, got %f", b.Load())
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Has reports wrong membership")
	}
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(DropsTotal).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(DropsTotal).Load(); got != 1600 {
		t.Errorf("Expected 1600, got %d", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected a single metric, got %d", r.Ints.Count())
	}
}

func TestRegistry_LinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(TowerHeight).Store(3068)
	r.Ints.Get(CyclePeriod).Store(35)
	r.Bools.Get(CycleFound).Store(true)
	r.Floats.Get(GainPerDrop).Store(1.5)
	r.Strings.Get(SimulationMode).Store("literal")

	want := []string{
		"cycle.found=true",
		"cycle.period=35",
		"tower.height=3068",
		"tower.gain_per_drop=1.5000",
		"sim.mode=literal",
	}

	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if r.TotalCount() != 5 {
		t.Errorf("TotalCount = %d, want 5", r.TotalCount())
	}
}

func TestAtomicString_ZeroValue(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected empty string, got %q", s.Load())
	}
	s.Store("extrapolated")
	if s.Load() != "extrapolated" {
		t.Errorf("Expected stored value, got %q", s.Load())
	}
}

func TestMetricMap_RangeNameOrder(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{TowerHeight, CycleSkipped, DropsTotal, CycleGain, ChamberRows} {
		*m.Get(k) = len(k)
	}

	var keys []string
	m.Range(func(k string, v *int) {
		if *v != len(k) {
			t.Errorf("%s: value %d, want %d", k, *v, len(k))
		}
		keys = append(keys, k)
	})

	want := []string{ChamberRows, CycleGain, CycleSkipped, DropsTotal, TowerHeight}
	if len(keys) != len(want) {
		t.Fatalf("visited %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("position %d: %q, want %q", i, keys[i], want[i])
		}
	}
}
