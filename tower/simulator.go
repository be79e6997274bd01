package tower

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/rockfall/status"
	"github.com/lixenwraith/rockfall/wind"
)

// Phase is the drop state reached by a single Step
type Phase uint8

const (
	PhaseSpawned Phase = iota
	PhaseShoved
	PhaseFell
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "spawned"
	case PhaseShoved:
		return "shoved"
	case PhaseFell:
		return "fell"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Simulator drives rocks through the chamber one phase at a time and skips
// whole periods once the cycle detector finds one.
// It is not safe for concurrent use; observers read the attached status.Registry.
type Simulator struct {
	cfg     Config
	chamber *Chamber
	jets    *wind.Cursor

	// Falling rock; valid while falling is set
	rock         Rock
	falling      bool
	shovePending bool
	last         Rock

	spawned int64 // literal spawns, drives the shape order
	drops   int64 // literal plus skipped drops
	offset  int64 // height contributed by skipped periods

	detector *CycleDetector
	pending  *Cycle // cycle reported by the latest settle, consumed by Run
	first    *Cycle // first cycle ever found, for observers

	metrics *simMetrics
}

// simMetrics caches registry pointers so the hot path never takes the map lock
type simMetrics struct {
	dropsTotal   *atomic.Int64
	dropsLiteral *atomic.Int64
	height       *atomic.Int64
	rows         *atomic.Int64
	cycleFound   *atomic.Bool
	cyclePeriod  *atomic.Int64
	cycleGain    *atomic.Int64
	cycleSkipped *atomic.Int64
	gainPerDrop  *status.AtomicFloat
	mode         *status.AtomicString
}

// NewSimulator creates a simulator over an empty chamber
func NewSimulator(pattern wind.Pattern, cfg Config) (*Simulator, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("tower: %w", wind.ErrEmptyPattern)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:     cfg,
		chamber: NewChamber(),
		jets:    wind.NewCursor(pattern),
	}
	if cfg.DetectCycles {
		s.detector = NewCycleDetector()
	}
	return s, nil
}

// Attach publishes counters to reg from now on
func (s *Simulator) Attach(reg *status.Registry) {
	s.metrics = &simMetrics{
		dropsTotal:   reg.Ints.Get(status.DropsTotal),
		dropsLiteral: reg.Ints.Get(status.DropsLiteral),
		height:       reg.Ints.Get(status.TowerHeight),
		rows:         reg.Ints.Get(status.ChamberRows),
		cycleFound:   reg.Bools.Get(status.CycleFound),
		cyclePeriod:  reg.Ints.Get(status.CyclePeriod),
		cycleGain:    reg.Ints.Get(status.CycleGain),
		cycleSkipped: reg.Ints.Get(status.CycleSkipped),
		gainPerDrop:  reg.Floats.Get(status.GainPerDrop),
		mode:         reg.Strings.Get(status.SimulationMode),
	}
	s.metrics.mode.Store("literal")
	if s.first != nil {
		s.publishCycle(*s.first)
	}
	s.publish()
}

// Step advances the current drop by one phase:
// spawn, then alternating shove and fall until the fall fails and the rock settles.
func (s *Simulator) Step() Phase {
	if !s.falling {
		s.spawn()
		return PhaseSpawned
	}

	if s.shovePending {
		s.rock = s.rock.Shove(s.jets.Next(), s.chamber)
		s.shovePending = false
		return PhaseShoved
	}

	if next, ok := s.rock.Fall(s.chamber); ok {
		s.rock = next
		s.shovePending = true
		return PhaseFell
	}

	s.settle()
	return PhaseSettled
}

// Drop completes the current rock, spawning one first if none is falling,
// and returns it as settled
func (s *Simulator) Drop() Rock {
	for s.Step() != PhaseSettled {
	}
	return s.last
}

// Run drops rocks until the drop count reaches target and returns the tower
// height. Detected cycles are skipped in whole periods.
func (s *Simulator) Run(target int64) (int64, error) {
	if target < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDrops, target)
	}

	for s.drops < target {
		s.Drop()
		if s.pending != nil {
			s.skip(*s.pending, target)
			s.pending = nil
		}
	}
	return s.Height(), nil
}

// Height returns the simulated tower height including skipped periods
func (s *Simulator) Height() int64 {
	return int64(s.chamber.Height()) + s.offset
}

// Drops returns the number of completed drops including skipped ones
func (s *Simulator) Drops() int64 { return s.drops }

// LiteralDrops returns the number of drops actually simulated
func (s *Simulator) LiteralDrops() int64 { return s.spawned - s.fallingCount() }

// Chamber exposes the settled rock for rendering; callers must not commit into it
func (s *Simulator) Chamber() *Chamber { return s.chamber }

// Falling returns the rock in flight, if any
func (s *Simulator) Falling() (Rock, bool) { return s.rock, s.falling }

// NextShape returns the shape the next spawn will use
func (s *Simulator) NextShape() Shape { return ShapeAt(s.spawned) }

// WindPhase returns the index of the next wind pulse
func (s *Simulator) WindPhase() int { return s.jets.Phase() }

// FirstCycle returns the first cycle found, if any
func (s *Simulator) FirstCycle() (Cycle, bool) {
	if s.first == nil {
		return Cycle{}, false
	}
	return *s.first, true
}

// Fingerprint returns the cycle key of the current state
func (s *Simulator) Fingerprint() Fingerprint {
	return Fingerprint{
		Shape:   s.NextShape(),
		Wind:    s.jets.Phase(),
		Surface: s.chamber.Surface(s.cfg.SkylineDepth),
	}
}

func (s *Simulator) fallingCount() int64 {
	if s.falling {
		return 1
	}
	return 0
}

func (s *Simulator) spawn() {
	rock := Spawn(s.NextShape(), s.chamber.Height())
	if !s.chamber.Fits(rock) {
		panic(fmt.Sprintf("tower: %s spawned into settled rock at col=%d row=%d", rock.Shape, rock.Col, rock.Row))
	}
	s.rock = rock
	s.falling = true
	s.shovePending = true
	s.spawned++
}

func (s *Simulator) settle() {
	s.chamber.Commit(s.rock)
	s.last = s.rock
	s.falling = false
	s.drops++
	s.pending = nil

	if s.detector != nil {
		if cycle, ok := s.detector.Observe(s.Fingerprint(), s.drops, s.Height()); ok {
			s.pending = &cycle
			if s.first == nil {
				s.first = &cycle
				log.Printf("tower: cycle confirmed at drop %d: period=%d gain=%d (previous match at drop %d)",
					s.drops, cycle.Period, cycle.Gain, cycle.Start.Drops)
				s.publishCycle(cycle)
			}
		}
	}

	s.publish()
}

// skip jumps over every whole period that still fits before target
func (s *Simulator) skip(c Cycle, target int64) {
	repeats := c.Repeats(s.drops, target)
	if repeats == 0 {
		return
	}

	s.drops += repeats * c.Period
	s.offset += repeats * c.Gain
	s.detector.Reset()

	log.Printf("tower: skipped %d periods (%d drops, %d rows), %d drops left",
		repeats, repeats*c.Period, repeats*c.Gain, target-s.drops)

	if s.metrics != nil {
		s.metrics.cycleSkipped.Add(repeats * c.Period)
		s.metrics.mode.Store("extrapolated")
	}
	s.publish()
}

func (s *Simulator) publish() {
	if s.metrics == nil {
		return
	}
	s.metrics.dropsTotal.Store(s.drops)
	s.metrics.dropsLiteral.Store(s.LiteralDrops())
	s.metrics.height.Store(s.Height())
	s.metrics.rows.Store(int64(s.chamber.Height()))
}

func (s *Simulator) publishCycle(c Cycle) {
	if s.metrics == nil {
		return
	}
	s.metrics.cycleFound.Store(true)
	s.metrics.cyclePeriod.Store(c.Period)
	s.metrics.cycleGain.Store(c.Gain)
	s.metrics.gainPerDrop.Store(float64(c.Gain) / float64(c.Period))
}
