package tower

// Fingerprint keys the cycle detector: the next shape, the next wind pulse
// and the reachable surface below the top (see Chamber.Surface).
type Fingerprint struct {
	Shape   Shape
	Wind    int
	Surface Skyline
}

// Sighting is the simulation state recorded under a fingerprint
type Sighting struct {
	Drops  int64
	Height int64
}

// Cycle is a detected repetition: after Start, every Period drops add Gain rows
type Cycle struct {
	Start  Sighting
	Period int64
	Gain   int64
}

// Repeats returns how many whole periods fit between drops and target
func (c Cycle) Repeats(drops, target int64) int64 {
	if c.Period <= 0 || target <= drops {
		return 0
	}
	return (target - drops) / c.Period
}

// record is the latest sighting of a fingerprint and the spacing from the one before
type record struct {
	Sighting
	period int64
	gain   int64
}

// CycleDetector remembers every fingerprint seen since the last reset.
// A cycle is reported only once a fingerprint recurs twice with the same
// period and gain, so a surface cut at its depth limit needs a second match.
type CycleDetector struct {
	seen map[Fingerprint]record
}

// NewCycleDetector creates an empty detector
func NewCycleDetector() *CycleDetector {
	return &CycleDetector{seen: make(map[Fingerprint]record, 4096)}
}

// Observe records the state after a drop. The returned cycle starts at the
// previous sighting of fp and is reported only when the spacing to it
// matches the spacing between the two sightings before.
func (d *CycleDetector) Observe(fp Fingerprint, drops, height int64) (Cycle, bool) {
	now := record{Sighting: Sighting{Drops: drops, Height: height}}

	prev, ok := d.seen[fp]
	if ok {
		now.period = drops - prev.Drops
		now.gain = height - prev.Height
		if prev.period == now.period && prev.gain == now.gain {
			return Cycle{Start: prev.Sighting, Period: now.period, Gain: now.gain}, true
		}
	}

	d.seen[fp] = now
	return Cycle{}, false
}

// Reset forgets every sighting
func (d *CycleDetector) Reset() {
	clear(d.seen)
}

// Len returns the number of remembered fingerprints
func (d *CycleDetector) Len() int {
	return len(d.seen)
}
