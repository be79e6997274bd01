// Package wind models the cyclic jet pattern that shoves falling rock sideways.
package wind

// Pulse is a single lateral shove, expressed as the column delta it applies
type Pulse int8

const (
	Left  Pulse = -1
	Right Pulse = 1
)

// Rune returns the input character for the pulse
func (p Pulse) Rune() rune {
	if p == Left {
		return '<'
	}
	return '>'
}

func (p Pulse) String() string {
	switch p {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Invalid"
	}
}

// Pattern is a finite pulse list consumed cyclically
type Pattern []Pulse

// String renders the pattern back into its `<`/`>` form
func (p Pattern) String() string {
	buf := make([]rune, len(p))
	for i, pulse := range p {
		buf[i] = pulse.Rune()
	}
	return string(buf)
}

// Repeat returns the pattern concatenated n times.
// The pulse stream is unchanged; only the phase space used for fingerprints grows.
func (p Pattern) Repeat(n int) Pattern {
	out := make(Pattern, 0, len(p)*n)
	for range n {
		out = append(out, p...)
	}
	return out
}
