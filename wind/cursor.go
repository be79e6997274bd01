package wind

// Cursor walks a Pattern forever.
// Position increases monotonically; Phase is the index of the next pulse.
type Cursor struct {
	pattern  Pattern
	position int64
}

// NewCursor creates a cursor at the start of the pattern.
// The pattern must be non-empty.
func NewCursor(p Pattern) *Cursor {
	if len(p) == 0 {
		panic("wind: cursor over empty pattern")
	}
	return &Cursor{pattern: p}
}

// Next consumes and returns one pulse
func (c *Cursor) Next() Pulse {
	p := c.pattern[c.Phase()]
	c.position++
	return p
}

// Peek returns the next pulse without consuming it
func (c *Cursor) Peek() Pulse {
	return c.pattern[c.Phase()]
}

// Phase returns position mod pattern length
func (c *Cursor) Phase() int {
	return int(c.position % int64(len(c.pattern)))
}

// Position returns the total number of pulses consumed
func (c *Cursor) Position() int64 {
	return c.position
}

// Len returns the pattern length
func (c *Cursor) Len() int {
	return len(c.pattern)
}
