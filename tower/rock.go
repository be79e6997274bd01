package tower

import (
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/wind"
)

// Rock is a falling shape anchored at the bottom-left corner of its bounding box
type Rock struct {
	Shape Shape
	Col   int
	Row   int
}

// Spawn places a new rock two columns from the left wall with three empty rows below it
func Spawn(shape Shape, chamberHeight int) Rock {
	return Rock{
		Shape: shape,
		Col:   constant.SpawnLeftGap,
		Row:   chamberHeight + constant.SpawnClearance,
	}
}

// Cells returns the absolute cells the rock occupies
func (r Rock) Cells() []Cell {
	cells := r.Shape.Cells()
	for i := range cells {
		cells[i].Col += r.Col
		cells[i].Row += r.Row
	}
	return cells
}

// Top returns one past the rock's highest row
func (r Rock) Top() int {
	return r.Row + r.Shape.Height()
}

// Shove moves the rock one column with the pulse.
// A blocked shove leaves the rock where it was.
func (r Rock) Shove(p wind.Pulse, c *Chamber) Rock {
	moved := r
	moved.Col += int(p)
	if !c.Fits(moved) {
		return r
	}
	return moved
}

// Fall moves the rock one row down, reporting false once it has come to rest
func (r Rock) Fall(c *Chamber) (Rock, bool) {
	moved := r
	moved.Row--
	if !c.Fits(moved) {
		return r, false
	}
	return moved, true
}
