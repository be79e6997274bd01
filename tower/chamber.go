package tower

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/rockfall/constant"
)

// Skyline is a run of row masks read from the top of a chamber downward,
// one byte per row. It is comparable and usable as a map key at any depth.
type Skyline string

// surfaceCut ends a Surface that reached its depth limit with open air still below
const surfaceCut uint8 = 1 << constant.ChamberWidth

// Chamber stores settled rock as one packed mask per row, floor at index 0.
// Rows are created when rock first reaches them and are never removed.
type Chamber struct {
	rows []uint8
}

// NewChamber returns an empty chamber
func NewChamber() *Chamber {
	return &Chamber{rows: make([]uint8, 0, 1024)}
}

// Height returns the number of rows created so far
func (c *Chamber) Height() int {
	return len(c.rows)
}

// Row returns the mask of row r; rows outside the chamber read as open air
func (c *Chamber) Row(r int) uint8 {
	if r < 0 || r >= len(c.rows) {
		return 0
	}
	return c.rows[r]
}

// Occupied reports whether settled rock fills (col, row)
func (c *Chamber) Occupied(col, row int) bool {
	if col < 0 || col >= constant.ChamberWidth {
		return false
	}
	return c.Row(row)&(1<<col) != 0
}

// Fits reports whether every cell of rock lies inside the walls, at or above
// the floor, and on open air
func (c *Chamber) Fits(rock Rock) bool {
	if rock.Col < 0 || rock.Col+rock.Shape.Width() > constant.ChamberWidth || rock.Row < 0 {
		return false
	}
	for r := 0; r < rock.Shape.Height(); r++ {
		if c.Row(rock.Row+r)&(rock.Shape.RowMask(r)<<rock.Col) != 0 {
			return false
		}
	}
	return true
}

// Commit turns a resting rock into settled rock, growing the chamber as needed.
// A rock that does not fit means the caller broke the movement rules; that panics.
func (c *Chamber) Commit(rock Rock) {
	if !c.Fits(rock) {
		panic(fmt.Sprintf("tower: commit of %s at col=%d row=%d overlaps walls, floor or settled rock",
			rock.Shape, rock.Col, rock.Row))
	}

	for r := 0; r < rock.Shape.Height(); r++ {
		row := rock.Row + r
		for row >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[row] |= rock.Shape.RowMask(r) << rock.Col
	}
}

// Skyline captures the top depth rows, zero padded when the chamber is shorter
func (c *Chamber) Skyline(depth int) Skyline {
	sky := make([]byte, max(depth, 0))
	h := len(c.rows)
	for i := 0; i < len(sky) && i < h; i++ {
		sky[i] = c.rows[h-1-i]
	}
	return Skyline(sky)
}

// Surface captures the open air a falling rock can still reach, one mask per
// row from the top down. Rocks only move sideways and down, so a cell counts
// when it is open and joins the air above through open cells along a row or
// straight down. Terrain outside that region can never touch a rock again.
// At most depth rows are captured; a capture cut short ends with surfaceCut.
func (c *Chamber) Surface(depth int) Skyline {
	buf := make([]byte, 0, 32)
	reach := constant.ChamberRowMask // all open above the top
	for r := len(c.rows) - 1; r >= 0; r-- {
		open := ^c.rows[r] & constant.ChamberRowMask
		reach = spread(reach&open, open)
		if reach == 0 {
			break
		}
		if len(buf) == depth {
			buf = append(buf, surfaceCut)
			break
		}
		buf = append(buf, reach)
	}
	return Skyline(buf)
}

// spread grows seed sideways through the open cells of one row
func spread(seed, open uint8) uint8 {
	for {
		next := (seed | seed<<1 | seed>>1) & open
		if next == seed {
			return seed
		}
		seed = next
	}
}

// String draws the chamber top row first, '#' for rock and '.' for air
func (c *Chamber) String() string {
	var sb strings.Builder
	for r := len(c.rows) - 1; r >= 0; r-- {
		for col := 0; col < constant.ChamberWidth; col++ {
			if c.rows[r]&(1<<col) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
