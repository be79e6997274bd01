// Package tower simulates rocks falling into a seven-column shaft and
// extrapolates the tower height across very long drop sequences.
package tower

import "github.com/lixenwraith/rockfall/constant"

// Shape identifies one of the fixed rock geometries, in spawn order
type Shape uint8

const (
	ShapeBar    Shape = iota // ####
	ShapePlus                // .#. / ### / .#.
	ShapeCorner              // ..# / ..# / ###
	ShapeColumn              // # x4
	ShapeSquare              // ## / ##
)

// Cell is a (column, row) coordinate; rows grow upward from the floor
type Cell struct {
	Col, Row int
}

// geometry is the precomputed form of a shape.
// rows[r] is the column mask of bounding-box row r with the anchor at column 0.
type geometry struct {
	name   string
	cells  []Cell
	rows   [constant.MaxShapeHeight]uint8
	width  int
	height int
}

var shapeTable = [constant.ShapeCount]geometry{
	newGeometry("bar", Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{3, 0}),
	newGeometry("plus", Cell{1, 0}, Cell{0, 1}, Cell{1, 1}, Cell{2, 1}, Cell{1, 2}),
	newGeometry("corner", Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{2, 1}, Cell{2, 2}),
	newGeometry("column", Cell{0, 0}, Cell{0, 1}, Cell{0, 2}, Cell{0, 3}),
	newGeometry("square", Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1}),
}

// newGeometry packs offsets relative to the bounding box's bottom-left corner
func newGeometry(name string, cells ...Cell) geometry {
	g := geometry{name: name, cells: cells}
	for _, c := range cells {
		g.rows[c.Row] |= 1 << c.Col
		g.width = max(g.width, c.Col+1)
		g.height = max(g.height, c.Row+1)
	}
	return g
}

// ShapeAt returns the shape spawned at the given position of the endless spawn order
func ShapeAt(cursor int64) Shape {
	return Shape(cursor % constant.ShapeCount)
}

// Cells returns the occupied offsets with the anchor at (0,0)
func (s Shape) Cells() []Cell {
	out := make([]Cell, len(shapeTable[s].cells))
	copy(out, shapeTable[s].cells)
	return out
}

// Width returns the bounding-box width in columns
func (s Shape) Width() int { return shapeTable[s].width }

// Height returns the bounding-box height in rows
func (s Shape) Height() int { return shapeTable[s].height }

// RowMask returns the column mask of bounding-box row r, anchored at column 0
func (s Shape) RowMask(r int) uint8 { return shapeTable[s].rows[r] }

func (s Shape) String() string {
	if int(s) >= len(shapeTable) {
		return "invalid"
	}
	return shapeTable[s].name
}
