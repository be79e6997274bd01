package constant

// Chamber geometry
const (
	// ChamberWidth is the fixed number of columns between the walls
	ChamberWidth = 7

	// ChamberRowMask covers every column of a packed row (bit c = column c)
	ChamberRowMask uint8 = 1<<ChamberWidth - 1
)

// Spawn rules
const (
	// SpawnLeftGap is the distance between the left wall and a new rock's leftmost cell
	SpawnLeftGap = 2

	// SpawnClearance is the number of empty rows between the tower top and a new rock's lowest cell
	SpawnClearance = 3
)

// ShapeCount is the length of the fixed spawn order
const ShapeCount = 5

// MaxShapeHeight bounds how many rows a single commit can add
const MaxShapeHeight = 4
