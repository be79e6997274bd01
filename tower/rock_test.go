package tower

import (
	"testing"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/wind"
)

var allShapes = []Shape{ShapeBar, ShapePlus, ShapeCorner, ShapeColumn, ShapeSquare}

func TestSpawn_Position(t *testing.T) {
	for _, shape := range allShapes {
		rock := Spawn(shape, 10)
		if rock.Col != constant.SpawnLeftGap {
			t.Errorf("%v: Col = %d, want %d", shape, rock.Col, constant.SpawnLeftGap)
		}
		if rock.Row != 13 {
			t.Errorf("%v: Row = %d, want 13", shape, rock.Row)
		}

		minCol := constant.ChamberWidth
		for _, c := range rock.Cells() {
			minCol = min(minCol, c.Col)
		}
		if minCol != constant.SpawnLeftGap {
			t.Errorf("%v: leftmost cell at column %d", shape, minCol)
		}
	}
}

func TestRock_ShoveBlockedByWalls(t *testing.T) {
	c := NewChamber()

	left := Rock{Shape: ShapeBar, Col: 0, Row: 0}
	if got := left.Shove(wind.Left, c); got != left {
		t.Errorf("Shove into left wall moved the rock to %+v", got)
	}

	right := Rock{Shape: ShapeBar, Col: 3, Row: 0}
	if got := right.Shove(wind.Right, c); got != right {
		t.Errorf("Shove into right wall moved the rock to %+v", got)
	}

	if got := right.Shove(wind.Left, c); got.Col != 2 || got.Row != 0 {
		t.Errorf("Free shove left: got %+v", got)
	}
}

func TestRock_ShoveBlockedByRock(t *testing.T) {
	c := NewChamber()
	c.Commit(Rock{Shape: ShapeColumn, Col: 5, Row: 0})

	// Plus's right arm sits at row 1, col Col+2
	plus := Rock{Shape: ShapePlus, Col: 2, Row: 0}
	if got := plus.Shove(wind.Right, c); got != plus {
		t.Errorf("Plus arm should be blocked by column, got %+v", got)
	}

	// Above the column the same move is free
	high := Rock{Shape: ShapePlus, Col: 2, Row: 4}
	if got := high.Shove(wind.Right, c); got.Col != 3 {
		t.Errorf("Plus above the column should move, got %+v", got)
	}
}

func TestRock_Fall(t *testing.T) {
	c := NewChamber()

	r := Rock{Shape: ShapeSquare, Col: 0, Row: 1}
	next, ok := r.Fall(c)
	if !ok || next.Row != 0 {
		t.Fatalf("Expected fall to row 0, got %+v ok=%v", next, ok)
	}
	if _, ok := next.Fall(c); ok {
		t.Error("Rock on the floor must not fall")
	}

	c.Commit(next)
	above := Rock{Shape: ShapeBar, Col: 1, Row: 2}
	if _, ok := above.Fall(c); ok {
		t.Error("Bar resting on the square must not fall")
	}
	beside := Rock{Shape: ShapeColumn, Col: 2, Row: 2}
	if got, ok := beside.Fall(c); !ok || got.Row != 1 {
		t.Errorf("Column next to the square should fall, got %+v ok=%v", got, ok)
	}
}

// dropOne runs a full drop of shape by hand using only the rock cursor operations
func dropOne(c *Chamber, jets *wind.Cursor, shape Shape) Rock {
	rock := Spawn(shape, c.Height())
	for {
		rock = rock.Shove(jets.Next(), c)
		next, ok := rock.Fall(c)
		if !ok {
			c.Commit(rock)
			return rock
		}
		rock = next
	}
}

func TestDrop_WallClamp(t *testing.T) {
	for _, shape := range allShapes {
		t.Run(shape.String(), func(t *testing.T) {
			c := NewChamber()
			got := dropOne(c, wind.NewCursor(wind.MustParse(">")), shape)
			if want := constant.ChamberWidth - shape.Width(); got.Col != want || got.Row != 0 {
				t.Errorf("All-right wind: settled at col=%d row=%d, want col=%d row=0", got.Col, got.Row, want)
			}

			c = NewChamber()
			got = dropOne(c, wind.NewCursor(wind.MustParse("<")), shape)
			if got.Col != 0 || got.Row != 0 {
				t.Errorf("All-left wind: settled at col=%d row=%d, want col=0 row=0", got.Col, got.Row)
			}
			if c.Height() != shape.Height() {
				t.Errorf("Height = %d, want %d", c.Height(), shape.Height())
			}
		})
	}
}
