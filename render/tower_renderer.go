package render

import (
	"strings"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/status"
	"github.com/lixenwraith/rockfall/tower"
)

// Frame is everything drawn in one pass
type Frame struct {
	Chamber *tower.Chamber
	Rock    tower.Rock
	Falling bool
	Status  []string
	Banner  string // highlighted line above the status panel, empty for none
}

// TowerRenderer draws the top of the chamber anchored to the bottom of the
// surface with a status panel to its right
type TowerRenderer struct {
	styles Styles
}

// NewTowerRenderer creates a renderer with the given styles
func NewTowerRenderer(styles Styles) *TowerRenderer {
	return &TowerRenderer{styles: styles}
}

// FrameWidth is the chamber width plus both walls
const FrameWidth = constant.ChamberWidth + 2

// Viewport returns the lowest chamber row shown when h surface rows are
// available. The view follows the highest of the tower top and the falling rock.
func Viewport(f Frame, h int) (base int) {
	visible := h - 1 // bottom line is the floor or cut marker
	if visible <= 0 {
		return 0
	}
	top := f.Chamber.Height()
	if f.Falling {
		top = max(top, f.Rock.Top())
	}
	return max(0, top-visible)
}

// Draw renders the frame onto s
func (r *TowerRenderer) Draw(s Surface, f Frame) {
	_, h := s.Size()
	if h < 2 {
		return
	}

	base := Viewport(f, h)
	bottom := h - 1

	// Falling rock cells keyed by absolute position
	rockCells := make(map[tower.Cell]bool, 5)
	if f.Falling {
		for _, c := range f.Rock.Cells() {
			rockCells[c] = true
		}
	}

	for y := bottom - 1; y >= 0; y-- {
		row := base + (bottom - 1 - y)
		s.SetContent(0, y, constant.GlyphWall, nil, r.styles.Wall)
		for col := 0; col < constant.ChamberWidth; col++ {
			switch {
			case rockCells[tower.Cell{Col: col, Row: row}]:
				s.SetContent(col+1, y, constant.GlyphFalling, nil, r.styles.Falling)
			case f.Chamber.Occupied(col, row):
				s.SetContent(col+1, y, constant.GlyphSettled, nil, r.styles.Settled)
			default:
				s.SetContent(col+1, y, constant.GlyphAir, nil, r.styles.Air)
			}
		}
		s.SetContent(FrameWidth-1, y, constant.GlyphWall, nil, r.styles.Wall)
	}

	floor := constant.GlyphFloor
	if base > 0 {
		floor = constant.GlyphCut
	}
	s.SetContent(0, bottom, constant.GlyphCorner, nil, r.styles.Wall)
	for col := 1; col <= constant.ChamberWidth; col++ {
		s.SetContent(col, bottom, floor, nil, r.styles.Wall)
	}
	s.SetContent(FrameWidth-1, bottom, constant.GlyphCorner, nil, r.styles.Wall)

	x := FrameWidth + constant.StatusPanelGap
	y := 0
	if f.Banner != "" {
		drawText(s, x, y, f.Banner, r.styles.Highlight)
		y += 2
	}
	for _, line := range f.Status {
		drawText(s, x, y, line, r.styles.Label)
		y++
	}
}

// StatusLines formats the registry for the status panel, "name: value" per metric
func StatusLines(reg *status.Registry) []string {
	lines := reg.Lines()
	for i, l := range lines {
		lines[i] = strings.Replace(l, "=", ": ", 1)
	}
	return lines
}
