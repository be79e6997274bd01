package render

import "github.com/gdamore/tcell/v2"

// Surface is the part of tcell.Screen the renderers draw on.
// tcell.Screen and its simulation screen satisfy it directly.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// drawText writes s starting at (x, y), clipped to the surface width
func drawText(s Surface, x, y int, text string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
