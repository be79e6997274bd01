package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbWall       = tcell.NewRGBColor(130, 130, 150)
	RgbSettled    = tcell.NewRGBColor(170, 110, 60)
	RgbFalling    = tcell.NewRGBColor(255, 200, 60)
	RgbAir        = tcell.NewRGBColor(60, 60, 75)
	RgbLabel      = tcell.NewRGBColor(120, 160, 220)
	RgbHighlight  = tcell.NewRGBColor(120, 220, 120)
)

// Styles groups the styles used for each kind of cell
type Styles struct {
	Wall      tcell.Style
	Settled   tcell.Style
	Falling   tcell.Style
	Air       tcell.Style
	Label     tcell.Style
	Highlight tcell.Style
}

// DefaultStyles returns the standard palette on the dark background
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Styles{
		Wall:      base.Foreground(RgbWall),
		Settled:   base.Foreground(RgbSettled),
		Falling:   base.Foreground(RgbFalling).Bold(true),
		Air:       base.Foreground(RgbAir),
		Label:     base.Foreground(RgbLabel),
		Highlight: base.Foreground(RgbHighlight).Bold(true),
	}
}
