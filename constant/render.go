package constant

// Tower glyphs
const (
	GlyphWall    = '|'
	GlyphFloor   = '-'
	GlyphCorner  = '+'
	GlyphSettled = '#'
	GlyphFalling = '@'
	GlyphAir     = '.'
)

// StatusPanelGap is the column gap between the chamber frame and the status panel
const StatusPanelGap = 3

// GlyphCut replaces the floor when the view is scrolled above it
const GlyphCut = '~'
