package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Renderable is the drawing capability shared by the board objects.
// The variant set is fixed and small (Snake and Food), so this is a closed
// capability rather than an open base type.
type Renderable interface {
	Render(dst *core.Screen, l Layout, th Theme)
}

// Theme defines the glyphs and colors used to draw the board.
type Theme struct {
	HeadGlyph   rune
	BodyGlyph   rune
	FoodGlyph   rune
	SnakeColor  core.Color
	FoodColor   core.Color
	BorderColor core.Color
	HUDColor    core.Color
}

// DefaultTheme returns the stock look: green snake, red apple.
func DefaultTheme() Theme {
	return Theme{
		HeadGlyph:   'O',
		BodyGlyph:   'o',
		FoodGlyph:   '●',
		SnakeColor:  core.ColorBrightGreen,
		FoodColor:   core.ColorBrightRed,
		BorderColor: core.ColorCyan,
		HUDColor:    core.ColorDefault,
	}
}

// Layout maps grid cells to screen characters. Terminal characters are
// roughly twice as tall as wide, so a cell usually spans two columns and
// one row to look square.
type Layout struct {
	OffsetX int // Screen x of cell (0,0)
	OffsetY int // Screen y of cell (0,0)
	CellW   int // Screen columns per cell
	CellH   int // Screen rows per cell
}

// CellRect returns the screen rectangle covered by grid cell p.
func (l Layout) CellRect(p core.Point) core.Rect {
	return core.Rect{
		X: l.OffsetX + p.X*l.CellW,
		Y: l.OffsetY + p.Y*l.CellH,
		W: l.CellW,
		H: l.CellH,
	}
}

// DrawCell fills the screen area of grid cell p with a glyph and color.
func (l Layout) DrawCell(dst *core.Screen, p core.Point, glyph rune, c core.Color) {
	dst.DrawRect(l.CellRect(p), glyph, c)
}
