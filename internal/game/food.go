package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food holds the position of the current apple.
type Food struct {
	pos core.Point
}

// NewFood creates food at the grid origin; call Relocate before play.
func NewFood() *Food {
	return &Food{}
}

// Position returns the current location.
func (f *Food) Position() core.Point {
	return f.pos
}

// Relocate samples uniformly random cells until one is not occupied and
// assigns it as the position. Callers guarantee the occupied cells are a
// strict subset of the grid, so the loop terminates.
func (f *Food) Relocate(rng *rand.Rand, g Grid, occupied func(core.Point) bool) {
	for {
		p := g.RandomCell(rng)
		if occupied == nil || !occupied(p) {
			f.pos = p
			return
		}
	}
}

// Render draws the food cell onto the screen.
func (f *Food) Render(dst *core.Screen, l Layout, th Theme) {
	l.DrawCell(dst, f.pos, th.FoodGlyph, th.FoodColor)
}
