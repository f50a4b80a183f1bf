package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinGridSide is the smallest usable playfield dimension. Anything
// smaller leaves no room for the snake to turn.
const MinGridSide = 4

// Grid defines the playfield geometry in cells. Positions are cell
// coordinates, not screen characters; the platform layer maps cells to
// characters via Layout.
type Grid struct {
	Width  int // Playfield width in cells
	Height int // Playfield height in cells
}

// NewGrid creates a grid, validating its dimensions. Malformed dimensions
// are a startup precondition violation and fail before the loop starts.
func NewGrid(width, height int) (Grid, error) {
	if width < MinGridSide || height < MinGridSide {
		return Grid{}, fmt.Errorf("game: grid %dx%d is below the %dx%d minimum",
			width, height, MinGridSide, MinGridSide)
	}
	return Grid{Width: width, Height: height}, nil
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies within grid bounds.
func (g Grid) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps p onto the grid torus: exiting one edge re-enters at the
// opposite edge, each axis independently.
func (g Grid) Wrap(p core.Point) core.Point {
	return core.Point{
		X: core.Mod(p.X, g.Width),
		Y: core.Mod(p.Y, g.Height),
	}
}

// Center returns the central cell, the snake's start position.
func (g Grid) Center() core.Point {
	return core.Point{X: g.Width / 2, Y: g.Height / 2}
}

// RandomCell returns a uniformly random cell on the grid.
func (g Grid) RandomCell(rng *rand.Rand) core.Point {
	return core.Point{
		X: rng.Intn(g.Width),
		Y: rng.Intn(g.Height),
	}
}
