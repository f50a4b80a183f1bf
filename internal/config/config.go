// Package config provides YAML-based configuration loading for the snake
// platform: playfield geometry, tick rate, and theme.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Config contains all user-tunable settings.
type Config struct {
	Grid     GridConfig  `yaml:"grid"`
	TickRate int         `yaml:"tick_rate"`
	Theme    ThemeConfig `yaml:"theme"`
}

// GridConfig defines the playfield geometry.
type GridConfig struct {
	Width      int `yaml:"width"`       // Playfield width in cells
	Height     int `yaml:"height"`      // Playfield height in cells
	CellWidth  int `yaml:"cell_width"`  // Screen columns per cell
	CellHeight int `yaml:"cell_height"` // Screen rows per cell
}

// ThemeConfig defines glyphs and colors. Glyphs must be single runes;
// colors use the names accepted by core.ParseColor.
type ThemeConfig struct {
	HeadGlyph   string `yaml:"head_glyph"`
	BodyGlyph   string `yaml:"body_glyph"`
	FoodGlyph   string `yaml:"food_glyph"`
	SnakeColor  string `yaml:"snake_color"`
	FoodColor   string `yaml:"food_color"`
	BorderColor string `yaml:"border_color"`
}

// Validate checks startup preconditions. A malformed configuration aborts
// before the game loop starts.
func (c Config) Validate() error {
	if c.Grid.Width < game.MinGridSide || c.Grid.Height < game.MinGridSide {
		return fmt.Errorf("config: grid %dx%d is below the %dx%d minimum",
			c.Grid.Width, c.Grid.Height, game.MinGridSide, game.MinGridSide)
	}
	if c.Grid.CellWidth < 1 || c.Grid.CellHeight < 1 {
		return fmt.Errorf("config: cell size %dx%d must be at least 1x1",
			c.Grid.CellWidth, c.Grid.CellHeight)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("config: tick_rate %d must be at least 1", c.TickRate)
	}
	for name, glyph := range map[string]string{
		"head_glyph": c.Theme.HeadGlyph,
		"body_glyph": c.Theme.BodyGlyph,
		"food_glyph": c.Theme.FoodGlyph,
	} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("config: %s %q must be a single character", name, glyph)
		}
	}
	for name, color := range map[string]string{
		"snake_color":  c.Theme.SnakeColor,
		"food_color":   c.Theme.FoodColor,
		"border_color": c.Theme.BorderColor,
	} {
		if _, ok := core.ParseColor(color); !ok {
			return fmt.Errorf("config: unknown %s %q", name, color)
		}
	}
	return nil
}

// Options converts the validated config into game options.
func (c Config) Options() (game.Options, error) {
	if err := c.Validate(); err != nil {
		return game.Options{}, err
	}

	grid, err := game.NewGrid(c.Grid.Width, c.Grid.Height)
	if err != nil {
		return game.Options{}, err
	}

	theme := game.DefaultTheme()
	theme.HeadGlyph = firstRune(c.Theme.HeadGlyph)
	theme.BodyGlyph = firstRune(c.Theme.BodyGlyph)
	theme.FoodGlyph = firstRune(c.Theme.FoodGlyph)
	theme.SnakeColor, _ = core.ParseColor(c.Theme.SnakeColor)
	theme.FoodColor, _ = core.ParseColor(c.Theme.FoodColor)
	theme.BorderColor, _ = core.ParseColor(c.Theme.BorderColor)

	return game.Options{
		Grid:  grid,
		CellW: c.Grid.CellWidth,
		CellH: c.Grid.CellHeight,
		Theme: theme,
	}, nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
