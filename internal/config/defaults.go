package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last-resort fallback if the embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:      32,
			Height:     24,
			CellWidth:  2,
			CellHeight: 1,
		},
		TickRate: 10,
		Theme: ThemeConfig{
			HeadGlyph:   "O",
			BodyGlyph:   "o",
			FoodGlyph:   "●",
			SnakeColor:  "bright-green",
			FoodColor:   "bright-red",
			BorderColor: "cyan",
		},
	}
}
