package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultLoads(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default config is invalid: %v", err)
	}
	if cfg.Grid.Width != 32 || cfg.Grid.Height != 24 {
		t.Errorf("default grid %dx%d, expected 32x24", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.TickRate != 10 {
		t.Errorf("default tick_rate %d, expected 10", cfg.TickRate)
	}
}

func TestHardcodedDefaultMatchesEmbedded(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("hardcoded default config is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	yml := `
grid:
  width: 16
  height: 12
  cell_width: 1
  cell_height: 1
tick_rate: 20
theme:
  head_glyph: "@"
  body_glyph: "#"
  food_glyph: "*"
  snake_color: yellow
  food_color: magenta
  border_color: gray
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Grid.Width != 16 || cfg.TickRate != 20 {
		t.Errorf("custom config not applied: %+v", cfg)
	}
	if cfg.Theme.HeadGlyph != "@" {
		t.Errorf("head glyph %q, expected @", cfg.Theme.HeadGlyph)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestLoadInvalidCustomConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	yml := `
grid:
  width: 2
  height: 2
  cell_width: 1
  cell_height: 1
tick_rate: 10
theme:
  head_glyph: "O"
  body_glyph: "o"
  food_glyph: "*"
  snake_color: green
  food_color: red
  border_color: cyan
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a config that fails validation")
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid too narrow", func(c *Config) { c.Grid.Width = 2 }},
		{"grid too short", func(c *Config) { c.Grid.Height = 1 }},
		{"zero cell width", func(c *Config) { c.Grid.CellWidth = 0 }},
		{"zero cell height", func(c *Config) { c.Grid.CellHeight = 0 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"multi-rune glyph", func(c *Config) { c.Theme.HeadGlyph = "OO" }},
		{"empty glyph", func(c *Config) { c.Theme.FoodGlyph = "" }},
		{"unknown color", func(c *Config) { c.Theme.SnakeColor = "chartreuse" }},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("baseline config should validate, got: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should have failed")
			}
		})
	}
}

func TestOptionsConversion(t *testing.T) {
	opts, err := DefaultConfig().Options()
	if err != nil {
		t.Fatalf("Options() failed: %v", err)
	}

	if opts.Grid.Width != 32 || opts.Grid.Height != 24 {
		t.Errorf("options grid %dx%d, expected 32x24", opts.Grid.Width, opts.Grid.Height)
	}
	if opts.CellW != 2 || opts.CellH != 1 {
		t.Errorf("options cell %dx%d, expected 2x1", opts.CellW, opts.CellH)
	}
	if opts.Theme.HeadGlyph != 'O' || opts.Theme.FoodGlyph != '●' {
		t.Errorf("theme glyphs not converted: %+v", opts.Theme)
	}
}
