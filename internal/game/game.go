package game

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Options are the fixed playfield parameters, resolved from configuration
// before the loop starts.
type Options struct {
	Grid  Grid
	CellW int // Screen columns per grid cell
	CellH int // Screen rows per grid cell
	Theme Theme
}

// DefaultOptions returns the stock 32x24 playfield with 2x1 cells.
func DefaultOptions() Options {
	return Options{
		Grid:  Grid{Width: 32, Height: 24},
		CellW: 2,
		CellH: 1,
		Theme: DefaultTheme(),
	}
}

const hudHeight = 2 // Status line plus separator

// MinScreenSize returns the smallest terminal that fits the bordered
// playfield plus the HUD.
func (o Options) MinScreenSize() (w, h int) {
	return o.Grid.Width*o.CellW + 2, o.Grid.Height*o.CellH + 2 + hudHeight
}

// Game orchestrates one snake session: it owns the Snake and Food for the
// process lifetime and drives them through the fixed per-tick sequence.
// The rendering, input, and clock collaborators live in the platform layer
// and are injected through Step/Render arguments.
type Game struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	snake *Snake
	food  *Food

	apples int // Food eaten since the last reset
	resets int // Self-collisions this session

	paused   bool
	tooSmall bool
	flash    int // Ticks left of the "crash" HUD notice

	screenW int
	screenH int
	layout  Layout
}

// New creates a game with the given options. Options come pre-validated
// from the config layer.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the game identifier, used for session storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Grid returns the playfield geometry.
func (g *Game) Grid() Grid {
	return g.opts.Grid
}

// Reset initializes or restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.apples = 0
	g.resets = 0
	g.paused = false
	g.flash = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.computeLayout()

	start := g.opts.Grid.Center()
	if g.snake == nil {
		g.snake = NewSnake(start)
	} else {
		g.snake.Reset(start)
	}
	if g.food == nil {
		g.food = NewFood()
	}
	g.food.Relocate(g.rng, g.opts.Grid, g.snake.Occupies)
}

// computeLayout centers the playfield under the HUD and flags screens that
// cannot fit it.
func (g *Game) computeLayout() {
	minW, minH := g.opts.MinScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
	g.layout = Layout{
		OffsetX: (g.screenW-minW)/2 + 1,
		OffsetY: hudHeight + 1,
		CellW:   g.opts.CellW,
		CellH:   g.opts.CellH,
	}
}

// SetScreenSize updates the layout after a terminal resize. The simulation
// state is untouched; only the projection changes.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.computeLayout()
}

// Step advances the game by one tick. The per-tick order is fixed:
// queue direction input, commit it, advance, then resolve food or
// self-collision. Eating and self-collision are mutually exclusive because
// food never spawns on an occupied cell.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	// A too-small terminal only blocks rendering. The simulation keeps
	// running so a recorded session stays independent of window size;
	// pause is the way to freeze play.
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.flash > 0 {
		g.flash--
	}

	if d, ok := directionFor(in); ok {
		g.snake.SetPendingDirection(d)
	}
	g.snake.CommitDirection()
	g.snake.Advance(g.opts.Grid)

	var res core.StepResult
	switch {
	case g.snake.Head() == g.food.Position():
		g.snake.Grow()
		g.apples++
		g.food.Relocate(g.rng, g.opts.Grid, g.snake.Occupies)
		res.Ate = true
	case g.snake.HasSelfCollision():
		g.resets++
		g.apples = 0
		g.snake.Reset(g.opts.Grid.Center())
		g.food.Relocate(g.rng, g.opts.Grid, g.snake.Occupies)
		g.flash = 10
		res.Reset = true
	}

	res.State = g.State()
	return res
}

// directionFor maps frame actions to a steering direction. At most one
// direction applies per frame; the switch order makes ties deterministic.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the externally visible session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Apples: g.apples,
		Length: g.snake.Len(),
		Resets: g.resets,
		Paused: g.paused,
	}
}

// Render draws the HUD, playfield border, food, and snake.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorGray)
		return
	}

	th := g.opts.Theme

	// Playfield border
	fieldW := g.opts.Grid.Width*g.opts.CellW + 2
	fieldH := g.opts.Grid.Height*g.opts.CellH + 2
	dst.DrawBox(core.NewRect(g.layout.OffsetX-1, g.layout.OffsetY-1, fieldW, fieldH), th.BorderColor)

	// Board objects
	for _, obj := range []Renderable{g.food, g.snake} {
		obj.Render(dst, g.layout, th)
	}

	if g.paused {
		dst.DrawTextCentered(g.layout.OffsetY+g.opts.Grid.Height*g.opts.CellH/2, " Paused ", core.ColorBrightYellow)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	th := g.opts.Theme
	hud := fmt.Sprintf(" Snake — Apples: %d  Length: %d  Crashes: %d", g.apples, g.snake.Len(), g.resets)
	dst.DrawText(0, 0, hud, th.HUDColor)
	if g.flash > 0 {
		dst.DrawText(utf8.RuneCountInString(hud)+2, 0, "CRASH!", core.ColorBrightRed)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', th.HUDColor)
}
