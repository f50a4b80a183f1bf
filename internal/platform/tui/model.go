package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// recordedActions are the actions worth persisting for replay. Everything
// else (quit) has no effect on simulation state.
var recordedActions = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionPause,
	core.ActionRestart,
}

// Model is the Bubble Tea model for an interactive play session. It is the
// game's only collaborator: it polls input, drives the fixed-rate clock,
// and projects the screen buffer to the terminal.
type Model struct {
	g          *game.Game
	screen     *core.Screen
	store      *storage.Store
	keys       KeyMap
	config     core.RuntimeConfig
	inputFrame core.InputFrame

	tick     uint64
	recorded []storage.InputEvent
	quitting bool
}

// NewModel creates a play model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		g:          g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       DefaultKeyMap(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.g.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.saveRecording()
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize reprojects the playfield; the simulation keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.g.SetScreenSize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the accumulated input frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, a := range recordedActions {
		if m.inputFrame.Has(a) {
			m.recorded = append(m.recorded, storage.InputEvent{Tick: m.tick, Action: a})
		}
	}

	m.g.Step(m.inputFrame)
	m.tick++
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRecording persists the session for later replay. Best effort: a
// failed save never blocks quitting.
func (m *Model) saveRecording() {
	if m.store == nil || m.tick == 0 {
		return
	}
	grid := m.g.Grid()
	//nolint:errcheck // Best-effort save, quitting proceeds regardless
	m.store.SaveSession(storage.Session{
		Seed:     m.config.Seed,
		GridW:    grid.Width,
		GridH:    grid.Height,
		TickRate: m.config.TickRate,
		Ticks:    m.tick,
	}, m.recorded)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.g.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for an interactive session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
