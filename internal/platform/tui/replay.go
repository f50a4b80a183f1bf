package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxSessions = 100 // Max sessions to list in the browser

// replayMode selects between the session browser and active playback.
type replayMode int

const (
	modeBrowse replayMode = iota
	modePlay
)

// ReplayKeyMap defines the key bindings for the replay browser.
type ReplayKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultReplayKeyMap returns default replay browser bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayModel browses recorded sessions and plays them back by re-running
// the simulation from the stored seed and input events.
type ReplayModel struct {
	store *storage.Store
	opts  game.Options
	cfg   core.RuntimeConfig

	mode     replayMode
	tbl      table.Model
	help     help.Model
	keys     ReplayKeyMap
	sessions []storage.Session

	// Playback state
	g       *game.Game
	screen  *core.Screen
	session storage.Session
	events  []storage.InputEvent
	nextEv  int
	tick    uint64
	done    bool

	quitting bool
}

// NewReplayModel creates a replay browser over the given store.
func NewReplayModel(store *storage.Store, opts game.Options, cfg core.RuntimeConfig) (ReplayModel, error) {
	sessions, err := store.Sessions(maxSessions)
	if err != nil {
		return ReplayModel{}, err
	}

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Recorded", Width: 18},
		{Title: "Grid", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Duration", Width: 10},
	}

	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		dur := time.Duration(s.Ticks) * time.Second / time.Duration(core.Max(1, s.TickRate))
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.ID),
			s.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", s.GridW, s.GridH),
			fmt.Sprintf("%d", s.Ticks),
			dur.Round(time.Second).String(),
		}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(len(rows)+1, 3, core.Max(3, cfg.ScreenH-6))),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("10")).Bold(true)
	tbl.SetStyles(styles)

	return ReplayModel{
		store:    store,
		opts:     opts,
		cfg:      cfg,
		tbl:      tbl,
		help:     help.New(),
		keys:     DefaultReplayKeyMap(),
		sessions: sessions,
	}, nil
}

// Init does nothing; sessions are loaded up front.
func (m ReplayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for both browser and playback modes.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.ScreenW = wsm.Width
		m.cfg.ScreenH = wsm.Height
		if m.screen != nil {
			m.screen.Resize(wsm.Width, wsm.Height)
		}
		if m.g != nil {
			m.g.SetScreenSize(wsm.Width, wsm.Height)
		}
	}

	if m.mode == modePlay {
		return m.updatePlayback(msg)
	}
	return m.updateBrowser(msg)
}

// updateBrowser handles the session table.
func (m ReplayModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Select):
			return m.startPlayback()
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// startPlayback loads the selected session and re-runs it from its seed.
func (m ReplayModel) startPlayback() (tea.Model, tea.Cmd) {
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.sessions) {
		return m, nil
	}
	sess := m.sessions[idx]

	events, err := m.store.Inputs(sess.ID)
	if err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	// Rebuild the playfield the session was recorded on; theme and cell
	// projection follow the current config.
	opts := m.opts
	opts.Grid = game.Grid{Width: sess.GridW, Height: sess.GridH}

	m.g = game.New(opts)
	m.g.Reset(core.RuntimeConfig{
		ScreenW:  m.cfg.ScreenW,
		ScreenH:  m.cfg.ScreenH,
		TickRate: sess.TickRate,
		Seed:     sess.Seed,
	})
	m.screen = core.NewScreen(m.cfg.ScreenW, m.cfg.ScreenH)
	m.session = sess
	m.events = events
	m.nextEv = 0
	m.tick = 0
	m.done = false
	m.mode = modePlay

	return m, tickCmd(core.Max(1, sess.TickRate))
}

// updatePlayback feeds recorded inputs to the simulation tick by tick.
func (m ReplayModel) updatePlayback(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.mode = modeBrowse
			return m, nil
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}

		frame := core.NewInputFrame()
		for m.nextEv < len(m.events) && m.events[m.nextEv].Tick == m.tick {
			frame.Set(m.events[m.nextEv].Action)
			m.nextEv++
		}
		m.g.Step(frame)
		m.tick++

		if m.tick >= m.session.Ticks {
			m.done = true
			return m, nil
		}
		return m, tickCmd(core.Max(1, m.session.TickRate))
	}

	return m, nil
}

// View renders the browser table or the playback screen.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modePlay {
		m.g.Render(m.screen)
		footer := fmt.Sprintf(" replay #%d  tick %d/%d  esc: back  q: quit",
			m.session.ID, m.tick, m.session.Ticks)
		if m.done {
			footer = fmt.Sprintf(" replay #%d finished  esc: back  q: quit", m.session.ID)
		}
		m.screen.DrawText(0, m.screen.Height()-1, footer, core.ColorGray)
		return RenderScreen(m.screen)
	}

	title := lipgloss.NewStyle().Bold(true).Render("Recorded sessions")
	if len(m.sessions) == 0 {
		return title + "\n\nNo sessions recorded yet.\nPlay with --db enabled to record one.\n\n" +
			m.help.View(m.keys)
	}
	return title + "\n\n" + m.tbl.View() + "\n\n" + m.help.View(m.keys)
}

// RunReplayBrowser starts the replay browser program.
func RunReplayBrowser(store *storage.Store, opts game.Options, cfg core.RuntimeConfig) error {
	model, err := NewReplayModel(store, opts, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
