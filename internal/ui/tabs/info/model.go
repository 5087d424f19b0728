// Package info provides the info tab with configuration, version,
// service catalog, and local snapshot history details.
package info

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/k-mensah/ussd-dash-tui/internal/app"
	"github.com/k-mensah/ussd-dash-tui/internal/config"
	"github.com/k-mensah/ussd-dash-tui/internal/db"
	"github.com/k-mensah/ussd-dash-tui/internal/services"
)

// keyMap defines the key bindings specific to the info tab.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

// defaultKeyMap returns the default key bindings for the info tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// historyLoadedMsg is sent when the local snapshot history is loaded.
type historyLoadedMsg struct {
	snapshots []db.Snapshot
	rates     []float64
}

// Model represents the info tab state.
type Model struct {
	state    *app.State
	config   *config.Config
	services *services.Manager
	width    int
	height   int
	keys     keyMap
	viewport viewport.Model

	snapshots []db.Snapshot
	rates     []float64
}

// New creates a new info model.
func New(state *app.State, cfg *config.Config, svc *services.Manager) *Model {
	return &Model{
		state:    state,
		config:   cfg,
		services: svc,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the info tab.
func (m *Model) Init() tea.Cmd {
	return m.loadHistoryCmd()
}

// loadHistoryCmd reads the recent summary snapshots from the local store.
func (m *Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		if m.services == nil || m.services.Database() == nil {
			return nil
		}
		database := m.services.Database()
		tr := m.state.GetTimeRange()

		snaps, err := database.GetRecentSnapshots(tr, 5)
		if err != nil {
			return nil
		}
		rates, err := database.GetSuccessRateHistory(tr, 40)
		if err != nil {
			rates = nil
		}
		return historyLoadedMsg{snapshots: snaps, rates: rates}
	}
}

// Update handles messages for the info tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.snapshots = msg.snapshots
		m.rates = msg.rates

	case app.TabSwitchMsg:
		if msg.Tab == app.TabInfo {
			cmds = append(cmds, m.loadHistoryCmd())
		}

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// SetSize sets the available size for the info tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Up,
		m.keys.Down,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
	}
}
