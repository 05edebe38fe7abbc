// Package tui hosts the Bubbletea model. It owns the terminal concerns
// (sizing, message routing, rendering) and delegates every state change to
// the app state machine.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagehand-dev/stagehand/internal/app"
	"github.com/stagehand-dev/stagehand/internal/common"
	"github.com/stagehand-dev/stagehand/internal/config"
	"github.com/stagehand-dev/stagehand/internal/ui"
)

// Model is the top-level Bubbletea model.
type Model struct {
	state  *app.State
	styles ui.Styles
	width  int
	height int
}

// New creates the model around an initialized state machine.
func New(state *app.State, cfg *config.Config) Model {
	return Model{
		state:  state,
		styles: ui.NewStyles(ui.ThemeByName(cfg.Theme)),
	}
}

// Init requests the initial terminal size; the state is already loaded.
func (m Model) Init() tea.Cmd { return nil }

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		cmd, quit := m.state.HandleKey(msg)
		if quit {
			return m, tea.Quit
		}
		return m, cmd

	case common.RefreshMsg:
		m.state.Refresh()
		return m, nil

	case common.ErrMsg:
		// Background errors land in the status bar like any other message.
		m.state.SetStatusMessage(msg.Err.Error())
		return m, nil
	}

	return m, nil
}
