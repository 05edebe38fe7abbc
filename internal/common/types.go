package common

import tea "github.com/charmbracelet/bubbletea"

// RefreshMsg asks the model to re-query repository state. Sent by the
// filesystem watcher and by anything else that knows the index moved
// underneath the UI.
type RefreshMsg struct{}

// ErrMsg carries a background error to be displayed in the status bar.
type ErrMsg struct{ Err error }

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}
