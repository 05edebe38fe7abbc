package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HandleKey routes a keystroke to the active mode. It returns a command for
// the focused text input (cursor blink) and whether the application should
// quit. ctrl+c quits from any mode; every other key is mode-local.
func (s *State) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return nil, true
	}

	switch s.mode.(type) {
	case Normal:
		return nil, s.handleNormalKey(msg)
	case CommitEntry:
		return s.handleCommitKey(msg), false
	case StashEntry:
		return s.handleStashKey(msg), false
	case Confirm:
		s.handleConfirmKey(msg)
		return nil, false
	case Preview:
		s.handlePreviewKey(msg)
		return nil, false
	case Help:
		s.handleHelpKey(msg)
		return nil, false
	}
	return nil, false
}

func (s *State) handleNormalKey(msg tea.KeyMsg) (quit bool) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return true
	case key.Matches(msg, s.keys.Down):
		s.MoveNext()
	case key.Matches(msg, s.keys.Up):
		s.MovePrevious()
	case key.Matches(msg, s.keys.Stage):
		s.ToggleSelected()
	case key.Matches(msg, s.keys.StageAll):
		s.ToggleAll()
	case key.Matches(msg, s.keys.Commit):
		s.BeginCommit()
	case key.Matches(msg, s.keys.Stash):
		s.BeginStash()
	case key.Matches(msg, s.keys.StashList):
		s.ListStashes()
	case key.Matches(msg, s.keys.StashApply):
		s.ApplyLatestStash()
	case key.Matches(msg, s.keys.Preview):
		s.ShowPreview()
	case key.Matches(msg, s.keys.TogglePanel):
		s.TogglePreviewPanel()
	case key.Matches(msg, s.keys.Refresh):
		s.Refresh()
		s.statusMessage = "Refreshed"
	case key.Matches(msg, s.keys.Help):
		s.ShowHelp()
	}
	return false
}

// Entry modes forward everything except enter/esc to the text input so the
// buffers accept arbitrary message text, including the letters bound to
// Normal-mode actions.

func (s *State) handleCommitKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		s.SubmitCommit()
		return nil
	case tea.KeyEsc:
		s.CancelCommit()
		s.statusMessage = "Operation cancelled"
		return nil
	}
	var cmd tea.Cmd
	s.commitInput, cmd = s.commitInput.Update(msg)
	return cmd
}

func (s *State) handleStashKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		s.SubmitStash()
		return nil
	case tea.KeyEsc:
		s.CancelStash()
		s.statusMessage = "Operation cancelled"
		return nil
	}
	var cmd tea.Cmd
	s.stashInput, cmd = s.stashInput.Update(msg)
	return cmd
}

func (s *State) handleConfirmKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "Y", "enter":
		s.HandleConfirm(true)
	case "n", "N", "esc", "q":
		s.HandleConfirm(false)
	}
}

func (s *State) handlePreviewKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "q", "esc", "d":
		s.ExitPreview()
	case "j", "down":
		s.previewScroll.LineDown()
	case "k", "up":
		s.previewScroll.LineUp()
	}
}

func (s *State) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "q", "esc", "h":
		s.ExitHelp()
	case "j", "down":
		s.helpScroll.LineDown()
	case "k", "up":
		s.helpScroll.LineUp()
	}
}
