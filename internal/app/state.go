package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stagehand-dev/stagehand/internal/git"
)

// State is the aggregate application state: the parsed status entries, the
// selection cursor, the active input mode, the text-entry buffers, scroll
// state for preview/help, and the user-visible status message.
//
// All mutation goes through the operation methods below. Every gateway call
// is synchronous and blocks the caller; the state machine assumes exactly
// one logical thread of control, so no locking is needed.
type State struct {
	gw   git.Service
	keys KeyMap

	entries   []git.StatusEntry
	malformed int
	cursor    Cursor
	mode      Mode

	commitInput textinput.Model
	stashInput  textinput.Model

	previewScroll Scroller
	helpScroll    Scroller

	statusMessage string
	branch        string
	repoName      string

	showPreviewPanel bool
	panelPreview     string
}

// New builds the initial state and performs the first refresh.
func New(gw git.Service, showPreviewPanel bool) *State {
	commit := textinput.New()
	commit.Placeholder = "Commit message"
	commit.CharLimit = 200
	commit.Width = 50

	stash := textinput.New()
	stash.Placeholder = "Stash message (optional)"
	stash.CharLimit = 200
	stash.Width = 50

	s := &State{
		gw:               gw,
		keys:             DefaultKeyMap(),
		cursor:           NewCursor(),
		mode:             Normal{},
		commitInput:      commit,
		stashInput:       stash,
		statusMessage:    "Ready. Press h for help, j/k to move",
		repoName:         gw.RepoName(),
		showPreviewPanel: showPreviewPanel,
	}
	s.Refresh()
	return s
}

// ── Read access for rendering and tests ─────────────────────────────────────

// Entries returns the current status entries in gateway order.
func (s *State) Entries() []git.StatusEntry { return s.entries }

// MalformedCount returns how many status lines the last refresh rejected.
func (s *State) MalformedCount() int { return s.malformed }

// Selected returns the cursor index and whether anything is selected.
func (s *State) Selected() (int, bool) { return s.cursor.Selected() }

// SelectedEntry returns the entry under the cursor, if any.
func (s *State) SelectedEntry() (git.StatusEntry, bool) {
	i, ok := s.cursor.Selected()
	if !ok || i >= len(s.entries) {
		return git.StatusEntry{}, false
	}
	return s.entries[i], true
}

// Mode returns the active input mode variant.
func (s *State) Mode() Mode { return s.mode }

// StatusMessage returns the current user-visible message.
func (s *State) StatusMessage() string { return s.statusMessage }

// SetStatusMessage overrides the status message, used for errors that
// arrive from outside the key-driven flow (e.g. the watcher).
func (s *State) SetStatusMessage(msg string) { s.statusMessage = msg }

// Branch returns the branch name captured by the last refresh.
func (s *State) Branch() string { return s.branch }

// RepoName returns the repository name for the status bar.
func (s *State) RepoName() string { return s.repoName }

// ShowPreviewPanel reports whether the inline preview panel is enabled.
func (s *State) ShowPreviewPanel() bool { return s.showPreviewPanel }

// PanelPreview returns the inline panel content for the selected entry.
func (s *State) PanelPreview() string { return s.panelPreview }

// PreviewScroll returns the preview scroll state for rendering.
func (s *State) PreviewScroll() *Scroller { return &s.previewScroll }

// HelpScroll returns the help scroll state for rendering.
func (s *State) HelpScroll() *Scroller { return &s.helpScroll }

// CommitInputView renders the commit entry buffer with its cursor.
func (s *State) CommitInputView() string { return s.commitInput.View() }

// StashInputView renders the stash entry buffer with its cursor.
func (s *State) StashInputView() string { return s.stashInput.View() }

// CommitBuffer returns the raw commit buffer text.
func (s *State) CommitBuffer() string { return s.commitInput.Value() }

// StashBuffer returns the raw stash buffer text.
func (s *State) StashBuffer() string { return s.stashInput.Value() }

// ── Refresh ──────────────────────────────────────────────────────────────────

// Refresh re-queries the gateway for status, re-parses the entry list, and
// re-applies the cursor preservation rule. Branch info is refreshed at the
// same time so the status bar never shows stale names. A gateway failure
// surfaces verbatim and leaves entries untouched.
func (s *State) Refresh() {
	raw, err := s.gw.Status()
	if err != nil {
		s.statusMessage = err.Error()
		return
	}
	s.entries, s.malformed = git.ParseStatus(raw)
	s.cursor.Reconcile(len(s.entries))

	if branch, err := s.gw.Head(); err == nil {
		s.branch = branch
	} else {
		s.branch = "unknown"
	}

	s.updatePanelPreview()
}

// updatePanelPreview recomputes the inline panel content for the selected
// entry. A diff fetch failure degrades to a placeholder, never an error.
func (s *State) updatePanelPreview() {
	if !s.showPreviewPanel {
		return
	}
	entry, ok := s.SelectedEntry()
	if !ok {
		s.panelPreview = ""
		s.previewScroll.Reset()
		return
	}
	content, err := s.gw.FileDiff(entry.Path)
	if err != nil {
		s.panelPreview = "No preview available"
	} else {
		s.panelPreview = content
	}
	s.previewScroll.Reset()
}

// ── Navigation ───────────────────────────────────────────────────────────────

// MoveNext advances the selection with wrap-around.
func (s *State) MoveNext() {
	s.cursor.Next(len(s.entries))
	s.updatePanelPreview()
}

// MovePrevious moves the selection back with wrap-around.
func (s *State) MovePrevious() {
	s.cursor.Previous(len(s.entries))
	s.updatePanelPreview()
}

// ── Staging ──────────────────────────────────────────────────────────────────

// ToggleSelected stages or unstages the selected entry, chosen by its
// current staged flag, then refreshes the list.
func (s *State) ToggleSelected() {
	entry, ok := s.SelectedEntry()
	if !ok {
		s.statusMessage = "No file selected"
		return
	}

	var msg string
	var err error
	if entry.Staged() {
		msg, err = s.gw.Unstage(entry.Path)
	} else {
		msg, err = s.gw.Stage(entry.Path)
	}
	if err != nil {
		s.statusMessage = err.Error()
		return
	}
	s.statusMessage = msg
	s.Refresh()
}

// ToggleAll stages or unstages every listed entry through the confirmation
// gate: small lists execute immediately, larger ones transition to Confirm
// mode with the pending action.
func (s *State) ToggleAll() {
	if len(s.entries) == 0 {
		s.statusMessage = "No files to stage"
		return
	}

	action, needsConfirm, message := DecideBulk(s.entries)
	if needsConfirm {
		s.mode = Confirm{Message: message, Action: action}
		return
	}
	s.executeBulk(action)
}

// executeBulk performs the bulk action as a single gateway call.
func (s *State) executeBulk(action BulkAction) {
	var msg string
	var err error
	if action == BulkStageAll {
		msg, err = s.gw.StageAll()
	} else {
		msg, err = s.gw.UnstageAll()
	}
	if err != nil {
		s.statusMessage = err.Error()
		return
	}
	s.statusMessage = msg
	s.Refresh()
}

// HandleConfirm resolves Confirm mode: the pending action executes exactly
// once on confirmation; rejection changes nothing beyond the cancellation
// message. Either way the mode returns to Normal.
func (s *State) HandleConfirm(confirmed bool) {
	confirm, ok := s.mode.(Confirm)
	if !ok {
		return
	}
	s.mode = Normal{}
	if confirmed {
		s.executeBulk(confirm.Action)
		return
	}
	s.statusMessage = "Operation cancelled"
}

// ── Commit ───────────────────────────────────────────────────────────────────

// BeginCommit enters commit-entry mode.
func (s *State) BeginCommit() {
	s.mode = CommitEntry{}
	s.commitInput.Focus()
}

// CancelCommit leaves commit-entry mode and clears the buffer.
func (s *State) CancelCommit() {
	s.commitInput.Reset()
	s.commitInput.Blur()
	s.mode = Normal{}
}

// SubmitCommit validates and submits the commit buffer. An empty or
// whitespace-only message is rejected and the mode stays CommitEntry so the
// user can correct and retry; a gateway failure likewise keeps the mode.
func (s *State) SubmitCommit() {
	message := strings.TrimSpace(s.commitInput.Value())
	if message == "" {
		s.statusMessage = "Commit message cannot be empty"
		return
	}

	out, err := s.gw.Commit(message)
	if err != nil {
		s.statusMessage = err.Error()
		return
	}
	if out == "" {
		out = "Committed: " + message
	}
	s.statusMessage = out
	s.commitInput.Reset()
	s.commitInput.Blur()
	s.mode = Normal{}
	s.Refresh()
}

// ── Stash ────────────────────────────────────────────────────────────────────

// BeginStash enters stash-entry mode.
func (s *State) BeginStash() {
	s.mode = StashEntry{}
	s.stashInput.Focus()
}

// CancelStash leaves stash-entry mode and clears the buffer.
func (s *State) CancelStash() {
	s.stashInput.Reset()
	s.stashInput.Blur()
	s.mode = Normal{}
}

// SubmitStash stashes the working tree. Unlike commits, an empty buffer is
// a valid "stash with no message" submission.
func (s *State) SubmitStash() {
	message := strings.TrimSpace(s.stashInput.Value())

	out, err := s.gw.StashSave(message)
	if err != nil {
		s.statusMessage = err.Error()
		return
	}
	s.statusMessage = out
	s.stashInput.Reset()
	s.stashInput.Blur()
	s.mode = Normal{}
	s.Refresh()
}

// ListStashes surfaces the stash listing as a status message.
func (s *State) ListStashes() {
	out, err := s.gw.StashList()
	if err != nil {
		s.statusMessage = err.Error()
		return
	}
	s.statusMessage = out
}

// ApplyLatestStash applies the most recent stash entry and refreshes.
func (s *State) ApplyLatestStash() {
	out, err := s.gw.StashApplyLatest()
	if err != nil {
		s.statusMessage = err.Error()
		return
	}
	s.statusMessage = out
	s.Refresh()
}

// ── Preview ──────────────────────────────────────────────────────────────────

// ShowPreview enters full-screen preview for the selected entry. With no
// selection the mode stays Normal and an explanatory message is shown.
func (s *State) ShowPreview() {
	entry, ok := s.SelectedEntry()
	if !ok {
		s.statusMessage = "No file selected for preview"
		return
	}
	content, err := s.gw.FileDiff(entry.Path)
	if err != nil {
		s.statusMessage = "Preview error: " + err.Error()
		return
	}
	s.mode = Preview{Content: content, SourcePath: entry.Path}
	s.previewScroll.Reset()
}

// ExitPreview returns to Normal and resets the preview scroll position.
func (s *State) ExitPreview() {
	s.mode = Normal{}
	s.previewScroll.Reset()
}

// TogglePreviewPanel flips the inline preview panel on or off.
func (s *State) TogglePreviewPanel() {
	s.showPreviewPanel = !s.showPreviewPanel
	if s.showPreviewPanel {
		s.updatePanelPreview()
	}
}

// ── Help ─────────────────────────────────────────────────────────────────────

// ShowHelp enters the help screen.
func (s *State) ShowHelp() {
	s.mode = Help{}
	s.helpScroll.Reset()
}

// ExitHelp returns to Normal and resets the help scroll position.
func (s *State) ExitHelp() {
	s.mode = Normal{}
	s.helpScroll.Reset()
}
