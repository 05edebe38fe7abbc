package app

// Mode is the top-level input mode. Exactly one mode is active at a time;
// keystrokes mean different things depending on the active variant, and
// mode transitions are the only way entry buffers are cleared or preview
// content is populated.
//
// Implemented as a sealed sum type: only the variants below satisfy it,
// and dispatch sites switch exhaustively over them.
type Mode interface{ isMode() }

// Normal is the default browsing mode over the file list.
type Normal struct{}

// CommitEntry captures keystrokes into the commit message buffer.
type CommitEntry struct{}

// StashEntry captures keystrokes into the stash message buffer.
type StashEntry struct{}

// Confirm gates a pending bulk action behind an explicit y/n answer.
type Confirm struct {
	Message string
	Action  BulkAction
}

// Preview shows a full-screen diff for a single path.
type Preview struct {
	Content    string
	SourcePath string
}

// Help shows the scrollable keybinding reference.
type Help struct{}

func (Normal) isMode()      {}
func (CommitEntry) isMode() {}
func (StashEntry) isMode()  {}
func (Confirm) isMode()     {}
func (Preview) isMode()     {}
func (Help) isMode()        {}
