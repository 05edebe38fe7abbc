package git

// StatusCode represents a single-character status flag from porcelain output.
type StatusCode byte

// Status flags as reported by the porcelain status format.
const (
	StatusUnmodified StatusCode = ' '
	StatusModified   StatusCode = 'M'
	StatusAdded      StatusCode = 'A'
	StatusDeleted    StatusCode = 'D'
	StatusUntracked  StatusCode = '?'
)

// String returns the single-character representation.
func (s StatusCode) String() string { return string(s) }

// Label returns a human-readable description of the status.
func (s StatusCode) Label() string {
	switch s {
	case StatusModified:
		return "Modified"
	case StatusAdded:
		return "Added"
	case StatusDeleted:
		return "Deleted"
	case StatusUntracked:
		return "Untracked"
	default:
		return ""
	}
}

// StatusEntry is one changed path in the working tree, carrying both the
// index (staged) flag and the worktree (unstaged) flag from its status line.
// Entries are never mutated in place: a refresh replaces the whole slice.
type StatusEntry struct {
	IndexFlag    StatusCode
	WorktreeFlag StatusCode
	Path         string
}

// Staged reports whether the entry is staged for the next commit.
//
// The space flag means the index holds nothing for this path, and untracked
// entries carry '?' in both columns, so '?' counts as unstaged as well.
func (e StatusEntry) Staged() bool {
	return e.IndexFlag != StatusUnmodified && e.IndexFlag != StatusUntracked
}

// PartiallyStaged reports whether the entry has both staged and unstaged
// changes (e.g. "MM": staged edits plus later worktree edits).
func (e StatusEntry) PartiallyStaged() bool {
	return e.Staged() && e.WorktreeFlag != StatusUnmodified && e.WorktreeFlag != StatusUntracked
}
