package git

// Service is the gateway to the underlying version-control system.
// The application state machine depends on this interface, never on
// exec.Command directly, so tests can substitute a fake returning
// scripted text.
//
// Every call is a full request/response: the gateway keeps no state the
// application can observe, and the caller blocks until the call returns.
type Service interface {
	// ── Repository info ──────────────────────────────────────────────
	RepoRoot() string
	RepoName() string
	Head() (string, error)

	// ── Status & staging ─────────────────────────────────────────────

	// Status returns the raw porcelain status text, one line per change.
	Status() (string, error)
	Stage(path string) (string, error)
	Unstage(path string) (string, error)
	StageAll() (string, error)
	UnstageAll() (string, error)

	// ── Commits ──────────────────────────────────────────────────────
	Commit(message string) (string, error)

	// ── Stash ────────────────────────────────────────────────────────

	// StashSave stashes the working tree; an empty message stashes
	// without one.
	StashSave(message string) (string, error)
	StashList() (string, error)
	StashApplyLatest() (string, error)

	// ── Diff ─────────────────────────────────────────────────────────

	// FileDiff returns the diff for a single path, falling back to the
	// raw file content when no diff exists (the untracked-file case).
	FileDiff(path string) (string, error)
}
