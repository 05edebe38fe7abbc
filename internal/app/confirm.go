package app

import (
	"fmt"

	"github.com/stagehand-dev/stagehand/internal/git"
)

// BulkAction identifies the pending bulk operation behind a confirmation.
type BulkAction int

// Bulk actions over the whole entry list.
const (
	BulkStageAll BulkAction = iota
	BulkUnstageAll
)

// bulkConfirmThreshold is the largest entry count a bulk stage/unstage may
// touch without an explicit confirmation.
const bulkConfirmThreshold = 5

// DecideBulk classifies a bulk toggle over the given entries: which action
// it would perform, and whether it must be confirmed first.
//
// The action is inferred from the mix: if any entry is unstaged the bulk
// stages everything, otherwise it unstages everything. Confirmation is
// required only above the threshold; the message states the count and the
// action so the user knows exactly what a "y" does.
func DecideBulk(entries []git.StatusEntry) (action BulkAction, needsConfirm bool, message string) {
	action = BulkUnstageAll
	for _, e := range entries {
		if !e.Staged() {
			action = BulkStageAll
			break
		}
	}

	if len(entries) <= bulkConfirmThreshold {
		return action, false, ""
	}

	verb := "Unstage"
	if action == BulkStageAll {
		verb = "Stage"
	}
	return action, true, fmt.Sprintf("%s all %d files? (y/n)", verb, len(entries))
}
