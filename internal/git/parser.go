package git

import "strings"

// ParseStatus parses the raw multi-line output of a porcelain status query
// into an ordered slice of StatusEntry, one per non-empty line.
//
// Line contract: the first two characters are the index/worktree flags, and
// whatever follows, left-trimmed, is the path. Lines shorter than two
// characters — or whose path trims to nothing — are malformed; they are
// excluded from the result and counted, never raised as an error. Output
// order matches input order; the gateway's ordering is preserved as-is.
func ParseStatus(raw string) (entries []StatusEntry, malformed int) {
	if raw == "" {
		return nil, 0
	}

	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		if len(line) < 2 {
			malformed++
			continue
		}
		path := strings.TrimLeft(line[2:], " \t")
		if path == "" {
			malformed++
			continue
		}
		entries = append(entries, StatusEntry{
			IndexFlag:    StatusCode(line[0]),
			WorktreeFlag: StatusCode(line[1]),
			Path:         path,
		})
	}
	return entries, malformed
}

// ParseStashCount returns the number of stash entries in `stash list` output.
func ParseStashCount(raw string) int {
	n := 0
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "stash@{") {
			n++
		}
	}
	return n
}
