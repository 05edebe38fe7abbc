package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		want          []StatusEntry
		wantMalformed int
	}{
		{
			name: "empty input",
			raw:  "",
		},
		{
			name: "staged modification",
			raw:  "M  src/a.go",
			want: []StatusEntry{{IndexFlag: 'M', WorktreeFlag: ' ', Path: "src/a.go"}},
		},
		{
			name: "unstaged modification",
			raw:  " M src/a.go",
			want: []StatusEntry{{IndexFlag: ' ', WorktreeFlag: 'M', Path: "src/a.go"}},
		},
		{
			name: "untracked file",
			raw:  "?? new.txt",
			want: []StatusEntry{{IndexFlag: '?', WorktreeFlag: '?', Path: "new.txt"}},
		},
		{
			name: "order preserved and blank lines skipped",
			raw:  "M  b.go\n\n A a.go\nD  c.go\n",
			want: []StatusEntry{
				{IndexFlag: 'M', WorktreeFlag: ' ', Path: "b.go"},
				{IndexFlag: ' ', WorktreeFlag: 'A', Path: "a.go"},
				{IndexFlag: 'D', WorktreeFlag: ' ', Path: "c.go"},
			},
		},
		{
			name:          "short line counted malformed",
			raw:           "M\nM  ok.go",
			want:          []StatusEntry{{IndexFlag: 'M', WorktreeFlag: ' ', Path: "ok.go"}},
			wantMalformed: 1,
		},
		{
			name:          "flags without path counted malformed",
			raw:           "M   \n?? keep.txt",
			want:          []StatusEntry{{IndexFlag: '?', WorktreeFlag: '?', Path: "keep.txt"}},
			wantMalformed: 1,
		},
		{
			name: "path with spaces survives after separator trim",
			raw:  "M  dir/my file.txt",
			want: []StatusEntry{{IndexFlag: 'M', WorktreeFlag: ' ', Path: "dir/my file.txt"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, malformed := ParseStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMalformed, malformed)
		})
	}
}

func TestStatusEntryStaged(t *testing.T) {
	tests := []struct {
		name   string
		entry  StatusEntry
		staged bool
	}{
		{"index modified", StatusEntry{IndexFlag: 'M', WorktreeFlag: ' '}, true},
		{"index added", StatusEntry{IndexFlag: 'A', WorktreeFlag: ' '}, true},
		{"worktree only", StatusEntry{IndexFlag: ' ', WorktreeFlag: 'M'}, false},
		{"untracked", StatusEntry{IndexFlag: '?', WorktreeFlag: '?'}, false},
		{"partially staged counts as staged", StatusEntry{IndexFlag: 'M', WorktreeFlag: 'M'}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.staged, tt.entry.Staged())
		})
	}
}

func TestStatusEntryPartiallyStaged(t *testing.T) {
	assert.True(t, StatusEntry{IndexFlag: 'M', WorktreeFlag: 'M'}.PartiallyStaged())
	assert.False(t, StatusEntry{IndexFlag: 'M', WorktreeFlag: ' '}.PartiallyStaged())
	assert.False(t, StatusEntry{IndexFlag: ' ', WorktreeFlag: 'M'}.PartiallyStaged())
	assert.False(t, StatusEntry{IndexFlag: '?', WorktreeFlag: '?'}.PartiallyStaged())
}

func TestParseStashCount(t *testing.T) {
	require.Equal(t, 0, ParseStashCount(""))
	require.Equal(t, 2, ParseStashCount("stash@{0}: WIP on main\nstash@{1}: fix\n"))
}
