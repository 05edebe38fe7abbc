package git

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingService records how often each operation reaches the real gateway.
type countingService struct {
	statusCalls int
	headCalls   int
	stashCalls  int

	status   string
	stageErr error
}

func (c *countingService) RepoRoot() string { return "/repo" }
func (c *countingService) RepoName() string { return "repo" }

func (c *countingService) Head() (string, error) {
	c.headCalls++
	return "main", nil
}

func (c *countingService) Status() (string, error) {
	c.statusCalls++
	return c.status, nil
}

func (c *countingService) Stage(path string) (string, error) {
	return "Staged file: " + path, c.stageErr
}
func (c *countingService) Unstage(path string) (string, error) { return "Unstaged file: " + path, nil }
func (c *countingService) StageAll() (string, error)           { return "All files staged", nil }
func (c *countingService) UnstageAll() (string, error)         { return "All files unstaged", nil }
func (c *countingService) Commit(string) (string, error)       { return "committed", nil }
func (c *countingService) StashSave(string) (string, error)    { return "Changes stashed: x", nil }

func (c *countingService) StashList() (string, error) {
	c.stashCalls++
	return "No stashes found", nil
}

func (c *countingService) StashApplyLatest() (string, error) { return "Latest stash applied", nil }
func (c *countingService) FileDiff(string) (string, error)   { return "diff", nil }

func TestCachedServiceDeduplicatesReads(t *testing.T) {
	inner := &countingService{status: "M  a.go"}
	svc := NewCachedService(inner, time.Minute)

	for range 5 {
		out, err := svc.Status()
		require.NoError(t, err)
		assert.Equal(t, "M  a.go", out)
	}
	_, _ = svc.Head()
	_, _ = svc.Head()
	_, _ = svc.StashList()
	_, _ = svc.StashList()

	assert.Equal(t, 1, inner.statusCalls)
	assert.Equal(t, 1, inner.headCalls)
	assert.Equal(t, 1, inner.stashCalls)
}

func TestCachedServiceWriteInvalidates(t *testing.T) {
	inner := &countingService{status: "M  a.go"}
	svc := NewCachedService(inner, time.Minute)

	_, _ = svc.Status()
	_, err := svc.Stage("a.go")
	require.NoError(t, err)
	_, _ = svc.Status()

	assert.Equal(t, 2, inner.statusCalls, "a successful write must drop the cached status")
}

func TestCachedServiceFailedWriteKeepsCache(t *testing.T) {
	inner := &countingService{status: "M  a.go", stageErr: errors.New("boom")}
	svc := NewCachedService(inner, time.Minute)

	_, _ = svc.Status()
	_, err := svc.Stage("a.go")
	require.Error(t, err)
	_, _ = svc.Status()

	assert.Equal(t, 1, inner.statusCalls)
}

func TestCachedServiceTTLExpiry(t *testing.T) {
	inner := &countingService{status: "M  a.go"}
	svc := NewCachedService(inner, time.Millisecond)

	_, _ = svc.Status()
	time.Sleep(5 * time.Millisecond)
	_, _ = svc.Status()

	assert.Equal(t, 2, inner.statusCalls)
}
