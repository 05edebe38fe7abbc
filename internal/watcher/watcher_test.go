package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnorable(t *testing.T) {
	assert.True(t, ignorable("/repo/.git/index.lock"))
	assert.True(t, ignorable("/repo/.git/COMMIT_EDITMSG"))
	assert.True(t, ignorable("/repo/.git/config~"))
	assert.True(t, ignorable("/repo/.git/.#HEAD"))

	assert.False(t, ignorable("/repo/.git/index"))
	assert.False(t, ignorable("/repo/.git/HEAD"))
	assert.False(t, ignorable("/repo/.git/refs/heads/main"))
}

func TestWatchTargetsSkipsMissingRemotes(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))

	targets := watchTargets(gitDir)
	assert.NotContains(t, targets, filepath.Join(gitDir, "refs", "remotes"))

	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "remotes"), 0o755))
	targets = watchTargets(gitDir)
	assert.Contains(t, targets, filepath.Join(gitDir, "refs", "remotes"))
}

func TestWatcherDebouncesIndexWrites(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))

	w, err := New(gitDir, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// A burst of writes must coalesce into a single event.
	for range 3 {
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, "index"), []byte("x"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("expected a refresh event after index writes")
	}

	select {
	case <-w.Events():
		t.Fatal("burst must produce exactly one event")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresLockFiles(t *testing.T) {
	gitDir := t.TempDir()

	w, err := New(gitDir, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "index.lock"), []byte("x"), 0o644))

	select {
	case <-w.Events():
		t.Fatal("lock file writes must not trigger a refresh")
	case <-time.After(200 * time.Millisecond):
	}
}
