// Package watcher notifies the UI when repository state changes behind its
// back. It watches only the handful of .git-internal paths that move on
// meaningful operations (index, HEAD, refs) rather than the working tree,
// so watch descriptors stay bounded no matter how large the checkout is.
// Working-tree edits still reach the user through the manual refresh key.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that repository state changed and a refresh is warranted.
type Event struct{}

// Watcher debounces .git-internal filesystem events into a refresh channel.
type Watcher struct {
	fs       *fsnotify.Watcher
	events   chan Event
	done     chan struct{}
	debounce time.Duration
}

// New watches gitDir (the absolute .git directory) and delivers one Event
// per debounce window on Events(). Close tears it down.
func New(gitDir string, debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fs,
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
		debounce: debounce,
	}

	for _, dir := range watchTargets(gitDir) {
		// Missing dirs are fine; a fresh repo may not have refs/remotes yet.
		_ = fs.Add(dir)
	}

	go w.loop()
	return w, nil
}

// Events returns the debounced refresh channel.
func (w *Watcher) Events() <-chan Event { return w.events }

// Close stops the watcher and releases its descriptors.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

// watchTargets lists the directories whose contents reflect index, HEAD,
// and ref movement. Watching the directories (not the files) survives the
// rename-over-replace pattern git uses for atomic updates.
func watchTargets(gitDir string) []string {
	targets := []string{
		gitDir,
		filepath.Join(gitDir, "refs"),
		filepath.Join(gitDir, "refs", "heads"),
	}
	remotes := filepath.Join(gitDir, "refs", "remotes")
	if info, err := os.Stat(remotes); err == nil && info.IsDir() {
		targets = append(targets, remotes)
	}
	return targets
}

func (w *Watcher) loop() {
	defer close(w.events)

	var pending *time.Timer
	fire := func() <-chan time.Time {
		if pending == nil {
			return nil
		}
		return pending.C
	}

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ignorable(ev.Name) {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(w.debounce)
			} else {
				pending.Reset(w.debounce)
			}
		case <-fire():
			pending = nil
			select {
			case w.events <- Event{}:
			default:
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// ignorable filters out events that never indicate a state change worth a
// refresh. Lock files are the critical case: git holds them mid-operation
// and re-invoking git while they exist can fail or deadlock the UI.
func ignorable(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, ".lock"):
		return true
	case base == "COMMIT_EDITMSG":
		return true
	case strings.HasSuffix(base, "~"), strings.HasPrefix(base, ".#"):
		return true
	}
	return false
}
