package git

import (
	"sync"
	"time"
)

// CachedService wraps a Service implementation with a TTL-based cache for
// the read operations that fire repeatedly within one refresh cycle
// (Status, Head, StashList). Write operations invalidate the cache so the
// next read is fresh.
//
// A single refresh queries status, branch, and possibly a diff; the status
// bar queries branch again. Without caching each of those spawns a git
// subprocess; with a short TTL they hit git once per cycle.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	val    string
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps an existing Service with a TTL cache.
// Recommended TTL: 1-2 seconds, enough to deduplicate the reads of a
// single refresh cycle without serving stale data across user actions.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 8),
	}
}

// Invalidate clears all cached entries. Called after any write operation.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 8)
	c.mu.Unlock()
}

func (c *CachedService) cached(key string, fetch func() (string, error)) (string, error) {
	c.mu.Lock()
	if e, ok := c.cache[key]; ok && time.Now().Before(e.expiry) {
		c.mu.Unlock()
		return e.val, e.err
	}
	c.mu.Unlock()

	val, err := fetch()

	c.mu.Lock()
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return val, err
}

// writeThrough runs a write call and invalidates the cache on success.
func (c *CachedService) writeThrough(msg string, err error) (string, error) {
	if err == nil {
		c.Invalidate()
	}
	return msg, err
}

// ── Repository info ─────────────────────────────────────────────────────────

// RepoRoot delegates to the inner service.
func (c *CachedService) RepoRoot() string { return c.inner.RepoRoot() }

// RepoName delegates to the inner service.
func (c *CachedService) RepoName() string { return c.inner.RepoName() }

// Head returns the current branch name (cached).
func (c *CachedService) Head() (string, error) {
	return c.cached("head", c.inner.Head)
}

// ── Status & staging ────────────────────────────────────────────────────────

// Status returns the raw status text (cached).
func (c *CachedService) Status() (string, error) {
	return c.cached("status", c.inner.Status)
}

// Stage stages a path and invalidates the cache.
func (c *CachedService) Stage(path string) (string, error) {
	return c.writeThrough(c.inner.Stage(path))
}

// Unstage unstages a path and invalidates the cache.
func (c *CachedService) Unstage(path string) (string, error) {
	return c.writeThrough(c.inner.Unstage(path))
}

// StageAll stages all changes and invalidates the cache.
func (c *CachedService) StageAll() (string, error) {
	return c.writeThrough(c.inner.StageAll())
}

// UnstageAll unstages all changes and invalidates the cache.
func (c *CachedService) UnstageAll() (string, error) {
	return c.writeThrough(c.inner.UnstageAll())
}

// ── Commits ─────────────────────────────────────────────────────────────────

// Commit creates a commit and invalidates the cache.
func (c *CachedService) Commit(message string) (string, error) {
	return c.writeThrough(c.inner.Commit(message))
}

// ── Stash ───────────────────────────────────────────────────────────────────

// StashSave saves a stash entry and invalidates the cache.
func (c *CachedService) StashSave(message string) (string, error) {
	return c.writeThrough(c.inner.StashSave(message))
}

// StashList returns the stash listing (cached).
func (c *CachedService) StashList() (string, error) {
	return c.cached("stashlist", c.inner.StashList)
}

// StashApplyLatest applies the latest stash and invalidates the cache.
func (c *CachedService) StashApplyLatest() (string, error) {
	return c.writeThrough(c.inner.StashApplyLatest())
}

// ── Diff (not cached — content is large and changes per-file) ───────────────

// FileDiff delegates to the inner service.
func (c *CachedService) FileDiff(path string) (string, error) {
	return c.inner.FileDiff(path)
}
