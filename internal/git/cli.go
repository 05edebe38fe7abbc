package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotARepo is returned when the path is not inside a Git repository.
var ErrNotARepo = errors.New("not a git repository")

// cmdTimeout is the maximum duration any single git command may run.
// Prevents a hung external process from hanging the interface forever.
const cmdTimeout = 30 * time.Second

// CLIService implements Service by shelling out to the git CLI.
//   - GIT_OPTIONAL_LOCKS=0 on read commands (no lock contention)
//   - Context-based timeouts prevent hangs
//   - Stdout/Stderr separated — stderr noise doesn't corrupt output
type CLIService struct {
	root   string // Absolute path to the repo root.
	gitDir string // Path to the .git directory.
}

// Compile-time check that CLIService implements Service.
var _ Service = (*CLIService)(nil)

// NewCLIService opens a Git repository at the given path.
func NewCLIService(path string) (*CLIService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	topLevel, err := runGit(abs, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNotARepo
	}
	gitDir, err := runGit(abs, nil, "rev-parse", "--git-dir")
	if err != nil {
		return nil, fmt.Errorf("finding .git directory: %w", err)
	}
	gd := strings.TrimSpace(gitDir)
	if !filepath.IsAbs(gd) {
		gd = filepath.Join(strings.TrimSpace(topLevel), gd)
	}
	return &CLIService{
		root:   strings.TrimSpace(topLevel),
		gitDir: gd,
	}, nil
}

// GitDir returns the path to the .git directory.
func (s *CLIService) GitDir() string { return s.gitDir }

// ── helpers ─────────────────────────────────────────────────────────────────

// readEnv is the environment set on all read-only git commands.
// GIT_OPTIONAL_LOCKS=0 prevents git from acquiring optional locks,
// which matters in large repos where lock contention stalls readers.
var readEnv = []string{"GIT_OPTIONAL_LOCKS=0"}

// run executes a git command at the repo root with read-optimised env.
func (s *CLIService) run(args ...string) (string, error) {
	return runGit(s.root, readEnv, args...)
}

// runWrite executes a write git command (no optional-locks override).
func (s *CLIService) runWrite(args ...string) (string, error) {
	return runGit(s.root, nil, args...)
}

// runGit executes a git command with a context timeout.
// Stdout and stderr are separated so stderr noise doesn't corrupt output.
func runGit(dir string, extraEnv []string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), errMsg, err)
	}
	return stdout.String(), nil
}

// ── Repository info ─────────────────────────────────────────────────────────

// RepoRoot returns the repository root path.
func (s *CLIService) RepoRoot() string { return s.root }

// RepoName returns the repository name derived from the root directory.
func (s *CLIService) RepoName() string { return filepath.Base(s.root) }

// Head returns the current branch name, or the short hash when detached.
func (s *CLIService) Head() (string, error) {
	ref, err := s.run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		hash, hashErr := s.run("rev-parse", "--short", "HEAD")
		if hashErr != nil {
			return "", fmt.Errorf("getting HEAD: %w", err)
		}
		return strings.TrimSpace(hash), nil
	}
	return strings.TrimSpace(ref), nil
}

// ── Status & staging ────────────────────────────────────────────────────────

// Status returns the raw porcelain status output.
func (s *CLIService) Status() (string, error) {
	out, err := s.run("status", "--porcelain", "--no-optional-locks")
	if err != nil {
		return "", fmt.Errorf("getting status: %w", err)
	}
	return out, nil
}

// Stage stages a single path.
func (s *CLIService) Stage(path string) (string, error) {
	if _, err := s.runWrite("add", "--", path); err != nil {
		return "", err
	}
	return "Staged file: " + path, nil
}

// Unstage removes a single path from the index.
func (s *CLIService) Unstage(path string) (string, error) {
	if _, err := s.runWrite("reset", "--", path); err != nil {
		return "", err
	}
	return "Unstaged file: " + path, nil
}

// StageAll stages every change in one call.
func (s *CLIService) StageAll() (string, error) {
	if _, err := s.runWrite("add", "."); err != nil {
		return "", err
	}
	return "All files staged", nil
}

// UnstageAll resets the whole index in one call.
func (s *CLIService) UnstageAll() (string, error) {
	if _, err := s.runWrite("reset"); err != nil {
		return "", err
	}
	return "All files unstaged", nil
}

// ── Commits ─────────────────────────────────────────────────────────────────

// Commit creates a new commit with the given message.
func (s *CLIService) Commit(message string) (string, error) {
	out, err := s.runWrite("commit", "-m", message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ── Stash ───────────────────────────────────────────────────────────────────

// StashSave pushes a new stash entry. An empty message stashes without one.
func (s *CLIService) StashSave(message string) (string, error) {
	args := []string{"stash", "push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	out, err := s.runWrite(args...)
	if err != nil {
		return "", err
	}
	if strings.Contains(out, "No local changes to save") {
		return "No changes to stash", nil
	}
	return "Changes stashed: " + strings.TrimSpace(out), nil
}

// StashList returns the raw `stash list` output.
func (s *CLIService) StashList() (string, error) {
	out, err := s.run("stash", "list")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "No stashes found", nil
	}
	return "Stashes:\n" + out, nil
}

// StashApplyLatest applies the most recent stash entry.
func (s *CLIService) StashApplyLatest() (string, error) {
	if _, err := s.runWrite("stash", "apply"); err != nil {
		return "", err
	}
	return "Latest stash applied", nil
}

// ── Diff ────────────────────────────────────────────────────────────────────

// FileDiff returns the unified diff for a path. Untracked files have no diff,
// so it falls back to the staged diff and finally the raw file content.
func (s *CLIService) FileDiff(path string) (string, error) {
	out, err := s.run("diff", "--color=never", "--no-optional-locks", "--no-ext-diff", "--", path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) != "" {
		return out, nil
	}

	out, err = s.run("diff", "--cached", "--color=never", "--no-optional-locks", "--no-ext-diff", "--", path)
	if err == nil && strings.TrimSpace(out) != "" {
		return out, nil
	}

	data, readErr := os.ReadFile(filepath.Join(s.root, path))
	if readErr != nil {
		return "", fmt.Errorf("no diff for %s: %w", path, readErr)
	}
	return string(data), nil
}
