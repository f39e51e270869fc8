package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gwm-cli/gwm/internal/log"
)

// Worktree is one record from `git worktree list --porcelain`.
type Worktree struct {
	Path     string
	Branch   string // empty for bare or detached worktrees
	Commit   string
	Bare     bool
	Detached bool
}

// Name returns the final path segment of the worktree, tolerating both
// forward and backward slashes.
func (w Worktree) Name() string {
	return lastSegment(w.Path)
}

// Worktrees lists all worktrees registered with the repository.
func (c *Client) Worktrees(ctx context.Context) ([]Worktree, error) {
	out, err := c.output(ctx, "list worktrees", "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktrees(out), nil
}

// parseWorktrees parses the porcelain block format: a "worktree <path>"
// line opens a record; lines until the next marker (or end of input) fill
// in commit, branch, bare and detached. The record is appended only once
// the next marker or the end of input is reached.
func parseWorktrees(out string) []Worktree {
	var (
		worktrees []Worktree
		current   *Worktree
	)

	flush := func() {
		if current != nil {
			worktrees = append(worktrees, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case current == nil:
			// Ignore anything before the first marker.
		case strings.HasPrefix(line, "HEAD "):
			current.Commit = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		case line == "bare":
			current.Bare = true
		case line == "detached":
			current.Detached = true
		}
	}
	flush()

	return worktrees
}

// WorktreeExists reports whether a worktree is registered at path,
// comparing canonicalized paths.
func (c *Client) WorktreeExists(ctx context.Context, path string) bool {
	worktrees, err := c.Worktrees(ctx)
	if err != nil {
		return false
	}
	want := canonicalPath(path)
	for _, w := range worktrees {
		if canonicalPath(w.Path) == want {
			return true
		}
	}
	return false
}

// FindWorktree returns the worktree whose name (final path segment)
// equals name, or false if there is none.
func (c *Client) FindWorktree(ctx context.Context, name string) (Worktree, bool) {
	worktrees, err := c.Worktrees(ctx)
	if err != nil {
		return Worktree{}, false
	}
	for _, w := range worktrees {
		if w.Name() == name {
			return w, true
		}
	}
	return Worktree{}, false
}

// AddOptions control how a worktree is created.
type AddOptions struct {
	CreateBranch bool // create the branch at the new worktree
	Checkout     bool // check out the existing branch (when not creating)
	Force        bool // bypass git's checks for an already-registered path
}

// AddWorktree creates a worktree at path. With CreateBranch a new branch
// is created; with Checkout the existing branch is checked out; with
// neither, the worktree is created detached.
func (c *Client) AddWorktree(ctx context.Context, path, branch string, opts AddOptions) error {
	args := []string{"worktree", "add"}
	if opts.Force {
		args = append(args, "--force")
	}
	switch {
	case opts.CreateBranch:
		args = append(args, "-b", branch, path)
	case opts.Checkout:
		args = append(args, path, branch)
	default:
		args = append(args, "--detach", path)
	}
	return c.run(ctx, "add worktree "+path, args...)
}

// RemoveWorktree removes a worktree. If git's removal fails, force was
// requested and the directory still exists, the fallback deletes the
// directory and prunes stale metadata; a failed fallback is logged as a
// warning and the original removal error is returned.
func (c *Client) RemoveWorktree(ctx context.Context, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)

	removeErr := c.run(ctx, "remove worktree "+path, args...)
	if removeErr == nil || !force {
		return removeErr
	}
	if _, err := os.Stat(path); err != nil {
		return removeErr
	}

	l := log.FromContext(ctx)
	l.Printf("git could not remove %s, deleting directory manually\n", path)
	if err := os.RemoveAll(path); err != nil {
		l.Warnf("manual removal of %s failed: %v\n", path, err)
		return removeErr
	}
	if err := c.PruneWorktrees(ctx); err != nil {
		l.Warnf("pruning worktree metadata failed: %v\n", err)
		return removeErr
	}
	return nil
}

// PruneWorktrees removes stale worktree metadata.
func (c *Client) PruneWorktrees(ctx context.Context) error {
	return c.run(ctx, "prune worktrees", "worktree", "prune")
}

// canonicalPath resolves symlinks and relative segments so two spellings
// of the same location compare equal. Paths that do not exist are only
// cleaned.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}

// lastSegment returns the part of a path after the last separator,
// supporting both / and \ so listings from other platforms match.
func lastSegment(path string) string {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
