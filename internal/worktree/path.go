// Package worktree computes worktree paths. Pure string transforms, no
// I/O.
package worktree

import "path/filepath"

// Resolve returns the filesystem path for a worktree called name.
// A relative worktreeDir is resolved against workDir; the result is the
// base joined with name. Trailing slashes in either input are
// irrelevant.
func Resolve(workDir, worktreeDir, name string) string {
	base := worktreeDir
	if !filepath.IsAbs(base) {
		base = filepath.Join(workDir, base)
	}
	return filepath.Join(base, name)
}
