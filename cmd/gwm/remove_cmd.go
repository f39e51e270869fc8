package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwm-cli/gwm/internal/git"
	"github.com/gwm-cli/gwm/internal/log"
	"github.com/gwm-cli/gwm/internal/output"
	"github.com/gwm-cli/gwm/internal/ui"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm"},
		Short:   "Remove a worktree",
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove a worktree by name.

Without a name an interactive selector is shown. After removal you are
offered to delete the local branch, and the remote branch if one
exists.`,
		Example: `  gwm rm feature-x        # remove by name
  gwm rm                  # pick interactively
  gwm rm feature-x -f     # skip confirmation, discard local changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			if err := a.requireRepo(ctx); err != nil {
				return err
			}
			cfg, err := a.store.Load()
			if err != nil {
				return err
			}

			var target git.Worktree
			if len(args) == 1 {
				w, ok := a.findWorktree(ctx, cfg, args[0])
				if !ok {
					return fmt.Errorf("no worktree named %q", args[0])
				}
				target = w
			} else {
				if !ui.Interactive() {
					return errors.New("no worktree name given and not running in a terminal")
				}
				worktrees, err := a.git.Worktrees(ctx)
				if err != nil {
					return err
				}
				candidates := removable(worktrees)
				if len(candidates) == 0 {
					return errors.New("no removable worktrees")
				}
				res, err := ui.SelectWorktree(candidates)
				if err != nil {
					return err
				}
				if res.Cancelled {
					return nil
				}
				target = res.Worktree
			}

			if target.Bare {
				return fmt.Errorf("refusing to remove the bare repository at %s", target.Path)
			}
			if isMain, ok := mainWorktree(ctx, a, target); ok && isMain {
				return fmt.Errorf("refusing to remove the main worktree at %s", target.Path)
			}

			out := output.FromContext(ctx)
			if dryRun {
				out.Printf("Would remove worktree %s\n", target.Path)
				if target.Branch != "" {
					out.Printf("  branch: %s (kept)\n", target.Branch)
				}
				return nil
			}

			if !force {
				if !ui.Interactive() {
					return errors.New("refusing to remove without --force outside a terminal")
				}
				res, err := ui.Confirm(fmt.Sprintf("Remove worktree %s?", target.Name()))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					return nil
				}
			}

			if err := a.git.RemoveWorktree(ctx, target.Path, force); err != nil {
				return err
			}
			out.Printf("Removed worktree %s\n", target.Path)

			if target.Branch != "" {
				offerBranchDeletion(ctx, a, target.Branch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation and discard uncommitted changes")

	return cmd
}

// removable filters out the bare repository entry, which `git worktree
// list` reports alongside regular worktrees.
func removable(worktrees []git.Worktree) []git.Worktree {
	out := make([]git.Worktree, 0, len(worktrees))
	for _, w := range worktrees {
		if w.Bare {
			continue
		}
		out = append(out, w)
	}
	return out
}

// mainWorktree reports whether w is the primary checkout. The first
// non-bare entry in the listing is the main worktree.
func mainWorktree(ctx context.Context, a *app, w git.Worktree) (bool, bool) {
	worktrees, err := a.git.Worktrees(ctx)
	if err != nil {
		return false, false
	}
	for _, candidate := range worktrees {
		if candidate.Bare {
			continue
		}
		return candidate.Path == w.Path, true
	}
	return false, false
}

// offerBranchDeletion interactively offers to delete the local branch
// and, if present, the remote branch. Declining or any prompt failure
// leaves the branches alone; the worktree removal already succeeded.
func offerBranchDeletion(ctx context.Context, a *app, branch string) {
	if !ui.Interactive() {
		return
	}
	l := log.FromContext(ctx)

	res, err := ui.Confirm(fmt.Sprintf("Delete local branch %s?", branch))
	if err != nil || !res.Confirmed {
		return
	}
	if err := a.git.DeleteBranch(ctx, branch, true); err != nil {
		l.Warnf("could not delete branch %s: %v\n", branch, err)
		return
	}
	l.Printf("Deleted branch %s\n", branch)

	if !a.git.RemoteBranchExists(ctx, branch, "origin") {
		return
	}
	res, err = ui.Confirm(fmt.Sprintf("Delete remote branch origin/%s?", branch))
	if err != nil || !res.Confirmed {
		return
	}
	if err := a.git.DeleteRemoteBranch(ctx, "origin", branch); err != nil {
		l.Warnf("could not delete remote branch %s: %v\n", branch, err)
		return
	}
	l.Printf("Deleted remote branch origin/%s\n", branch)
}
