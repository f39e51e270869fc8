package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gwm-cli/gwm/internal/git"
	"github.com/gwm-cli/gwm/internal/log"
	"github.com/gwm-cli/gwm/internal/output"
	"github.com/gwm-cli/gwm/internal/postcmd"
	"github.com/gwm-cli/gwm/internal/ui"
)

func newNewCmd() *cobra.Command {
	var (
		branch string
		noPush bool
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a worktree with a new branch",
		Args:  cobra.ExactArgs(1),
		Long: `Create a worktree with a new branch.

The worktree name is the given name with the configured prefix applied;
the branch defaults to the given name. After creation the configured
post-commands run inside the worktree and the branch is pushed upstream
unless --no-push is given.`,
		Example: `  gwm new feature-x               # worktree + branch feature-x
  gwm new feature-x -b wip/feat   # custom branch name
  gwm new feature-x --no-push     # skip the upstream push
  gwm new feature-x --dry-run     # show the plan only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

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

			prefix, err := a.namePrefix(ctx, cfg)
			if err != nil {
				return err
			}
			name := prefix + args[0]
			path := a.resolvePath(cfg, name)

			branchName := branch
			if branchName == "" {
				branchName = args[0]
			}

			if a.git.WorktreeExists(ctx, path) {
				return fmt.Errorf("worktree already exists: %s", path)
			}
			if a.git.BranchExists(ctx, branchName) {
				return fmt.Errorf("branch %q already exists", branchName)
			}

			if dryRun {
				out.Printf("Would create worktree %s\n", name)
				out.Printf("  path:   %s\n", path)
				out.Printf("  branch: %s (new)\n", branchName)
				for _, line := range postcmd.Plan(cfg.PostCommands, path) {
					out.Printf("  post:   %s\n", line)
				}
				if !noPush {
					out.Printf("  push:   origin %s (set upstream)\n", branchName)
				}
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create worktree directory: %w", err)
			}

			spin := ui.NewSpinner("Creating worktree " + name)
			spin.Start()
			err = a.git.AddWorktree(ctx, path, branchName, git.AddOptions{CreateBranch: true})
			spin.Stop()
			if err != nil {
				return err
			}
			out.Printf("Created worktree %s\n", path)

			if err := postcmd.Run(ctx, a.runner, cfg.PostCommands, path); err != nil {
				return err
			}

			if !noPush {
				l.Printf("Pushing %s to origin...\n", branchName)
				if err := a.git.Push(ctx, path, "origin", branchName, true); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch name (default: the worktree name without prefix)")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Do not push the new branch upstream")

	return cmd
}
