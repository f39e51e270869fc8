package main

import (
	"github.com/spf13/cobra"
)

func newMrCmd() *cobra.Command {
	var checkout bool

	cmd := &cobra.Command{
		Use:   "mr <number>",
		Short: "Create a worktree from a GitLab merge request",
		Args:  cobra.ExactArgs(1),
		Long: `Create a worktree from a GitLab merge request.

The merge request is looked up with glab, its source branch is fetched
from origin and checked out into a new worktree named after the merge
request title.`,
		Example: `  gwm mr 42              # worktree for merge request !42
  gwm mr 42 --checkout   # reuse the worktree if it already exists`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			return runChangeRequest(ctx, a, a.gitlab(), args[0], checkout)
		},
	}

	cmd.Flags().BoolVar(&checkout, "checkout", false, "Print the path instead of failing when the worktree exists")

	return cmd
}
