package main

import (
	"github.com/spf13/cobra"
)

func newPrCmd() *cobra.Command {
	var checkout bool

	cmd := &cobra.Command{
		Use:   "pr <number>",
		Short: "Create a worktree from a GitHub pull request",
		Args:  cobra.ExactArgs(1),
		Long: `Create a worktree from a GitHub pull request.

The pull request is looked up with gh, its head branch is fetched from
origin and checked out into a new worktree named after the pull request
title.`,
		Example: `  gwm pr 7              # worktree for pull request #7
  gwm pr 7 --checkout   # reuse the worktree if it already exists`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			return runChangeRequest(ctx, a, a.github(), args[0], checkout)
		},
	}

	cmd.Flags().BoolVar(&checkout, "checkout", false, "Print the path instead of failing when the worktree exists")

	return cmd
}
