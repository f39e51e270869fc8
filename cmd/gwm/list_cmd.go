package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gwm-cli/gwm/internal/output"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List worktrees",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			if err := a.requireRepo(ctx); err != nil {
				return err
			}

			worktrees, err := a.git.Worktrees(ctx)
			if err != nil {
				return err
			}

			out := output.FromContext(ctx)
			tw := tabwriter.NewWriter(out.Writer(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBRANCH\tCOMMIT\tPATH")
			for _, w := range worktrees {
				branch := w.Branch
				switch {
				case w.Bare:
					branch = "(bare)"
				case w.Detached:
					branch = "(detached)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", w.Name(), branch, shortCommit(w.Commit), w.Path)
			}
			return tw.Flush()
		},
	}
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return strings.TrimSpace(commit)
}
