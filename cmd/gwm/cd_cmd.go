package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/gwm-cli/gwm/internal/git"
	"github.com/gwm-cli/gwm/internal/log"
	"github.com/gwm-cli/gwm/internal/output"
	"github.com/gwm-cli/gwm/internal/ui"
)

func newCdCmd() *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:   "cd [name]",
		Short: "Print the path of a worktree",
		Args:  cobra.MaximumNArgs(1),
		Long: `Print the path of a worktree so a shell wrapper can cd into it:

  gwcd() { cd "$(gwm cd "$@")" || return; }

Without a name an interactive selector is shown.`,
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
				res, err := ui.SelectWorktree(worktrees)
				if err != nil {
					return err
				}
				if res.Cancelled {
					return nil
				}
				target = res.Worktree
			}

			output.FromContext(ctx).Println(target.Path)

			if copyPath {
				if err := clipboard.WriteAll(target.Path); err != nil {
					log.FromContext(ctx).Warnf("could not copy to clipboard: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}
