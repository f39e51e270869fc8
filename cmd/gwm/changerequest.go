package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gwm-cli/gwm/internal/forge"
	"github.com/gwm-cli/gwm/internal/git"
	"github.com/gwm-cli/gwm/internal/log"
	"github.com/gwm-cli/gwm/internal/output"
	"github.com/gwm-cli/gwm/internal/postcmd"
	"github.com/gwm-cli/gwm/internal/ui"
)

// runChangeRequest materializes a merge/pull request as a worktree. The
// flow is identical for both forges; only the CLI being shelled out to
// differs.
func runChangeRequest(ctx context.Context, a *app, f forge.Forge, rawID string, checkout bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid change request number: %q", rawID)
	}

	if err := a.requireRepo(ctx); err != nil {
		return err
	}
	cfg, err := a.store.Load()
	if err != nil {
		return err
	}

	if !f.Available() {
		return &forge.Error{Forge: f.Name(), Msg: fmt.Sprintf("%s CLI not found in PATH", f.Name())}
	}
	if !f.IsProject(ctx) {
		return &forge.Error{Forge: f.Name(), Msg: fmt.Sprintf("repository is not a %s project", f.Name())}
	}

	spin := ui.NewSpinner(fmt.Sprintf("Fetching %s %s...", f.Name(), forge.Ref(f, id)))
	spin.Start()
	cr, err := f.Get(ctx, id)
	spin.Stop()
	if err != nil {
		return err
	}

	name := forge.DeriveWorktreeName(f, cr)
	path := a.resolvePath(cfg, name)

	if a.git.WorktreeExists(ctx, path) {
		if checkout {
			// TODO: switch into the worktree once shell integration
			// exists; for now only the path is printed.
			out.Println(path)
			l.Printf("Worktree for %s already exists\n", forge.Ref(f, cr.Number))
			return nil
		}
		return fmt.Errorf("worktree already exists: %s", path)
	}

	if dryRun {
		out.Printf("Would create worktree for %s %q\n", forge.Ref(f, cr.Number), cr.Title)
		out.Printf("  path:   %s\n", path)
		out.Printf("  branch: %s (from origin)\n", cr.SourceBranch)
		for _, line := range postcmd.Plan(cfg.PostCommands, path) {
			out.Printf("  post:   %s\n", line)
		}
		return nil
	}

	if err := forge.FetchBranch(ctx, a.git, f, cr, "origin"); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create worktree directory: %w", err)
	}

	spin = ui.NewSpinner("Creating worktree " + name)
	spin.Start()
	err = a.git.AddWorktree(ctx, path, cr.SourceBranch, git.AddOptions{Checkout: true})
	spin.Stop()
	if err != nil {
		return err
	}

	out.Printf("Created worktree for %s %q\n", forge.Ref(f, cr.Number), cr.Title)
	out.Printf("  %s\n", path)
	if cr.URL != "" {
		l.Printf("%s\n", cr.URL)
	}

	return postcmd.Run(ctx, a.runner, cfg.PostCommands, path)
}
