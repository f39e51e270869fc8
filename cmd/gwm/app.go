package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	runcmd "github.com/gwm-cli/gwm/internal/cmd"
	"github.com/gwm-cli/gwm/internal/config"
	"github.com/gwm-cli/gwm/internal/forge"
	"github.com/gwm-cli/gwm/internal/git"
	"github.com/gwm-cli/gwm/internal/worktree"
)

// app bundles the collaborators a command needs. Commands receive
// everything through this struct instead of package-level state, so
// each piece can be replaced in tests.
type app struct {
	runner  runcmd.Runner
	git     *git.Client
	store   *config.Store
	workDir string
}

// newApp wires the default collaborators for the current working
// directory. The local config path anchors at the repository root when
// inside a repository, otherwise at the working directory.
func newApp(ctx context.Context) (*app, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	runner := runcmd.System{}
	g := git.New(runner, workDir)

	globalPath := configOverride
	if globalPath == "" {
		globalPath, err = config.DefaultGlobalPath()
		if err != nil {
			return nil, fmt.Errorf("locate global config: %w", err)
		}
	}

	localDir := workDir
	if root, err := g.Root(ctx); err == nil {
		localDir = root
	}

	return &app{
		runner:  runner,
		git:     g,
		store:   config.NewStore(globalPath, config.LocalPathIn(localDir)),
		workDir: workDir,
	}, nil
}

// requireRepo fails unless the working directory is inside a git
// repository.
func (a *app) requireRepo(ctx context.Context) error {
	if !a.git.IsRepo(ctx) {
		return errors.New("not a git repository (run gwm inside a repository)")
	}
	return nil
}

// namePrefix resolves the configured worktree name prefix.
func (a *app) namePrefix(ctx context.Context, cfg config.Config) (string, error) {
	switch cfg.Prefix {
	case config.PrefixManual:
		return cfg.ManualPrefix, nil
	case config.PrefixDetect:
		return a.git.Prefix(ctx)
	default:
		return "", nil
	}
}

// resolvePath computes the filesystem path for a worktree name.
func (a *app) resolvePath(cfg config.Config, name string) string {
	return worktree.Resolve(a.workDir, cfg.WorktreeDir, name)
}

// findWorktree looks a worktree up by name, also trying the configured
// prefix so users can type the short name they gave to `gwm new`.
func (a *app) findWorktree(ctx context.Context, cfg config.Config, name string) (git.Worktree, bool) {
	if w, ok := a.git.FindWorktree(ctx, name); ok {
		return w, true
	}
	prefix, err := a.namePrefix(ctx, cfg)
	if err != nil || prefix == "" {
		return git.Worktree{}, false
	}
	return a.git.FindWorktree(ctx, prefix+name)
}

func (a *app) github() forge.Forge {
	return forge.NewGitHub(a.runner, a.workDir)
}

func (a *app) gitlab() forge.Forge {
	return forge.NewGitLab(a.runner, a.workDir)
}
