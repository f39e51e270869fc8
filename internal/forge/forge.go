package forge

import (
	"context"
	"fmt"

	"github.com/gwm-cli/gwm/internal/git"
)

// ChangeRequest is a hosting-platform review unit (pull/merge request),
// fetched fresh per invocation and never persisted.
type ChangeRequest struct {
	Number       int
	Title        string
	SourceBranch string
	TargetBranch string
	State        string
	URL          string
}

// Ref returns the provider's display form of a change request number,
// e.g. "#42" for GitHub or "!42" for GitLab.
func Ref(f Forge, number int) string {
	if f.Name() == "gitlab" {
		return fmt.Sprintf("!%d", number)
	}
	return fmt.Sprintf("#%d", number)
}

// Forge is a hosting provider reachable through its CLI.
type Forge interface {
	// Name returns "github" or "gitlab".
	Name() string

	// FallbackPrefix is used for derived worktree names when the
	// sanitized source branch is too short: "pr" or "mr".
	FallbackPrefix() string

	// Available reports whether the CLI binary resolves on PATH.
	Available() bool

	// Get fetches a change request by number.
	Get(ctx context.Context, id int) (*ChangeRequest, error)

	// IsProject reports whether the working directory belongs to a
	// project on this provider (CLI available and a repo view
	// succeeds).
	IsProject(ctx context.Context) bool
}

// Exists reports whether the change request can be fetched.
func Exists(ctx context.Context, f Forge, id int) bool {
	_, err := f.Get(ctx, id)
	return err == nil
}

// FetchBranch fetches the change request's source branch from the named
// remote into a local branch of the same name. When the local ref cannot
// be created (e.g. it already exists and does not fast-forward), a plain
// fetch updates the remote tracking ref instead.
func FetchBranch(ctx context.Context, g *git.Client, f Forge, cr *ChangeRequest, remote string) error {
	if remote == "" {
		remote = "origin"
	}
	branch := cr.SourceBranch
	if err := g.Fetch(ctx, remote, branch+":"+branch); err != nil {
		if err := g.Fetch(ctx, remote, branch); err != nil {
			return &Error{Forge: f.Name(), Msg: fmt.Sprintf("fetch branch %q from %s", branch, remote), Err: err}
		}
	}
	return nil
}
