package git

import "context"

// IsRepo reports whether the working directory is inside a git
// repository.
func (c *Client) IsRepo(ctx context.Context) bool {
	return c.ok(ctx, "rev-parse", "--is-inside-work-tree")
}

// Root returns the top-level directory of the repository.
func (c *Client) Root(ctx context.Context) (string, error) {
	return c.output(ctx, "resolve repository root", "rev-parse", "--show-toplevel")
}

// CurrentBranch returns the checked-out branch name, or "" for a
// detached HEAD.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	return c.output(ctx, "get current branch", "branch", "--show-current")
}

// BranchExists reports whether a local branch exists.
func (c *Client) BranchExists(ctx context.Context, name string) bool {
	return c.ok(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
}

// RemoteBranchExists reports whether a branch exists on the named
// remote. This asks the remote, so it costs a network round trip.
func (c *Client) RemoteBranchExists(ctx context.Context, name, remote string) bool {
	if remote == "" {
		remote = "origin"
	}
	return c.ok(ctx, "ls-remote", "--exit-code", "--heads", remote, name)
}

// Fetch runs `git fetch <remote> <refspec>`.
func (c *Client) Fetch(ctx context.Context, remote, refspec string) error {
	args := []string{"fetch", remote}
	if refspec != "" {
		args = append(args, refspec)
	}
	return c.run(ctx, "fetch "+remote, args...)
}

// Push pushes a branch, optionally setting its upstream.
func (c *Client) Push(ctx context.Context, dir, remote, branch string, setUpstream bool) error {
	args := []string{}
	if dir != "" {
		args = append(args, "-C", dir)
	}
	args = append(args, "push")
	if setUpstream {
		args = append(args, "-u")
	}
	args = append(args, remote, branch)
	return c.run(ctx, "push "+branch, args...)
}

// DeleteBranch deletes a local branch.
func (c *Client) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return c.run(ctx, "delete branch "+name, "branch", flag, name)
}

// DeleteRemoteBranch deletes a branch on the named remote.
func (c *Client) DeleteRemoteBranch(ctx context.Context, remote, name string) error {
	return c.run(ctx, "delete remote branch "+name, "push", remote, "--delete", name)
}
