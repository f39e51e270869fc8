package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/gwm-cli/gwm/internal/cmd"
)

// Client runs git commands for one working directory.
type Client struct {
	runner cmd.Runner
	dir    string
}

// New creates a Client executing git in dir.
func New(r cmd.Runner, dir string) *Client {
	return &Client{runner: r, dir: dir}
}

// Dir returns the working directory git runs in.
func (c *Client) Dir() string {
	return c.dir
}

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return &Error{Msg: "git not found: please install git (https://git-scm.com)"}
	}
	return nil
}

// output runs git and returns trimmed stdout; non-zero exit becomes an
// *Error described by action.
func (c *Client) output(ctx context.Context, action string, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, c.dir, "git", args...)
	if err != nil {
		return "", &Error{Msg: action, Err: err}
	}
	if res.ExitCode != 0 {
		return "", &Error{Msg: action, Err: cmd.ExitError("git", res)}
	}
	return strings.TrimSpace(res.Stdout), nil
}

// run is output for callers that only care about success.
func (c *Client) run(ctx context.Context, action string, args ...string) error {
	_, err := c.output(ctx, action, args...)
	return err
}

// ok runs git and reduces the outcome to a boolean. Used for existence
// checks, which deliberately swallow the underlying error.
func (c *Client) ok(ctx context.Context, args ...string) bool {
	res, err := c.runner.Run(ctx, c.dir, "git", args...)
	return err == nil && res.ExitCode == 0
}
