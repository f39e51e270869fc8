package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/gwm-cli/gwm/internal/cmd"
)

// GitHub implements Forge using the gh CLI.
type GitHub struct {
	runner   cmd.Runner
	dir      string
	lookPath func(string) (string, error)
}

// NewGitHub creates a GitHub forge running gh in dir.
func NewGitHub(r cmd.Runner, dir string) *GitHub {
	return &GitHub{runner: r, dir: dir, lookPath: exec.LookPath}
}

func (g *GitHub) Name() string           { return "github" }
func (g *GitHub) FallbackPrefix() string { return "pr" }

// Available reports whether the gh binary resolves on PATH.
func (g *GitHub) Available() bool {
	_, err := g.lookPath("gh")
	return err == nil
}

// Get fetches a pull request by number.
func (g *GitHub) Get(ctx context.Context, id int) (*ChangeRequest, error) {
	if !g.Available() {
		return nil, &Error{Forge: "github", Msg: "gh not found: please install GitHub CLI (https://cli.github.com)"}
	}

	res, err := g.runner.Run(ctx, g.dir, "gh", "pr", "view", strconv.Itoa(id),
		"--json", "number,title,headRefName,baseRefName,state,url")
	if err != nil {
		return nil, &Error{Forge: "github", Msg: fmt.Sprintf("view pull request #%d", id), Err: err}
	}
	if res.ExitCode != 0 {
		return nil, &Error{Forge: "github", Msg: fmt.Sprintf("view pull request #%d", id), Err: cmd.ExitError("gh", res)}
	}

	var pr struct {
		Number      int    `json:"number"`
		Title       string `json:"title"`
		HeadRefName string `json:"headRefName"`
		BaseRefName string `json:"baseRefName"`
		State       string `json:"state"`
		URL         string `json:"url"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &pr); err != nil {
		return nil, &Error{Forge: "github", Msg: "parse gh output", Err: err}
	}
	if pr.HeadRefName == "" {
		return nil, &Error{Forge: "github", Msg: fmt.Sprintf("pull request #%d has no head branch", id)}
	}

	return &ChangeRequest{
		Number:       pr.Number,
		Title:        pr.Title,
		SourceBranch: pr.HeadRefName,
		TargetBranch: pr.BaseRefName,
		State:        pr.State,
		URL:          pr.URL,
	}, nil
}

// IsProject reports whether the working directory is a GitHub project.
func (g *GitHub) IsProject(ctx context.Context) bool {
	if !g.Available() {
		return false
	}
	res, err := g.runner.Run(ctx, g.dir, "gh", "repo", "view", "--json", "name")
	return err == nil && res.ExitCode == 0
}
