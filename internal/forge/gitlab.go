package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/gwm-cli/gwm/internal/cmd"
)

// GitLab implements Forge using the glab CLI.
type GitLab struct {
	runner   cmd.Runner
	dir      string
	lookPath func(string) (string, error)
}

// NewGitLab creates a GitLab forge running glab in dir.
func NewGitLab(r cmd.Runner, dir string) *GitLab {
	return &GitLab{runner: r, dir: dir, lookPath: exec.LookPath}
}

func (g *GitLab) Name() string           { return "gitlab" }
func (g *GitLab) FallbackPrefix() string { return "mr" }

// Available reports whether the glab binary resolves on PATH.
func (g *GitLab) Available() bool {
	_, err := g.lookPath("glab")
	return err == nil
}

// Get fetches a merge request by number.
func (g *GitLab) Get(ctx context.Context, id int) (*ChangeRequest, error) {
	if !g.Available() {
		return nil, &Error{Forge: "gitlab", Msg: "glab not found: please install GitLab CLI (https://gitlab.com/gitlab-org/cli)"}
	}

	res, err := g.runner.Run(ctx, g.dir, "glab", "mr", "view", strconv.Itoa(id), "-F", "json")
	if err != nil {
		return nil, &Error{Forge: "gitlab", Msg: fmt.Sprintf("view merge request !%d", id), Err: err}
	}
	if res.ExitCode != 0 {
		return nil, &Error{Forge: "gitlab", Msg: fmt.Sprintf("view merge request !%d", id), Err: cmd.ExitError("glab", res)}
	}

	var mr struct {
		IID          int    `json:"iid"`
		Title        string `json:"title"`
		SourceBranch string `json:"source_branch"`
		TargetBranch string `json:"target_branch"`
		State        string `json:"state"`
		WebURL       string `json:"web_url"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &mr); err != nil {
		return nil, &Error{Forge: "gitlab", Msg: "parse glab output", Err: err}
	}
	if mr.SourceBranch == "" {
		return nil, &Error{Forge: "gitlab", Msg: fmt.Sprintf("merge request !%d has no source branch", id)}
	}

	return &ChangeRequest{
		Number:       mr.IID,
		Title:        mr.Title,
		SourceBranch: mr.SourceBranch,
		TargetBranch: mr.TargetBranch,
		State:        mr.State,
		URL:          mr.WebURL,
	}, nil
}

// IsProject reports whether the working directory is a GitLab project.
func (g *GitLab) IsProject(ctx context.Context) bool {
	if !g.Available() {
		return false
	}
	res, err := g.runner.Run(ctx, g.dir, "glab", "repo", "view", "-F", "json")
	return err == nil && res.ExitCode == 0
}
