package forge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gwm-cli/gwm/internal/cmd"
)

const ghViewKey = "gh pr view 7 --json number,title,headRefName,baseRefName,state,url"

func TestGitHub_Get(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{results: map[string]cmd.Result{
			ghViewKey: {Stdout: `{
				"number": 7,
				"title": "Fix flaky retries",
				"headRefName": "fix/retries",
				"baseRefName": "main",
				"state": "OPEN",
				"url": "https://github.com/org/repo/pull/7"
			}`},
		}}
		gh := &GitHub{runner: f, dir: "/repo", lookPath: found}

		cr, err := gh.Get(context.Background(), 7)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if cr.Number != 7 || cr.Title != "Fix flaky retries" {
			t.Errorf("cr = %+v", cr)
		}
		if cr.SourceBranch != "fix/retries" || cr.TargetBranch != "main" {
			t.Errorf("branches = %q -> %q", cr.SourceBranch, cr.TargetBranch)
		}
	})

	t.Run("gh missing", func(t *testing.T) {
		t.Parallel()
		gh := &GitHub{runner: &fakeRunner{}, dir: "/repo", lookPath: missing}

		_, err := gh.Get(context.Background(), 7)
		var forgeErr *Error
		if !errors.As(err, &forgeErr) {
			t.Fatalf("error = %T, want *Error", err)
		}
		if forgeErr.Forge != "github" {
			t.Errorf("Forge = %q, want github", forgeErr.Forge)
		}
	})

	t.Run("non-zero exit carries stderr", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{results: map[string]cmd.Result{
			ghViewKey: {ExitCode: 1, Stderr: "no pull requests found for 7"},
		}}
		gh := &GitHub{runner: f, dir: "/repo", lookPath: found}

		_, err := gh.Get(context.Background(), 7)
		if err == nil || !strings.Contains(err.Error(), "no pull requests found") {
			t.Errorf("error = %v, want gh's stderr", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{results: map[string]cmd.Result{
			ghViewKey: {Stdout: "not json"},
		}}
		gh := &GitHub{runner: f, dir: "/repo", lookPath: found}

		if _, err := gh.Get(context.Background(), 7); err == nil {
			t.Error("Get() with malformed output should fail")
		}
	})

	t.Run("missing head branch", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{results: map[string]cmd.Result{
			ghViewKey: {Stdout: `{"number":7,"title":"t"}`},
		}}
		gh := &GitHub{runner: f, dir: "/repo", lookPath: found}

		if _, err := gh.Get(context.Background(), 7); err == nil {
			t.Error("Get() without a head branch should fail")
		}
	})
}

func TestGitHub_IsProject(t *testing.T) {
	t.Parallel()

	yes := &fakeRunner{results: map[string]cmd.Result{
		"gh repo view --json name": {Stdout: `{"name":"repo"}`},
	}}
	gh := &GitHub{runner: yes, dir: "/repo", lookPath: found}
	if !gh.IsProject(context.Background()) {
		t.Error("IsProject() = false for a GitHub repo")
	}

	no := &GitHub{runner: &fakeRunner{}, dir: "/repo", lookPath: found}
	if no.IsProject(context.Background()) {
		t.Error("IsProject() = true when gh repo view fails")
	}

	unavailable := &GitHub{runner: yes, dir: "/repo", lookPath: missing}
	if unavailable.IsProject(context.Background()) {
		t.Error("IsProject() = true without gh on PATH")
	}
}
