package forge

import (
	"context"
	"errors"
	"testing"

	"github.com/gwm-cli/gwm/internal/cmd"
)

const glabViewKey = "glab mr view 42 -F json"

func TestGitLab_Get(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{results: map[string]cmd.Result{
			glabViewKey: {Stdout: `{
				"iid": 42,
				"title": "Add retry backoff",
				"source_branch": "feature/backoff",
				"target_branch": "main",
				"state": "opened",
				"web_url": "https://gitlab.com/group/repo/-/merge_requests/42"
			}`},
		}}
		gl := &GitLab{runner: f, dir: "/repo", lookPath: found}

		cr, err := gl.Get(context.Background(), 42)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if cr.Number != 42 || cr.SourceBranch != "feature/backoff" {
			t.Errorf("cr = %+v", cr)
		}
		if cr.URL != "https://gitlab.com/group/repo/-/merge_requests/42" {
			t.Errorf("url = %q", cr.URL)
		}
	})

	t.Run("glab missing", func(t *testing.T) {
		t.Parallel()
		gl := &GitLab{runner: &fakeRunner{}, dir: "/repo", lookPath: missing}

		_, err := gl.Get(context.Background(), 42)
		var forgeErr *Error
		if !errors.As(err, &forgeErr) {
			t.Fatalf("error = %T, want *Error", err)
		}
		if forgeErr.Forge != "gitlab" {
			t.Errorf("Forge = %q, want gitlab", forgeErr.Forge)
		}
	})

	t.Run("missing source branch", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{results: map[string]cmd.Result{
			glabViewKey: {Stdout: `{"iid":42,"title":"t"}`},
		}}
		gl := &GitLab{runner: f, dir: "/repo", lookPath: found}

		if _, err := gl.Get(context.Background(), 42); err == nil {
			t.Error("Get() without a source branch should fail")
		}
	})

	t.Run("spawn error", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{errs: map[string]error{
			glabViewKey: errors.New("fork/exec: resource unavailable"),
		}}
		gl := &GitLab{runner: f, dir: "/repo", lookPath: found}

		if _, err := gl.Get(context.Background(), 42); err == nil {
			t.Error("Get() on spawn failure should fail")
		}
	})
}

func TestGitLab_IsProject(t *testing.T) {
	t.Parallel()

	yes := &fakeRunner{results: map[string]cmd.Result{
		"glab repo view -F json": {Stdout: `{"name":"repo"}`},
	}}
	gl := &GitLab{runner: yes, dir: "/repo", lookPath: found}
	if !gl.IsProject(context.Background()) {
		t.Error("IsProject() = false for a GitLab repo")
	}

	no := &GitLab{runner: &fakeRunner{}, dir: "/repo", lookPath: found}
	if no.IsProject(context.Background()) {
		t.Error("IsProject() = true when glab repo view fails")
	}
}
