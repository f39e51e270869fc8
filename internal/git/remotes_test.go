package git

import (
	"context"
	"testing"

	"github.com/gwm-cli/gwm/internal/cmd"
)

func TestRemotes(t *testing.T) {
	t.Parallel()

	out := "origin\tgit@github.com:user/repo.git (fetch)\n" +
		"origin\tgit@github.com:user/repo.git (push)\n" +
		"upstream\thttps://github.com/org/repo.git (fetch)\n" +
		"garbage line\n" +
		"weird\turl (mirror)\n"
	f := &fakeRunner{results: map[string]cmd.Result{
		"git remote -v": {Stdout: out},
	}}

	remotes, err := New(f, "/repo").Remotes(context.Background())
	if err != nil {
		t.Fatalf("Remotes() error = %v", err)
	}
	if len(remotes) != 3 {
		t.Fatalf("len(remotes) = %d, want 3 (malformed lines skipped)", len(remotes))
	}
	if remotes[0].Name != "origin" || remotes[0].Type != "fetch" {
		t.Errorf("remotes[0] = %+v, want origin fetch", remotes[0])
	}
	if remotes[2].Name != "upstream" || remotes[2].URL != "https://github.com/org/repo.git" {
		t.Errorf("remotes[2] = %+v, want upstream", remotes[2])
	}
}

func TestOriginURL(t *testing.T) {
	t.Parallel()

	t.Run("picks origin fetch", func(t *testing.T) {
		t.Parallel()
		out := "upstream\thttps://github.com/org/repo.git (fetch)\n" +
			"origin\tgit@github.com:user/repo.git (fetch)\n" +
			"origin\tgit@github.com:user/repo.git (push)\n"
		f := &fakeRunner{results: map[string]cmd.Result{"git remote -v": {Stdout: out}}}

		url, err := New(f, "/repo").OriginURL(context.Background())
		if err != nil {
			t.Fatalf("OriginURL() error = %v", err)
		}
		if url != "git@github.com:user/repo.git" {
			t.Errorf("OriginURL() = %q", url)
		}
	})

	t.Run("no origin", func(t *testing.T) {
		t.Parallel()
		f := &fakeRunner{results: map[string]cmd.Result{
			"git remote -v": {Stdout: "upstream\thttps://github.com/org/repo.git (fetch)\n"},
		}}
		if _, err := New(f, "/repo").OriginURL(context.Background()); err == nil {
			t.Error("OriginURL() without origin should fail")
		}
	})
}

func TestExtractRepoName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "git@github.com:user/repo.git", want: "repo"},
		{url: "git@gitlab.com:group/subgroup/project.git", want: "project"},
		{url: "git@example.com:flat-repo", want: "flat-repo"},
		{url: "https://gitlab.com/user/awesome-project.git", want: "awesome-project"},
		{url: "https://github.com/org/awesome-tool", want: "awesome-tool"},
		{url: "https://github.com/org/awesome-tool/", want: "awesome-tool"},
		{url: "http://github.com/org/tool.git", want: "tool"},
		{url: "ftp://example.com/repo", wantErr: true},
		{url: "https://example.com", wantErr: true},
		{url: "https://example.com/", wantErr: true},
		{url: "not-a-url", wantErr: true},
		{url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractRepoName(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractRepoName(%q) = %q, want error", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractRepoName(%q) error = %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ExtractRepoName(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{results: map[string]cmd.Result{
		"git remote -v": {Stdout: "origin\tgit@github.com:user/myrepo.git (fetch)\n"},
	}}

	prefix, err := New(f, "/repo").Prefix(context.Background())
	if err != nil {
		t.Fatalf("Prefix() error = %v", err)
	}
	if prefix != "myrepo-" {
		t.Errorf("Prefix() = %q, want myrepo-", prefix)
	}
}
