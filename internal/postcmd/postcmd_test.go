package postcmd

import (
	"context"
	"strings"
	"testing"

	"github.com/gwm-cli/gwm/internal/cmd"
	"github.com/gwm-cli/gwm/internal/config"
)

// recordingRunner records invocations and fails the ones listed in
// failOn.
type recordingRunner struct {
	calls  []string
	dirs   []string
	failOn map[string]bool
}

func (r *recordingRunner) Run(ctx context.Context, dir, name string, args ...string) (cmd.Result, error) {
	key := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, key)
	r.dirs = append(r.dirs, dir)
	if r.failOn[key] {
		return cmd.Result{ExitCode: 1, Stderr: "boom"}, nil
	}
	return cmd.Result{}, nil
}

func TestRun_OrderAndSplitting(t *testing.T) {
	t.Parallel()

	r := &recordingRunner{}
	groups := []config.Group{
		{Label: "deps", Commands: []string{"go   mod download", "npm install"}},
		{Label: "hooks", Commands: []string{"", "   ", "pre-commit install"}},
	}

	if err := Run(context.Background(), r, groups, "/trees/feat"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"go mod download", "npm install", "pre-commit install"}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, r.calls[i], want[i])
		}
		if r.dirs[i] != "/trees/feat" {
			t.Errorf("dirs[%d] = %q, want the worktree directory", i, r.dirs[i])
		}
	}
}

func TestRun_FirstFailureAborts(t *testing.T) {
	t.Parallel()

	r := &recordingRunner{failOn: map[string]bool{"npm install": true}}
	groups := []config.Group{
		{Label: "deps", Commands: []string{"npm install", "npm run build"}},
		{Label: "later", Commands: []string{"true"}},
	}

	err := Run(context.Background(), r, groups, "/trees/feat")
	if err == nil {
		t.Fatal("Run() should fail")
	}
	if !strings.Contains(err.Error(), `"npm install"`) || !strings.Contains(err.Error(), `"deps"`) {
		t.Errorf("error %q should name the command and its group", err)
	}
	if len(r.calls) != 1 {
		t.Errorf("calls = %v, want execution to stop at the failure", r.calls)
	}
}

func TestRun_NoGroups(t *testing.T) {
	t.Parallel()

	r := &recordingRunner{}
	if err := Run(context.Background(), r, nil, "/trees/feat"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("calls = %v, want none", r.calls)
	}
}

func TestPlan(t *testing.T) {
	t.Parallel()

	groups := []config.Group{
		{Label: "deps", Commands: []string{"npm install", " "}},
		{Label: "hooks", Commands: []string{"pre-commit install"}},
	}

	lines := Plan(groups, "/trees/feat")
	if len(lines) != 2 {
		t.Fatalf("lines = %v, want 2 (blank commands skipped)", lines)
	}
	if !strings.Contains(lines[0], "deps") || !strings.Contains(lines[0], "npm install") {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if !strings.Contains(lines[1], "/trees/feat") {
		t.Errorf("lines[1] = %q, want the target directory", lines[1])
	}
}
