package config

import (
	"reflect"
	"testing"
)

func str(s string) *string { return &s }

func TestMerge_BothNil(t *testing.T) {
	t.Parallel()

	got := merge(nil, nil)
	want := Default()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merge(nil, nil) = %+v, want %+v", got, want)
	}
}

func TestMerge_GlobalOverridesDefaults(t *testing.T) {
	t.Parallel()

	global := &fileConfig{
		Prefix:      str(PrefixDetect),
		WorktreeDir: str("/tmp/trees"),
	}

	got := merge(global, nil)
	if got.Prefix != PrefixDetect {
		t.Errorf("prefix = %q, want %q", got.Prefix, PrefixDetect)
	}
	if got.WorktreeDir != "/tmp/trees" {
		t.Errorf("worktree_dir = %q, want /tmp/trees", got.WorktreeDir)
	}
}

func TestMerge_LocalWinsOverGlobal(t *testing.T) {
	t.Parallel()

	global := &fileConfig{
		Prefix:       str(PrefixManual),
		ManualPrefix: str("team-"),
		WorktreeDir:  str("../global-trees"),
	}
	local := &fileConfig{
		WorktreeDir: str("../local-trees"),
	}

	got := merge(global, local)
	if got.WorktreeDir != "../local-trees" {
		t.Errorf("worktree_dir = %q, want ../local-trees", got.WorktreeDir)
	}
	// Fields the local file leaves unset keep the global values.
	if got.Prefix != PrefixManual {
		t.Errorf("prefix = %q, want %q", got.Prefix, PrefixManual)
	}
	if got.ManualPrefix != "team-" {
		t.Errorf("manual_prefix = %q, want team-", got.ManualPrefix)
	}
}

func TestMerge_EmptyStringStillOverrides(t *testing.T) {
	t.Parallel()

	// A present-but-empty value is an override, not an omission.
	global := &fileConfig{ManualPrefix: str("team-")}
	local := &fileConfig{ManualPrefix: str("")}

	got := merge(global, local)
	if got.ManualPrefix != "" {
		t.Errorf("manual_prefix = %q, want empty", got.ManualPrefix)
	}
}

func TestMerge_PostCommandsReplacedWholesale(t *testing.T) {
	t.Parallel()

	global := &fileConfig{
		PostCommands: []Group{
			{Label: "deps", Commands: []string{"npm install"}},
			{Label: "build", Commands: []string{"npm run build"}},
		},
	}
	local := &fileConfig{
		PostCommands: []Group{
			{Label: "setup", Commands: []string{"go mod download"}},
		},
	}

	got := merge(global, local)
	want := []Group{{Label: "setup", Commands: []string{"go mod download"}}}
	if !reflect.DeepEqual(got.PostCommands, want) {
		t.Errorf("post_commands = %+v, want %+v", got.PostCommands, want)
	}
}

func TestMerge_PostCommandsKeptWhenLocalOmits(t *testing.T) {
	t.Parallel()

	global := &fileConfig{
		PostCommands: []Group{{Label: "deps", Commands: []string{"npm install"}}},
	}
	local := &fileConfig{WorktreeDir: str("../trees")}

	got := merge(global, local)
	if len(got.PostCommands) != 1 || got.PostCommands[0].Label != "deps" {
		t.Errorf("post_commands = %+v, want global's groups", got.PostCommands)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Default(), false},
		{"detect", Config{Prefix: PrefixDetect, WorktreeDir: "../w"}, false},
		{"manual with prefix", Config{Prefix: PrefixManual, ManualPrefix: "x-", WorktreeDir: "../w"}, false},
		{"manual without prefix", Config{Prefix: PrefixManual, WorktreeDir: "../w"}, true},
		{"unknown prefix mode", Config{Prefix: "auto", WorktreeDir: "../w"}, true},
		{"empty worktree dir", Config{Prefix: PrefixNone}, true},
		{"unlabeled group", Config{
			Prefix:       PrefixNone,
			WorktreeDir:  "../w",
			PostCommands: []Group{{Commands: []string{"true"}}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}
