// Package config loads, merges and persists gwm configuration.
//
// Two files exist: a global one at ~/.config/gwm/config.toml and a local
// one at .gwm.toml in the repository root. Both are optional. The
// effective configuration is merged with precedence default < global <
// local, where post_commands is replaced wholesale by the local list if
// the local file defines any.
package config

import (
	"fmt"
	"slices"
)

// Prefix modes for worktree names.
const (
	PrefixNone   = "none"   // use the name as given
	PrefixManual = "manual" // prepend manual_prefix
	PrefixDetect = "detect" // prepend "<repo-name>-" derived from the origin URL
)

// DefaultWorktreeDir is where worktrees are created when not configured,
// relative to the working directory.
const DefaultWorktreeDir = "../worktrees"

var validPrefixModes = []string{PrefixNone, PrefixManual, PrefixDetect}

// Group is a labeled, ordered list of command lines run sequentially
// inside a newly created worktree. Each line is split on whitespace into
// a program and its arguments; no shell is involved.
type Group struct {
	Label    string   `toml:"label" json:"label"`
	Commands []string `toml:"commands" json:"commands"`
}

// Config is the gwm configuration schema, shared by both files and the
// merged result.
type Config struct {
	Prefix       string  `toml:"prefix" json:"prefix"`
	ManualPrefix string  `toml:"manual_prefix,omitempty" json:"manual_prefix,omitempty"`
	WorktreeDir  string  `toml:"worktree_dir" json:"worktree_dir"`
	PostCommands []Group `toml:"post_commands,omitempty" json:"post_commands,omitempty"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		Prefix:      PrefixNone,
		WorktreeDir: DefaultWorktreeDir,
	}
}

// Validate checks a full configuration against the schema rules.
func Validate(cfg Config) error {
	if !slices.Contains(validPrefixModes, cfg.Prefix) {
		return &Error{Msg: fmt.Sprintf("invalid prefix %q: must be %q, %q, or %q",
			cfg.Prefix, PrefixNone, PrefixManual, PrefixDetect)}
	}
	if cfg.Prefix == PrefixManual && cfg.ManualPrefix == "" {
		return &Error{Msg: `prefix "manual" requires manual_prefix to be set`}
	}
	if cfg.WorktreeDir == "" {
		return &Error{Msg: "worktree_dir must not be empty"}
	}
	for i, g := range cfg.PostCommands {
		if g.Label == "" {
			return &Error{Msg: fmt.Sprintf("post_commands[%d]: label must not be empty", i)}
		}
	}
	return nil
}
