package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key is a recognized configuration key for `gwm config --get/--set`.
// Unrecognized key names are rejected at the boundary instead of being
// looked up dynamically.
type Key struct {
	Name string
	Get  func(Config) string
	Set  func(*Config, any) error
}

// Keys returns all recognized keys in a stable order.
func Keys() []Key {
	return []Key{
		{
			Name: "prefix",
			Get:  func(c Config) string { return c.Prefix },
			Set: func(c *Config, v any) error {
				s, ok := v.(string)
				if !ok {
					return &Error{Msg: fmt.Sprintf("prefix: expected a string, got %T", v)}
				}
				c.Prefix = s
				return nil
			},
		},
		{
			Name: "manual_prefix",
			Get:  func(c Config) string { return c.ManualPrefix },
			Set: func(c *Config, v any) error {
				s, ok := v.(string)
				if !ok {
					return &Error{Msg: fmt.Sprintf("manual_prefix: expected a string, got %T", v)}
				}
				c.ManualPrefix = s
				return nil
			},
		},
		{
			Name: "worktree_dir",
			Get:  func(c Config) string { return c.WorktreeDir },
			Set: func(c *Config, v any) error {
				s, ok := v.(string)
				if !ok {
					return &Error{Msg: fmt.Sprintf("worktree_dir: expected a string, got %T", v)}
				}
				c.WorktreeDir = s
				return nil
			},
		},
		{
			Name: "post_commands",
			Get: func(c Config) string {
				if len(c.PostCommands) == 0 {
					return "[]"
				}
				data, err := json.Marshal(c.PostCommands)
				if err != nil {
					return ""
				}
				return string(data)
			},
			Set: func(c *Config, v any) error {
				// Round-trip through JSON: the value arrives as the
				// generic result of ParseValue.
				data, err := json.Marshal(v)
				if err != nil {
					return &Error{Msg: "post_commands: invalid value", Err: err}
				}
				var groups []Group
				if err := json.Unmarshal(data, &groups); err != nil {
					return &Error{Msg: `post_commands: expected a JSON array of {"label", "commands"} objects`, Err: err}
				}
				c.PostCommands = groups
				return nil
			},
		},
	}
}

// LookupKey finds a recognized key by name.
func LookupKey(name string) (Key, bool) {
	for _, k := range Keys() {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}

// KeyNames returns the recognized key names, for error messages and
// completion.
func KeyNames() []string {
	keys := Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Name
	}
	return names
}

// ParseValue interprets a `--set` value as a JSON literal (number,
// boolean, array, object) and falls back to the plain string when it
// doesn't parse.
func ParseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err == nil {
		return v
	}
	return raw
}
