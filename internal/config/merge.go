package config

// merge layers the global and local file contents over the defaults.
// Scalar fields follow override-if-present semantics; post_commands is a
// wholesale replacement: if the local file defines any groups, the merged
// list is exactly the local list regardless of global's.
func merge(global, local *fileConfig) Config {
	merged := Default()
	overlay(&merged, global)
	overlay(&merged, local)
	return merged
}

func overlay(dst *Config, src *fileConfig) {
	if src == nil {
		return
	}
	if src.Prefix != nil {
		dst.Prefix = *src.Prefix
	}
	if src.ManualPrefix != nil {
		dst.ManualPrefix = *src.ManualPrefix
	}
	if src.WorktreeDir != nil {
		dst.WorktreeDir = *src.WorktreeDir
	}
	if len(src.PostCommands) > 0 {
		dst.PostCommands = src.PostCommands
	}
}
