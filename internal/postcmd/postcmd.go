// Package postcmd runs configured post-creation command groups inside a
// new worktree.
//
// Groups run in configuration order; within a group, commands run
// strictly in order. The first failing command aborts the rest of its
// group and the whole operation. Command lines are split on whitespace
// into a program and arguments; no shell is involved.
package postcmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gwm-cli/gwm/internal/cmd"
	"github.com/gwm-cli/gwm/internal/config"
	"github.com/gwm-cli/gwm/internal/log"
)

// Run executes all groups sequentially with dir as the working
// directory.
func Run(ctx context.Context, r cmd.Runner, groups []config.Group, dir string) error {
	l := log.FromContext(ctx)

	for _, group := range groups {
		l.Printf("Running %s...\n", group.Label)
		for _, line := range group.Commands {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if err := cmd.Run(ctx, r, dir, fields[0], fields[1:]...); err != nil {
				return fmt.Errorf("post-command %q (group %q) failed: %w", line, group.Label, err)
			}
		}
	}
	return nil
}

// Plan describes what Run would execute, for dry-run output.
func Plan(groups []config.Group, dir string) []string {
	var lines []string
	for _, group := range groups {
		for _, line := range group.Commands {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %s (in %s)", group.Label, line, dir))
		}
	}
	return lines
}
