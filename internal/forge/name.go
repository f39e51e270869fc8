package forge

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	dashRuns    = regexp.MustCompile(`-{2,}`)
)

// DeriveWorktreeName turns a change request's source branch into a
// filesystem-safe worktree name: every character outside [A-Za-z0-9_-]
// becomes "-", runs of "-" collapse, and leading/trailing "-" are
// stripped. Names shorter than two characters fall back to
// "<prefix>-<number>" (e.g. "mr-42").
func DeriveWorktreeName(f Forge, cr *ChangeRequest) string {
	name := unsafeChars.ReplaceAllString(cr.SourceBranch, "-")
	name = dashRuns.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) < 2 {
		return fmt.Sprintf("%s-%d", f.FallbackPrefix(), cr.Number)
	}
	return name
}
