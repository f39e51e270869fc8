// Package ui provides the small interactive surface of gwm: a spinner,
// a yes/no confirmation prompt and a fuzzy worktree selector.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Interactive reports whether both stdin and stdout are terminals.
// Prompts and the spinner degrade to non-interactive behavior when they
// are not.
func Interactive() bool {
	return istty(os.Stdin.Fd()) && istty(os.Stdout.Fd())
}

func istty(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
