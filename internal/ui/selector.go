package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/gwm-cli/gwm/internal/git"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// SelectorResult holds the outcome of an interactive worktree selection.
type SelectorResult struct {
	Worktree  git.Worktree
	Selected  bool
	Cancelled bool
}

type selectorModel struct {
	worktrees []git.Worktree
	filtered  []git.Worktree
	input     textinput.Model
	cursor    int
	selected  *git.Worktree
	cancelled bool
	maxHeight int
}

func newSelectorModel(worktrees []git.Worktree) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	return selectorModel{
		worktrees: worktrees,
		filtered:  worktrees,
		input:     ti,
		maxHeight: 10,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = &m.filtered[m.cursor]
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = filterWorktrees(m.worktrees, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	return m, cmd
}

func (m selectorModel) View() string {
	if m.selected != nil || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	shown := m.filtered
	if len(shown) > m.maxHeight {
		shown = shown[:m.maxHeight]
	}
	for i, w := range shown {
		line := w.Name()
		if w.Branch != "" {
			line += dimStyle.Render(" (" + w.Branch + ")")
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + selectedStyle.Render(line))
		} else {
			b.WriteString("  " + unselectedStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ navigate · enter select · esc cancel"))
	return b.String()
}

// filterWorktrees fuzzy-matches query against name and branch.
func filterWorktrees(worktrees []git.Worktree, query string) []git.Worktree {
	if strings.TrimSpace(query) == "" {
		return worktrees
	}

	haystack := make([]string, len(worktrees))
	for i, w := range worktrees {
		haystack[i] = w.Name() + " " + w.Branch
	}

	matches := fuzzy.Find(query, haystack)
	filtered := make([]git.Worktree, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, worktrees[m.Index])
	}
	return filtered
}

// SelectWorktree shows an interactive fuzzy-filterable list of
// worktrees.
func SelectWorktree(worktrees []git.Worktree) (SelectorResult, error) {
	if len(worktrees) == 0 {
		return SelectorResult{}, fmt.Errorf("no worktrees to select from")
	}

	final, err := tea.NewProgram(newSelectorModel(worktrees)).Run()
	if err != nil {
		return SelectorResult{}, err
	}
	m := final.(selectorModel)
	if m.cancelled || m.selected == nil {
		return SelectorResult{Cancelled: true}, nil
	}
	return SelectorResult{Worktree: *m.selected, Selected: true}, nil
}
