package ui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner wraps a bubbletea spinner for simple start/stop use around a
// blocking operation. In non-interactive sessions it stays silent.
type Spinner struct {
	mu      sync.Mutex
	program *tea.Program
	model   *spinnerModel
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Spinner{model: &spinnerModel{spinner: s, message: message}}
}

// Start begins the animation. No-op outside a terminal.
func (s *Spinner) Start() {
	if !Interactive() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = tea.NewProgram(s.model)
	go s.program.Run()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model != nil {
		s.model.done = true
	}
	if s.program != nil {
		s.program.Quit()
	}
}
