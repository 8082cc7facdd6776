package tui

import (
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Run starts the TUI program with the given model in the alt screen.
func Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunInline starts the TUI without alt screen (stays inline)
func RunInline(model tea.Model) error {
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}

// RunWith starts model on a program bound to sender, so goroutines can feed
// it messages for as long as it runs.
func RunWith(model tea.Model, sender *Sender, opts ...tea.ProgramOption) (tea.Model, error) {
	p := tea.NewProgram(model, opts...)
	sender.Bind(p)
	defer sender.Bind(nil)
	return p.Run()
}

// RunSimple renders the model once without interactivity (for non-TTY)
func RunSimple(model tea.Model) error {
	fmt.Println(model.View())
	return nil
}

// IsInteractive returns true if stdout is a TTY
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RunAuto chooses between TUI and simple mode based on TTY
func RunAuto(model tea.Model) error {
	if IsInteractive() {
		return RunInline(model)
	}
	return RunSimple(model)
}

// Sender forwards messages to the bound program. Messages sent while no
// program is bound are dropped.
//
// Send blocks until the program's event loop receives the message, so it
// must never be called from inside Update.
type Sender struct {
	mu sync.RWMutex
	p  *tea.Program
}

// Bind attaches p (or detaches when p is nil).
func (s *Sender) Bind(p *tea.Program) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

// Send delivers msg to the bound program.
func (s *Sender) Send(msg tea.Msg) {
	s.mu.RLock()
	p := s.p
	s.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}
