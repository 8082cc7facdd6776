package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altuslabsxyz/token-launcher/internal/application/launcher"
	"github.com/altuslabsxyz/token-launcher/internal/presenter"
	"github.com/altuslabsxyz/token-launcher/internal/wallet"
)

// StatusMsg mirrors a status region update into the program.
type StatusMsg struct {
	Status  presenter.Status
	Visible bool
}

// SessionMsg carries a wallet session change.
type SessionMsg struct {
	State wallet.State
}

type connectDoneMsg struct {
	err error
}

type disconnectDoneMsg struct{}

type submitDoneMsg struct {
	sub *launcher.Submission
	err error
}

// ProgramRenderer is a presenter.Renderer that forwards every region update
// to a running program.
type ProgramRenderer struct {
	send func(tea.Msg)
}

// NewProgramRenderer creates a renderer on send (typically tui.Sender.Send).
func NewProgramRenderer(send func(tea.Msg)) *ProgramRenderer {
	return &ProgramRenderer{send: send}
}

// Render implements presenter.Renderer.
func (r *ProgramRenderer) Render(s presenter.Status, visible bool) {
	r.send(StatusMsg{Status: s, Visible: visible})
}

// SessionListener returns a session subscriber that forwards changes to
// send.
func SessionListener(send func(tea.Msg)) func(wallet.State) {
	return func(st wallet.State) {
		send(SessionMsg{State: st})
	}
}

var _ presenter.Renderer = (*ProgramRenderer)(nil)
