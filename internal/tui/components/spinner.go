package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altuslabsxyz/token-launcher/internal/tui"
)

// SpinnerModel wraps bubbles spinner with a message
type SpinnerModel struct {
	spinner spinner.Model
	message string
}

// NewSpinnerModel creates a new spinner with the given message
func NewSpinnerModel(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(tui.ColorInfo)
	return SpinnerModel{
		spinner: s,
		message: message,
	}
}

// Init starts the tick loop.
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the animation on its own tick messages and ignores
// everything else.
func (m SpinnerModel) Update(msg tea.Msg) (SpinnerModel, tea.Cmd) {
	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tickMsg)
		return m, cmd
	}
	return m, nil
}

// View renders the frame followed by the message.
func (m SpinnerModel) View() string {
	if m.message == "" {
		return m.spinner.View()
	}
	return m.spinner.View() + " " + m.message
}

// SetMessage updates the spinner message
func (m *SpinnerModel) SetMessage(message string) {
	m.message = message
}
