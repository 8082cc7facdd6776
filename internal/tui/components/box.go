package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altuslabsxyz/token-launcher/internal/presenter"
	"github.com/altuslabsxyz/token-launcher/internal/tui"
)

const demoBanner = "DEMO MODE: simulated result, nothing was created on chain"

// StatusBox draws the single status region: one bordered box whose color
// follows the status kind. Progress statuses carry a spinner.
type StatusBox struct {
	Width int

	status  presenter.Status
	visible bool
	spinner SpinnerModel
}

// NewStatusBox creates a hidden status box.
func NewStatusBox() StatusBox {
	return StatusBox{
		Width:   60,
		spinner: NewSpinnerModel(""),
	}
}

// Set replaces the box content.
func (m *StatusBox) Set(s presenter.Status, visible bool) {
	m.status = s
	m.visible = visible
	m.spinner.SetMessage(s.Message)
}

// Status returns the shown status and whether the box is visible.
func (m StatusBox) Status() (presenter.Status, bool) {
	return m.status, m.visible
}

// Init starts the spinner.
func (m StatusBox) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles resizes and spinner ticks.
func (m StatusBox) Update(msg tea.Msg) (StatusBox, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width = wsm.Width - 4
		if m.Width < 40 {
			m.Width = 40
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the box, or nothing while hidden.
func (m StatusBox) View() string {
	if !m.visible {
		return ""
	}
	s := m.status
	style := tui.KindBoxStyle(s.Kind).Width(m.Width)

	if s.Kind == presenter.KindProgress {
		return style.Render(m.spinner.View())
	}

	var lines []string
	title := s.Title
	if title == "" {
		title = s.Message
	}
	lines = append(lines, tui.KindIcon(s.Kind)+" "+lipgloss.NewStyle().Bold(true).Render(title))
	if s.Title != "" && s.Message != "" {
		lines = append(lines, s.Message)
	}
	if s.Demo {
		lines = append(lines, tui.WarningStyle.Render(demoBanner))
	}
	if len(s.Fields) > 0 {
		lines = append(lines, "", FieldsView(s.Fields))
	}
	if s.Link != "" {
		lines = append(lines, "", tui.RunningStyle.Underline(true).Render(s.Link))
	}
	if s.Hint != "" {
		lines = append(lines, "", tui.MutedStyle.Render("Hint: "+s.Hint))
	}
	return style.Render(strings.Join(lines, "\n"))
}
