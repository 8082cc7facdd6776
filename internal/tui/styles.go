package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altuslabsxyz/token-launcher/internal/presenter"
)

// Color palette - matches fatih/color semantics of the console logger
var (
	ColorSuccess = lipgloss.Color("#22c55e") // Green
	ColorError   = lipgloss.Color("#ef4444") // Red
	ColorWarning = lipgloss.Color("#eab308") // Yellow
	ColorInfo    = lipgloss.Color("#06b6d4") // Cyan
	ColorMuted   = lipgloss.Color("#6b7280") // Gray
	ColorAccent  = lipgloss.Color("#a855f7") // Solana purple
)

// Icons
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconRunning = "→"
	IconPending = " "
)

// Text styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	FocusedStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(16)
)

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorInfo).
			Padding(0, 1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1)

	SuccessBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(0, 1)

	WarningBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(0, 1)
)

// TitleStyle creates a styled title for boxes
func TitleStyle(title string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true).
		SetString(title)
}

// KindBoxStyle returns the box style for a status kind.
func KindBoxStyle(k presenter.Kind) lipgloss.Style {
	switch k {
	case presenter.KindSuccess:
		return SuccessBoxStyle
	case presenter.KindWarning:
		return WarningBoxStyle
	case presenter.KindError:
		return ErrorBoxStyle
	default:
		return BoxStyle
	}
}

// KindIcon returns the styled icon for a status kind.
func KindIcon(k presenter.Kind) string {
	switch k {
	case presenter.KindSuccess:
		return SuccessStyle.Render(IconSuccess)
	case presenter.KindWarning:
		return WarningStyle.Render(IconWarning)
	case presenter.KindError:
		return ErrorStyle.Render(IconError)
	default:
		return RunningStyle.Render(IconRunning)
	}
}
