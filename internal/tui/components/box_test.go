package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/altuslabsxyz/token-launcher/internal/presenter"
)

func TestStatusBox_HiddenRendersNothing(t *testing.T) {
	m := NewStatusBox()
	assert.Empty(t, m.View())

	m.Set(presenter.Progress("working"), false)
	assert.Empty(t, m.View())
}

func TestStatusBox_Progress(t *testing.T) {
	m := NewStatusBox()
	m.Set(presenter.Progress("Creating token mint..."), true)
	view := m.View()
	assert.Contains(t, view, "─")
	assert.Contains(t, view, "Creating token mint...")
}

func TestStatusBox_Success(t *testing.T) {
	m := NewStatusBox()
	s := presenter.Success("Token created (demo)", "TST is ready",
		presenter.Field{Label: "Mint", Value: "abc123"})
	s.Demo = true
	m.Set(s.WithLink("https://example.com/run/1"), true)

	view := m.View()
	assert.Contains(t, view, "Token created (demo)")
	assert.Contains(t, view, "TST is ready")
	assert.Contains(t, view, "DEMO MODE")
	assert.Contains(t, view, "Mint:")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "https://example.com/run/1")

	got, visible := m.Status()
	assert.True(t, visible)
	assert.Equal(t, presenter.KindSuccess, got.Kind)
}

func TestStatusBox_ReplacesContent(t *testing.T) {
	m := NewStatusBox()
	m.Set(presenter.Warning("Timed out", "check the run manually"), true)
	m.Set(presenter.Progress("second"), true)
	view := m.View()
	assert.NotContains(t, view, "Timed out")
	assert.Contains(t, view, "second")
}

func TestStatusBox_RespectsWidth(t *testing.T) {
	m := NewStatusBox()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.Equal(t, 46, m.Width)
	m.Set(presenter.Warning("Timed out", "check the run manually"), true)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 48)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 20})
	assert.Equal(t, 40, m.Width)
}

func TestFieldsView(t *testing.T) {
	view := FieldsView([]presenter.Field{
		{Label: "Mint", Value: "abc"},
		{Label: "Network", Value: "devnet"},
	})
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Mint:")
	assert.Contains(t, lines[1], "devnet")
}
