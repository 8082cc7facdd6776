package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/altuslabsxyz/token-launcher/internal/presenter"
)

func TestColors_Defined(t *testing.T) {
	assert.NotEmpty(t, string(ColorSuccess))
	assert.NotEmpty(t, string(ColorError))
	assert.NotEmpty(t, string(ColorWarning))
	assert.NotEmpty(t, string(ColorInfo))
	assert.NotEmpty(t, string(ColorMuted))
	assert.NotEmpty(t, string(ColorAccent))
}

func TestIconConstants_Defined(t *testing.T) {
	assert.Equal(t, "✓", IconSuccess)
	assert.Equal(t, "✗", IconError)
	assert.Equal(t, "→", IconRunning)
	assert.Equal(t, " ", IconPending)
}

func TestKindIcon(t *testing.T) {
	assert.Contains(t, KindIcon(presenter.KindSuccess), IconSuccess)
	assert.Contains(t, KindIcon(presenter.KindError), IconError)
	assert.Contains(t, KindIcon(presenter.KindWarning), IconWarning)
	assert.Contains(t, KindIcon(presenter.KindProgress), IconRunning)
}

func TestBoxStyles_HaveBorders(t *testing.T) {
	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"progress", KindBoxStyle(presenter.KindProgress)},
		{"success", KindBoxStyle(presenter.KindSuccess)},
		{"warning", KindBoxStyle(presenter.KindWarning)},
		{"error", KindBoxStyle(presenter.KindError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render("content")
			assert.Contains(t, rendered, "─")
			assert.Contains(t, rendered, "│")
			assert.Contains(t, rendered, "content")
		})
	}
}
