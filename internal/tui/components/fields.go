package components

import (
	"strings"

	"github.com/altuslabsxyz/token-launcher/internal/presenter"
	"github.com/altuslabsxyz/token-launcher/internal/tui"
)

// FieldsView renders labelled values one per line with aligned labels.
func FieldsView(fields []presenter.Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(tui.LabelStyle.Render(f.Label + ":"))
		b.WriteString(f.Value)
	}
	return b.String()
}
