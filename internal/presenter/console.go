package presenter

import (
	"github.com/fatih/color"

	"github.com/altuslabsxyz/token-launcher/internal/output"
)

// ConsoleRenderer draws the region on a terminal: progress as a spinner
// line that is rewritten in place, terminal states as a colored block.
type ConsoleRenderer struct {
	logger  output.LoggerInterface
	spinner *output.StatusSpinner
}

// NewConsoleRenderer creates a renderer on logger. spinner may be nil for
// non-interactive output, in which case progress is printed line by line.
func NewConsoleRenderer(logger output.LoggerInterface, spinner *output.StatusSpinner) *ConsoleRenderer {
	return &ConsoleRenderer{logger: logger, spinner: spinner}
}

// Render implements Renderer.
func (c *ConsoleRenderer) Render(s Status, visible bool) {
	if !visible {
		c.stopSpinner()
		return
	}

	if s.Kind == KindProgress {
		if c.spinner != nil && !c.logger.IsJSONMode() {
			c.spinner.Start(s.Message)
			return
		}
		c.logger.Step("%s", s.Message)
		return
	}

	c.stopSpinner()
	c.renderBlock(s)
}

func (c *ConsoleRenderer) stopSpinner() {
	if c.spinner != nil {
		c.spinner.Stop()
	}
}

func (c *ConsoleRenderer) renderBlock(s Status) {
	title := s.Title
	if title == "" {
		title = s.Message
	}

	switch s.Kind {
	case KindSuccess:
		c.logger.Success("%s", title)
	case KindWarning:
		c.logger.Warn("%s", title)
	case KindError:
		c.logger.Error("%s", title)
	}

	if s.Title != "" && s.Message != "" {
		c.logger.Info("  %s", s.Message)
	}
	if s.Demo {
		c.logger.Banner("  DEMO MODE: simulated result, nothing was created on chain")
	}
	for _, f := range s.Fields {
		c.logger.Field(f.Label, f.Value)
	}
	if s.Link != "" {
		c.logger.Field("Link", color.New(color.Underline).Sprint(s.Link))
	}
	if s.Hint != "" {
		c.logger.Info("\nHint: %s", s.Hint)
	}
}

var _ Renderer = (*ConsoleRenderer)(nil)
