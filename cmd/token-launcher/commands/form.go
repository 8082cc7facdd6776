package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/di"
	"github.com/altuslabsxyz/token-launcher/internal/tui"
	"github.com/altuslabsxyz/token-launcher/internal/tui/views"
)

func newFormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive token form",
		Long: `Open the interactive token form.

The form is shown once a wallet is connected: a trusted wallet reconnects
silently, otherwise press ctrl+w to connect. Results and progress appear in
the status box below the form.

Keys:
  tab/shift+tab  move between fields
  space          toggle authority revocation
  enter          submit
  ctrl+n         switch network
  ctrl+w/ctrl+d  connect/disconnect the wallet
  esc            quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsInteractive() {
				return handleCommandError(cmd, fmt.Errorf("the form needs an interactive terminal; use 'token-launcher create' instead"))
			}
			return runForm(cmd, a, tea.WithAltScreen())
		},
	}
}

// runForm runs the form program. The status region and session changes are
// forwarded into the program through one sender.
func runForm(cmd *cobra.Command, a *app, programOpts ...tea.ProgramOption) error {
	sender := &tui.Sender{}

	// bubbletea owns the terminal, so connects are approved without a prompt
	// and log output is kept off the screen.
	cfg := a.resolved
	cfg.JSON = true
	c := a.container(cmd, cfg, di.WithRenderer(views.NewProgramRenderer(sender.Send)))
	defer c.Close()

	session := c.Session()
	unsubscribe := session.Subscribe(views.SessionListener(sender.Send))
	defer unsubscribe()

	model := views.NewFormModel(views.FormDeps{
		Ctx:       cmd.Context(),
		Session:   session,
		Submitter: c.Launcher(),
		Presenter: c.Region(),
	}, cfg.Network)

	if _, err := tui.RunWith(model, sender, programOpts...); err != nil {
		return handleCommandError(cmd, fmt.Errorf("form failed: %w", err))
	}
	return nil
}
