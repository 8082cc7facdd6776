package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
	"github.com/altuslabsxyz/token-launcher/internal/output"
)

type watchOptions struct {
	runID  int64
	output string
}

func newWatchCmd(a *app) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow an existing workflow run until it finishes",
		Long: `Follow an existing token creation workflow run until it finishes.

The run is checked every poll interval (--poll-interval) for at most
--max-attempts checks. On success the run's artifacts are listed.

Examples:
  # Follow a run
  token-launcher watch --run-id 123456789

  # Check quickly and print the result as YAML
  token-launcher watch --run-id 123456789 --poll-interval 3s -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, a, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.runID, "run-id", 0, "Workflow run ID (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("run-id")

	return cmd
}

func runWatch(cmd *cobra.Command, a *app, opts *watchOptions) error {
	if opts.runID <= 0 {
		return handleCommandError(cmd, fmt.Errorf("invalid --run-id %d: must be a positive run ID", opts.runID))
	}
	format, err := parseFormat(opts.output, a.resolved.JSON)
	if err != nil {
		return handleCommandError(cmd, err)
	}

	cfg := a.resolved
	cfg.JSON = format != formatText
	c := a.container(cmd, cfg)
	defer c.Close()

	ctx, cancel := interruptContext(cmd, func() {
		output.Warn("Stopped watching. The run continues on GitHub.")
	})
	defer cancel()

	h := workflow.Handle{
		Owner:    cfg.Owner,
		Repo:     cfg.Repo,
		Workflow: cfg.Workflow,
		Kind:     cfg.TriggerMode,
		RunID:    opts.runID,
	}
	res := pollResult(c.Poller().Poll(ctx, h))

	if format != formatText {
		if err := writeResult(cmd, format, res); err != nil {
			return err
		}
	}
	if !res.Succeeded() {
		return reportedError(cmd, fmt.Errorf("workflow run %d: %s", opts.runID, res.Outcome))
	}
	return nil
}
