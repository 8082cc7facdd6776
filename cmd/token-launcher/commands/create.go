package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/application/launcher"
	"github.com/altuslabsxyz/token-launcher/internal/application/trigger"
	"github.com/altuslabsxyz/token-launcher/internal/di"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/interactive"
	"github.com/altuslabsxyz/token-launcher/internal/output"
	"github.com/altuslabsxyz/token-launcher/internal/tui"
)

type createOptions struct {
	name         string
	symbol       string
	description  string
	supply       string
	decimals     string
	imageURL     string
	revokeMint   bool
	revokeFreeze bool
	noWait       bool
	output       string
	interactive  bool
}

// form builds the raw form from flags. Defaults match the interactive form.
func (o *createOptions) form(network token.Network) token.Form {
	return token.Form{
		Network:               network,
		Name:                  o.name,
		Symbol:                o.symbol,
		Description:           o.description,
		Supply:                o.supply,
		Decimals:              o.decimals,
		ImageURL:              o.imageURL,
		RevokeMintAuthority:   o.revokeMint,
		RevokeFreezeAuthority: o.revokeFreeze,
	}
}

func newCreateCmd(a *app) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Request a new SPL token",
		Long: `Request a new SPL token from the automation workflow.

The connected wallet receives the initial supply. The command waits for the
workflow run to finish unless --no-wait is given. If the automation API
cannot be reached, a local simulation runs instead and its result is
marked DEMO MODE.

Examples:
  # Create a devnet token
  token-launcher create --name "My Token" --symbol MTK --supply 1000000

  # Create on mainnet with revoked authorities and JSON output
  token-launcher create -n mainnet --name Fixed --symbol FIX --supply 21000000 \
    --decimals 6 --revoke-mint --revoke-freeze -o json

  # Fill in the fields interactively
  token-launcher create -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "Token name")
	f.StringVar(&opts.symbol, "symbol", "", "Token symbol (up to 10 characters)")
	f.StringVar(&opts.description, "description", "", "Token description")
	f.StringVar(&opts.supply, "supply", "", "Initial supply in whole tokens")
	f.StringVar(&opts.decimals, "decimals", "", "Decimal places, 0-9 (default 9)")
	f.StringVar(&opts.imageURL, "image-url", "", "Token image URL")
	f.BoolVar(&opts.revokeMint, "revoke-mint", false, "Revoke the mint authority after minting")
	f.BoolVar(&opts.revokeFreeze, "revoke-freeze", false, "Revoke the freeze authority")
	f.BoolVar(&opts.noWait, "no-wait", false, "Return once the workflow has been triggered")
	f.StringVarP(&opts.output, "output", "o", "", "Output format: text, json or yaml")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for token parameters")

	return cmd
}

func runCreate(cmd *cobra.Command, a *app, opts *createOptions) error {
	format, err := parseFormat(opts.output, a.resolved.JSON)
	if err != nil {
		return handleCommandError(cmd, err)
	}

	cfg := a.resolved
	cfg.JSON = format != formatText

	var diOpts []di.Option
	if opts.interactive {
		if !tui.IsInteractive() {
			return handleCommandError(cmd, fmt.Errorf("--interactive requires a terminal"))
		}
		diOpts = approverOption()
	}
	c := a.container(cmd, cfg, diOpts...)
	defer c.Close()

	ctx, cancel := interruptContext(cmd, func() {
		output.Warn("Interrupted. The remote workflow may still complete.")
	})
	defer cancel()

	// The form is only offered once a wallet is connected.
	if _, err := connectWallet(ctx, c.Session()); err != nil {
		return handleCommandError(cmd, err)
	}

	form := opts.form(cfg.Network)
	if opts.interactive {
		sel, err := interactive.NewSelector(form).RunFormFlow()
		if err != nil {
			return wrapInteractiveError(cmd, err)
		}
		form = sel.Form
	}

	sub, err := c.Launcher().Submit(ctx, form)
	if err != nil {
		if errors.Is(err, launcher.ErrSubmissionInFlight) {
			return handleCommandError(cmd, err)
		}
		// The status region has shown it.
		if format == formatText {
			return reportedError(cmd, err)
		}
		return writeFailure(cmd, format, sub, err)
	}

	// A demo run is local, so it is always awaited. Closing the container
	// cancels the poll.
	if opts.noWait && sub.Poll != nil {
		return writeResult(cmd, format, triggeredResult(sub))
	}

	sub.Wait()
	res := submissionResult(sub)
	if format != formatText {
		if err := writeResult(cmd, format, res); err != nil {
			return err
		}
	}
	if !res.Succeeded() {
		return reportedError(cmd, fmt.Errorf("token creation %s", res.Outcome))
	}
	return nil
}

// writeFailure reports a rejected submission in a structured format.
func writeFailure(cmd *cobra.Command, format outputFormat, sub *launcher.Submission, err error) error {
	res := &createResult{Outcome: outcomeError, Error: err.Error()}
	if sub != nil && sub.Trigger.Kind == trigger.OutcomeFailed {
		res.SubmissionID = sub.Trigger.Handle.SubmissionID
	}
	if werr := writeResult(cmd, format, res); werr != nil {
		return werr
	}
	return reportedError(cmd, err)
}

// parseFormat picks the output format; the global --json flag selects json
// when --output is not given.
func parseFormat(s string, jsonMode bool) (outputFormat, error) {
	if s == "" {
		if jsonMode {
			return formatJSON, nil
		}
		return formatText, nil
	}
	switch f := outputFormat(s); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %s: must be text, json or yaml", strconv.Quote(s))
	}
}
