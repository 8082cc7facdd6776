package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/domain/common"
	"github.com/altuslabsxyz/token-launcher/internal/interactive"
	"github.com/altuslabsxyz/token-launcher/internal/output"
)

// ErrReported is returned once a command has already shown its failure to
// the user. Callers exit non-zero without printing it again.
var ErrReported = errors.New("command failed")

// handleCommandError prints err in a user-friendly way and adjusts Cobra
// behavior for it.
//
// Usage in command handlers:
//
//	result, err := doSomething()
//	if err != nil {
//	    return handleCommandError(cmd, err)
//	}
func handleCommandError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	if common.ShouldSilenceUsage(err) {
		cmd.SilenceUsage = true
	}

	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "Error: %s\n", common.GetUserMessage(err))
	if hint := common.GetRecoveryHint(err); hint != "" {
		fmt.Fprintf(w, "\nHint: %s\n", hint)
	}

	// Already printed above.
	cmd.SilenceErrors = true
	return fmt.Errorf("%w: %w", ErrReported, err)
}

// reportedError marks err as already shown, by the status region for
// example, so nothing is printed again.
func reportedError(cmd *cobra.Command, err error) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("%w: %w", ErrReported, err)
}

// wrapInteractiveError treats a user cancellation as a clean exit.
func wrapInteractiveError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if interactive.IsCancellation(err) {
		output.Info("Operation cancelled.")
		return nil
	}
	return handleCommandError(cmd, err)
}
