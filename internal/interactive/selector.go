package interactive

import (
	"errors"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
)

// Selector runs the guided token form. Values already set on the seed form
// (from flags) become prompt defaults.
type Selector struct {
	seed token.Form
}

// NewSelector creates a selector seeded with f.
func NewSelector(f token.Form) *Selector {
	return &Selector{seed: f}
}

// RunFormFlow prompts for every token field and a final confirmation.
// Returns a *CancellationError when the user aborts.
func (s *Selector) RunFormFlow() (*FormSelection, error) {
	f := s.seed

	// Step 1: Select network
	network, err := SelectNetwork(f.Network)
	if err != nil {
		return nil, err
	}
	f.Network = network

	// Step 2: Token identity
	if f.Name, err = promptField("Token name", "Name", f.Name, validateRequired); err != nil {
		return nil, err
	}
	if f.Symbol, err = promptField("Token symbol", "Symbol", f.Symbol, validateSymbol); err != nil {
		return nil, err
	}
	if f.Description, err = promptField("Description (optional)", "Description", f.Description, nil); err != nil {
		return nil, err
	}

	// Step 3: Supply
	supply := valueOr(f.Supply, strconv.Itoa(token.DefaultSupply))
	if f.Supply, err = promptField("Initial supply", "Supply", supply, validateSupply); err != nil {
		return nil, err
	}
	decimals := valueOr(f.Decimals, strconv.Itoa(token.DefaultDecimals))
	if f.Decimals, err = promptField("Decimals (0-9)", "Decimals", decimals, validateDecimals); err != nil {
		return nil, err
	}
	if f.ImageURL, err = promptField("Image URL (optional)", "Image", f.ImageURL, nil); err != nil {
		return nil, err
	}

	// Step 4: Authorities
	if !f.RevokeMintAuthority {
		if f.RevokeMintAuthority, err = promptYesNo("Revoke mint authority"); err != nil {
			return nil, err
		}
	}
	if !f.RevokeFreezeAuthority {
		if f.RevokeFreezeAuthority, err = promptYesNo("Revoke freeze authority"); err != nil {
			return nil, err
		}
	}

	// Step 5: Confirm
	confirmed, err := ConfirmForm(f)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, &CancellationError{Message: "Operation cancelled by user"}
	}

	return &FormSelection{Form: f, Confirmed: true}, nil
}

// handleInterruptError converts promptui errors to appropriate error types.
func handleInterruptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		return &CancellationError{Message: "Operation cancelled"}
	}
	if errors.Is(err, promptui.ErrEOF) {
		return &CancellationError{Message: "Operation cancelled (EOF)"}
	}
	return err
}

// CancellationError indicates the user cancelled the operation.
type CancellationError struct {
	Message string
}

func (e *CancellationError) Error() string {
	return e.Message
}

// ShouldSilenceUsage returns true: cancelling is not a usage mistake.
func (e *CancellationError) ShouldSilenceUsage() bool {
	return true
}

// IsCancellation returns true if the error is a cancellation error.
func IsCancellation(err error) bool {
	var c *CancellationError
	return errors.As(err, &c)
}
