package wallet

import (
	"errors"
	"fmt"
)

// DefaultInstallURL is offered when no wallet is available.
const DefaultInstallURL = "https://docs.solanalabs.com/cli/install"

// ErrNotConnected is returned by operations that need a connected wallet.
var ErrNotConnected = errors.New("wallet not connected")

// ErrNotTrusted is returned by a silent connect the user has not approved.
var ErrNotTrusted = errors.New("wallet has not been trusted for silent reconnect")

// ProviderNotFoundError indicates no compatible wallet provider is present.
type ProviderNotFoundError struct {
	InstallURL string
}

func (e *ProviderNotFoundError) Error() string {
	return "no compatible Solana wallet found"
}

// ShouldSilenceUsage returns true: the fix is outside this program.
func (e *ProviderNotFoundError) ShouldSilenceUsage() bool {
	return true
}

// UserMessage returns the user-friendly error message.
func (e *ProviderNotFoundError) UserMessage() string {
	return "No compatible Solana wallet found. Install one to continue."
}

// RecoveryHint points at the install page.
func (e *ProviderNotFoundError) RecoveryHint() string {
	url := e.InstallURL
	if url == "" {
		url = DefaultInstallURL
	}
	return fmt.Sprintf(`Install the Solana CLI wallet: %s
  Then either create ~/.config/solana/id.json (solana-keygen new)
  or set [wallet] keypair / public_key in config.toml.`, url)
}

// RejectedError indicates the provider (or the user) refused to connect.
type RejectedError struct {
	Provider string
	Message  string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected the connection: %s", e.Provider, e.Message)
}

func (e *RejectedError) ShouldSilenceUsage() bool {
	return true
}

// UserMessage returns the provider's message.
func (e *RejectedError) UserMessage() string {
	return "Failed to connect wallet: " + e.Message
}
