package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/di"
	"github.com/altuslabsxyz/token-launcher/internal/interactive"
	"github.com/altuslabsxyz/token-launcher/internal/tui"
	"github.com/altuslabsxyz/token-launcher/internal/wallet"
)

// walletStatus is the JSON shape of wallet status and wallet connect.
type walletStatus struct {
	Provider  string `json:"provider,omitempty"`
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
	Network   string `json:"network"`
}

func newWalletCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Inspect and connect the local Solana wallet",
		Long: `Inspect and connect the local Solana wallet.

The wallet is a solana-keygen keypair file (wallet.keypair, default
~/.config/solana/id.json) or a fixed public key (wallet.public_key). Only the
public key is ever read: nothing is signed.

Examples:
  # Show the wallet without prompting
  token-launcher wallet status

  # Connect and approve the wallet
  token-launcher wallet connect`,
	}

	cmd.AddCommand(
		newWalletStatusCmd(a),
		newWalletConnectCmd(a),
	)
	return cmd
}

func newWalletStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the wallet provider and trusted address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.container(cmd, a.resolved)
			defer c.Close()

			session := c.Session()
			session.ConnectSilently(cmd.Context())
			return printWalletStatus(cmd, a.resolved.JSON, session)
		},
	}
}

func newWalletConnectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the wallet, asking for approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.container(cmd, a.resolved, approverOption()...)
			defer c.Close()

			session := c.Session()
			if _, err := connectWallet(cmd.Context(), session); err != nil {
				return handleCommandError(cmd, err)
			}
			return printWalletStatus(cmd, a.resolved.JSON, session)
		},
	}
}

// approverOption prompts for connect approval on an interactive terminal.
func approverOption() []di.Option {
	if !tui.IsInteractive() {
		return nil
	}
	return []di.Option{di.WithApprover(interactive.ApproveConnect)}
}

// connectWallet reconnects silently when the wallet is trusted and falls back
// to an interactive connect.
func connectWallet(ctx context.Context, session *wallet.Session) (string, error) {
	if addr, ok := session.ConnectSilently(ctx); ok {
		return addr, nil
	}
	return session.Connect(ctx)
}

func printWalletStatus(cmd *cobra.Command, jsonMode bool, session *wallet.Session) error {
	st := session.State()
	status := walletStatus{
		Provider:  session.ProviderName(),
		Connected: st.Connected(),
		Address:   st.Address,
		Network:   st.Network.String(),
	}

	w := cmd.OutOrStdout()
	if jsonMode {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	provider := status.Provider
	if provider == "" {
		provider = "(none)"
	}
	fmt.Fprintf(w, "Provider: %s\n", provider)
	fmt.Fprintf(w, "Network:  %s\n", status.Network)
	if status.Connected {
		fmt.Fprintf(w, "Address:  %s\n", status.Address)
	} else {
		fmt.Fprintln(w, "Address:  not connected (run 'token-launcher wallet connect')")
	}
	return nil
}
