package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/demo"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Demo-mode helpers",
		Long: `Helpers for the offline demo mode.

Demo values are display strings shaped like Solana addresses. They are not
valid public keys and never exist on chain.`,
	}
	cmd.AddCommand(newDemoAddressCmd())
	return cmd
}

func newDemoAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <seed>",
		Short: "Print the demo address derived from a seed",
		Long: `Print the deterministic demo address derived from a seed.

Equal seeds always give the same address. The simulation seeds the mint
with "mint:<symbol>:<wallet>" and the token account with
"account:<name>:<wallet>".

Examples:
  token-launcher demo address "mint:MTK:9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), demo.SeedToDisplayString(args[0]))
			return nil
		},
	}
}
