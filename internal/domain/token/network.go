// Package token holds the token creation request, its validation rules and
// the result metadata produced once a token exists.
package token

import (
	"fmt"
	"strings"
)

// Network identifies the Solana cluster a token is created on.
type Network string

const (
	NetworkDevnet  Network = "devnet"
	NetworkMainnet Network = "mainnet"
)

// DefaultNetwork is used when neither config nor flags select a network.
const DefaultNetwork = NetworkDevnet

// Networks lists the selectable networks in display order.
var Networks = []Network{NetworkDevnet, NetworkMainnet}

// ParseNetwork parses a network name (case-insensitive). An empty string
// yields DefaultNetwork.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultNetwork, nil
	case string(NetworkDevnet):
		return NetworkDevnet, nil
	case string(NetworkMainnet), "mainnet-beta":
		return NetworkMainnet, nil
	default:
		return "", fmt.Errorf("unknown network %q: must be devnet or mainnet", s)
	}
}

// IsValid reports whether n is one of the supported networks.
func (n Network) IsValid() bool {
	return n == NetworkDevnet || n == NetworkMainnet
}

// String returns the string representation.
func (n Network) String() string {
	return string(n)
}

// Description returns a short human description for selection prompts.
func (n Network) Description() string {
	switch n {
	case NetworkMainnet:
		return "Solana mainnet-beta (real funds)"
	case NetworkDevnet:
		return "Solana devnet (free test tokens)"
	default:
		return ""
	}
}

// ExplorerURL returns the Solana explorer link for an address on n.
func (n Network) ExplorerURL(address string) string {
	if n == NetworkMainnet {
		return fmt.Sprintf("https://explorer.solana.com/address/%s", address)
	}
	return fmt.Sprintf("https://explorer.solana.com/address/%s?cluster=%s", address, n)
}
