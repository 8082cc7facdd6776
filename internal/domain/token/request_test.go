package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_BaseUnits(t *testing.T) {
	req := Request{InitialSupply: 1000000, Decimals: 9}
	assert.Equal(t, "1000000000000000", req.BaseUnits().String())

	req = Request{InitialSupply: 42, Decimals: 0}
	assert.Equal(t, "42", req.BaseUnits().String())

	// Exceeds uint64 without overflowing.
	req = Request{InitialSupply: 18446744073709551615, Decimals: 9}
	assert.Equal(t, "18446744073709551615000000000", req.BaseUnits().String())
}

func TestRequest_Inputs(t *testing.T) {
	req := Request{
		WalletAddress:       "wallet",
		Network:             NetworkMainnet,
		Name:                "Name",
		Symbol:              "SYM",
		InitialSupply:       5,
		Decimals:            2,
		RevokeMintAuthority: true,
	}

	in := req.Inputs()
	assert.Equal(t, "mainnet", in["network"])
	assert.Equal(t, "5", in["initial_supply"])
	assert.Equal(t, "2", in["decimals"])
	assert.Equal(t, "true", in["revoke_mint_authority"])
	assert.Equal(t, "false", in["revoke_freeze_authority"])
}

func TestParseNetwork(t *testing.T) {
	n, err := ParseNetwork("")
	require.NoError(t, err)
	assert.Equal(t, NetworkDevnet, n)

	n, err = ParseNetwork("MainNet")
	require.NoError(t, err)
	assert.Equal(t, NetworkMainnet, n)

	_, err = ParseNetwork("testnet")
	assert.Error(t, err)
}

func TestNetwork_ExplorerURL(t *testing.T) {
	assert.Equal(t, "https://explorer.solana.com/address/abc?cluster=devnet", NetworkDevnet.ExplorerURL("abc"))
	assert.Equal(t, "https://explorer.solana.com/address/abc", NetworkMainnet.ExplorerURL("abc"))
}

func TestNewResult(t *testing.T) {
	req := Request{
		Network:               NetworkDevnet,
		Name:                  "Test",
		Symbol:                "TST",
		InitialSupply:         10,
		Decimals:              1,
		RevokeFreezeAuthority: true,
	}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	res := NewResult(req, "mint", "account", false, now)
	assert.False(t, res.Demo)
	assert.Equal(t, "100", res.BaseUnits)
	assert.Equal(t, NetworkDevnet.ExplorerURL("mint"), res.ExplorerURL)
	assert.Nil(t, res.AuthorityRevocation.MintAuthorityRevoked)
	require.NotNil(t, res.AuthorityRevocation.FreezeAuthorityRevoked)
	assert.True(t, *res.AuthorityRevocation.FreezeAuthorityRevoked)

	demo := NewResult(req, "mint", "account", true, now)
	assert.True(t, demo.Demo)
	assert.Empty(t, demo.ExplorerURL)
}
