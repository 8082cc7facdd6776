package token

import (
	"strconv"

	"cosmossdk.io/math"
)

// Limits enforced by the validator.
const (
	MinDecimals     = 0
	MaxDecimals     = 9
	DefaultDecimals = 9
	DefaultSupply   = 1000000
)

// Request is a validated token creation request. It is built only by
// Validate and is passed around by value.
type Request struct {
	WalletAddress         string  `json:"wallet_address" yaml:"wallet_address"`
	Network               Network `json:"network" yaml:"network"`
	Name                  string  `json:"name" yaml:"name"`
	Symbol                string  `json:"symbol" yaml:"symbol"`
	Description           string  `json:"description,omitempty" yaml:"description,omitempty"`
	InitialSupply         uint64  `json:"initial_supply" yaml:"initial_supply"`
	Decimals              int     `json:"decimals" yaml:"decimals"`
	ImageURL              string  `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	RevokeMintAuthority   bool    `json:"revoke_mint_authority" yaml:"revoke_mint_authority"`
	RevokeFreezeAuthority bool    `json:"revoke_freeze_authority" yaml:"revoke_freeze_authority"`
}

// BaseUnits returns the initial supply expressed in the token's smallest
// unit (supply * 10^decimals). The product can exceed 64 bits.
func (r Request) BaseUnits() math.Int {
	return math.NewIntFromUint64(r.InitialSupply).Mul(math.NewIntWithDecimal(1, r.Decimals))
}

// Inputs returns the request as the flat string map accepted by workflow
// dispatch inputs.
func (r Request) Inputs() map[string]string {
	return map[string]string{
		"wallet_address":          r.WalletAddress,
		"network":                 r.Network.String(),
		"token_name":              r.Name,
		"token_symbol":            r.Symbol,
		"token_description":       r.Description,
		"initial_supply":          formatUint(r.InitialSupply),
		"decimals":                strconv.Itoa(r.Decimals),
		"image_url":               r.ImageURL,
		"revoke_mint_authority":   strconv.FormatBool(r.RevokeMintAuthority),
		"revoke_freeze_authority": strconv.FormatBool(r.RevokeFreezeAuthority),
	}
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
