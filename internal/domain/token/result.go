package token

import "time"

// Metadata mirrors the token_metadata.json document written by the
// creation workflow.
type Metadata struct {
	Name        string    `json:"name" yaml:"name"`
	Symbol      string    `json:"symbol" yaml:"symbol"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string    `json:"image,omitempty" yaml:"image,omitempty"`
	Mint        string    `json:"mint" yaml:"mint"`
	Decimals    int       `json:"decimals" yaml:"decimals"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Network     Network   `json:"network" yaml:"network"`
}

// AuthorityRevocation records which authorities were revoked after minting.
type AuthorityRevocation struct {
	MintAuthorityRevoked   *bool `json:"mint_authority_revoked,omitempty" yaml:"mint_authority_revoked,omitempty"`
	FreezeAuthorityRevoked *bool `json:"freeze_authority_revoked,omitempty" yaml:"freeze_authority_revoked,omitempty"`
}

// IsEmpty reports whether no revocation was requested.
func (a AuthorityRevocation) IsEmpty() bool {
	return a.MintAuthorityRevoked == nil && a.FreezeAuthorityRevoked == nil
}

// Result describes a created token. Demo results are fabricated locally and
// their addresses are display strings, never on-chain accounts.
type Result struct {
	Demo                bool                `json:"demo" yaml:"demo"`
	MintAddress         string              `json:"mint_address" yaml:"mint_address"`
	TokenAccount        string              `json:"token_account" yaml:"token_account"`
	Network             Network             `json:"network" yaml:"network"`
	Supply              string              `json:"supply" yaml:"supply"`
	BaseUnits           string              `json:"base_units" yaml:"base_units"`
	ExplorerURL         string              `json:"explorer_url,omitempty" yaml:"explorer_url,omitempty"`
	Metadata            Metadata            `json:"metadata" yaml:"metadata"`
	AuthorityRevocation AuthorityRevocation `json:"authority_revocation,omitempty" yaml:"authority_revocation,omitempty"`
}

// NewResult assembles a Result for req with the given addresses.
func NewResult(req Request, mint, account string, demo bool, now time.Time) Result {
	res := Result{
		Demo:         demo,
		MintAddress:  mint,
		TokenAccount: account,
		Network:      req.Network,
		Supply:       formatUint(req.InitialSupply),
		BaseUnits:    req.BaseUnits().String(),
		Metadata: Metadata{
			Name:        req.Name,
			Symbol:      req.Symbol,
			Description: req.Description,
			Image:       req.ImageURL,
			Mint:        mint,
			Decimals:    req.Decimals,
			CreatedAt:   now.UTC(),
			Network:     req.Network,
		},
	}
	// Demo addresses do not exist on any cluster, so no explorer link.
	if !demo {
		res.ExplorerURL = req.Network.ExplorerURL(mint)
	}
	if req.RevokeMintAuthority {
		v := true
		res.AuthorityRevocation.MintAuthorityRevoked = &v
	}
	if req.RevokeFreezeAuthority {
		v := true
		res.AuthorityRevocation.FreezeAuthorityRevoked = &v
	}
	return res
}
