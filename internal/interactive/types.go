package interactive

import (
	"fmt"
	"strings"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
)

// NetworkOption represents a network option for selection.
type NetworkOption struct {
	Name        string
	Description string
}

// NetworkOptions returns the selectable networks in display order.
func NetworkOptions() []NetworkOption {
	opts := make([]NetworkOption, len(token.Networks))
	for i, n := range token.Networks {
		opts[i] = NetworkOption{Name: n.String(), Description: n.Description()}
	}
	return opts
}

// FormSelection is the result of the guided token form.
type FormSelection struct {
	Form      token.Form
	Confirmed bool
}

// Summary renders the form as shown before confirmation.
func Summary(f token.Form) string {
	var b strings.Builder
	b.WriteString("\nCreating token with:\n")
	fmt.Fprintf(&b, "  Network:  %s\n", f.Network)
	fmt.Fprintf(&b, "  Name:     %s\n", f.Name)
	fmt.Fprintf(&b, "  Symbol:   %s\n", f.Symbol)
	fmt.Fprintf(&b, "  Supply:   %s\n", f.Supply)
	fmt.Fprintf(&b, "  Decimals: %s\n", valueOr(f.Decimals, fmt.Sprint(token.DefaultDecimals)))
	if f.Description != "" {
		fmt.Fprintf(&b, "  About:    %s\n", f.Description)
	}
	if f.ImageURL != "" {
		fmt.Fprintf(&b, "  Image:    %s\n", f.ImageURL)
	}
	if f.RevokeMintAuthority {
		b.WriteString("  Mint authority will be revoked\n")
	}
	if f.RevokeFreezeAuthority {
		b.WriteString("  Freeze authority will be revoked\n")
	}
	return b.String()
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
