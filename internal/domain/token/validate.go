package token

import (
	"errors"
	"strconv"
	"strings"
)

// Form carries raw field values as entered by the user. Numeric fields stay
// strings so that "empty" and "not a number" can be told apart.
type Form struct {
	WalletAddress         string
	Network               Network
	Name                  string
	Symbol                string
	Description           string
	Supply                string
	Decimals              string
	ImageURL              string
	RevokeMintAuthority   bool
	RevokeFreezeAuthority bool
}

// Validation error sentinels, in the order they are checked.
var (
	ErrMissingRequired    = errors.New("please fill in all required fields (name, symbol, supply)")
	ErrSupplyNotPositive  = errors.New("supply must be greater than 0")
	ErrDecimalsOutOfRange = errors.New("decimals must be between 0 and 9")
)

// ValidationError reports the first failing check for a form field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ShouldSilenceUsage returns true: the command was correct, the input was not.
func (e *ValidationError) ShouldSilenceUsage() bool {
	return true
}

// UserMessage returns the message shown in the status region.
func (e *ValidationError) UserMessage() string {
	msg := e.Err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// Validate checks f and builds a Request. Checks run in a fixed order and
// only the first failure is returned:
//  1. name, symbol and supply are present
//  2. supply is a whole number greater than 0
//  3. decimals is a whole number in [0, 9] (empty means DefaultDecimals)
func Validate(f Form) (Request, error) {
	name := strings.TrimSpace(f.Name)
	symbol := strings.TrimSpace(f.Symbol)
	supplyRaw := strings.TrimSpace(f.Supply)

	if name == "" || symbol == "" || supplyRaw == "" {
		field := "supply"
		switch {
		case name == "":
			field = "name"
		case symbol == "":
			field = "symbol"
		}
		return Request{}, &ValidationError{Field: field, Err: ErrMissingRequired}
	}

	supply, err := parseSupply(supplyRaw)
	if err != nil {
		return Request{}, &ValidationError{Field: "supply", Err: ErrSupplyNotPositive}
	}

	decimals := DefaultDecimals
	if raw := strings.TrimSpace(f.Decimals); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < MinDecimals || d > MaxDecimals {
			return Request{}, &ValidationError{Field: "decimals", Err: ErrDecimalsOutOfRange}
		}
		decimals = d
	}

	network := f.Network
	if network == "" {
		network = DefaultNetwork
	}

	return Request{
		WalletAddress:         strings.TrimSpace(f.WalletAddress),
		Network:               network,
		Name:                  name,
		Symbol:                symbol,
		Description:           strings.TrimSpace(f.Description),
		InitialSupply:         supply,
		Decimals:              decimals,
		ImageURL:              strings.TrimSpace(f.ImageURL),
		RevokeMintAuthority:   f.RevokeMintAuthority,
		RevokeFreezeAuthority: f.RevokeFreezeAuthority,
	}, nil
}

// parseSupply accepts a base-10 integer. Zero, negative and non-numeric
// values are all rejected.
func parseSupply(raw string) (uint64, error) {
	if strings.HasPrefix(raw, "-") {
		return 0, ErrSupplyNotPositive
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, 64)
	if err != nil || v == 0 {
		return 0, ErrSupplyNotPositive
	}
	return v, nil
}
