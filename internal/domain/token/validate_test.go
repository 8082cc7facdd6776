package token

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		WalletAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		Network:       NetworkDevnet,
		Name:          "Test Token",
		Symbol:        "TEST",
		Supply:        "1000000",
		Decimals:      "9",
	}
}

func TestValidate_Valid(t *testing.T) {
	req, err := Validate(validForm())
	require.NoError(t, err)

	assert.Equal(t, "Test Token", req.Name)
	assert.Equal(t, "TEST", req.Symbol)
	assert.Equal(t, uint64(1000000), req.InitialSupply)
	assert.Equal(t, 9, req.Decimals)
	assert.Equal(t, NetworkDevnet, req.Network)
}

func TestValidate_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Form)
		field string
	}{
		{"no name", func(f *Form) { f.Name = "  " }, "name"},
		{"no symbol", func(f *Form) { f.Symbol = "" }, "symbol"},
		{"no supply", func(f *Form) { f.Supply = "" }, "supply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mut(&f)

			_, err := Validate(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingRequired)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidate_SupplyNotPositive(t *testing.T) {
	for _, supply := range []string{"0", "-1", "-1000", "abc", "1.5"} {
		t.Run(supply, func(t *testing.T) {
			f := validForm()
			f.Supply = supply

			req, err := Validate(f)
			assert.ErrorIs(t, err, ErrSupplyNotPositive)
			assert.Equal(t, Request{}, req)
		})
	}
}

func TestValidate_DecimalsRange(t *testing.T) {
	for _, d := range []string{"-1", "10", "99", "x"} {
		t.Run("reject "+d, func(t *testing.T) {
			f := validForm()
			f.Decimals = d
			_, err := Validate(f)
			assert.ErrorIs(t, err, ErrDecimalsOutOfRange)
		})
	}

	for d := MinDecimals; d <= MaxDecimals; d++ {
		t.Run("accept "+strconv.Itoa(d), func(t *testing.T) {
			f := validForm()
			f.Decimals = strconv.Itoa(d)
			req, err := Validate(f)
			require.NoError(t, err)
			assert.Equal(t, d, req.Decimals)
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	// Missing name, bad supply and bad decimals: only the presence error surfaces.
	f := Form{Symbol: "X", Supply: "", Decimals: "42"}
	_, err := Validate(f)
	assert.ErrorIs(t, err, ErrMissingRequired)

	// Bad supply and bad decimals: supply is checked first.
	f = validForm()
	f.Supply = "0"
	f.Decimals = "42"
	_, err = Validate(f)
	assert.ErrorIs(t, err, ErrSupplyNotPositive)
}

func TestValidate_Defaults(t *testing.T) {
	f := validForm()
	f.Decimals = ""
	f.Network = ""

	req, err := Validate(f)
	require.NoError(t, err)
	assert.Equal(t, DefaultDecimals, req.Decimals)
	assert.Equal(t, DefaultNetwork, req.Network)
}

func TestValidationError_UserMessage(t *testing.T) {
	err := &ValidationError{Field: "supply", Err: ErrSupplyNotPositive}
	assert.Equal(t, "Supply must be greater than 0", err.UserMessage())
	assert.True(t, err.ShouldSilenceUsage())
}
