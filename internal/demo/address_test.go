package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedToDisplayString_Deterministic(t *testing.T) {
	seeds := []string{
		"",
		"a",
		"TEST",
		"Test Token TEST 9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		"日本語のシード",
		strings.Repeat("long seed ", 1000),
	}

	for _, seed := range seeds {
		first := SeedToDisplayString(seed)
		second := SeedToDisplayString(seed)

		assert.Equal(t, first, second, "seed %q", seed)
		assert.Len(t, first, AddressLength, "seed %q", seed)
		for _, r := range first {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestSeedToDisplayString_VariesWithSeed(t *testing.T) {
	assert.NotEqual(t, SeedToDisplayString("mint:TEST"), SeedToDisplayString("account:TEST"))
}
