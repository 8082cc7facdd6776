// Package demo produces placeholder values for simulation mode.
//
// Nothing in this package is cryptographic. The strings it returns look like
// Solana addresses so that demo output has a realistic shape, but they are
// not valid public keys and must only be shown alongside a demo marker.
package demo

import "hash/fnv"

// AddressLength is the length of every string returned by SeedToDisplayString.
const AddressLength = 44

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// LCG constants for the per-character sequence.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeedToDisplayString returns a deterministic AddressLength-character string
// derived from seed. Equal seeds always yield equal output; any seed,
// including the empty string, is accepted.
func SeedToDisplayString(seed string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	state := h.Sum32() % lcgModulus

	out := make([]byte, AddressLength)
	for i := range out {
		state = (state*lcgMultiplier + lcgIncrement) % lcgModulus
		out[i] = alphabet[state%uint32(len(alphabet))]
	}
	return string(out)
}
