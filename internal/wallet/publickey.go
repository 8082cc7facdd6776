package wallet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
)

// ParsePublicKey validates a base58 Solana public key and returns its
// canonical string form.
func ParsePublicKey(s string) (string, error) {
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return "", fmt.Errorf("invalid public key %q: %w", s, err)
	}
	return pk.String(), nil
}

// PublicKeyFromKeypairFile reads a solana-keygen JSON keypair and returns
// only its public half. The private key is discarded immediately.
func PublicKeyFromKeypairFile(path string) (string, error) {
	priv, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read keypair %s: %w", path, err)
	}
	return priv.PublicKey().String(), nil
}

// DefaultKeypairPath returns the Solana CLI default keypair location, or ""
// when it does not exist.
func DefaultKeypairPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "solana", "id.json")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
