package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	SystemProgramKey = MustPublicKeyFromBase58("11111111111111111111111111111111")
	TokenProgramKey  = MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	RentSysVarKey    = MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
)

// PublicKeyFromBase58 parses base58 text into a 32 byte public key.
func PublicKeyFromBase58(s string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode base58 public key %q", s)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid public key length: got %d, want %d, input=%q", len(decoded), ed25519.PublicKeySize, s)
	}
	return decoded, nil
}

// MustPublicKeyFromBase58 is PublicKeyFromBase58 for trusted constants.
func MustPublicKeyFromBase58(s string) ed25519.PublicKey {
	key, err := PublicKeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return key
}
