package zkcrypto

import (
	"bytes"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
)

// SeedSize is the length of the seed accepted by PrivateKeyFromSeed.
const SeedSize = 32

// CompressedPublicKeySize is the length of a compressed public key.
const CompressedPublicKeySize = 32

type (
	PrivateKey = eddsa.PrivateKey
	PublicKey  = eddsa.PublicKey
)

// GenerateKey reads a seed from r and derives a key pair from it.
func GenerateKey(r io.Reader) (*PrivateKey, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return PrivateKeyFromSeed(seed)
}

// PrivateKeyFromSeed deterministically derives a private key from a
// SeedSize-byte seed.
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return eddsa.GenerateKey(bytes.NewReader(seed))
}

// PublicKeyFromPrivate returns the public half of sk.
func PublicKeyFromPrivate(sk *PrivateKey) *PublicKey {
	pk := sk.PublicKey
	return &pk
}

// PublicKeyBytes returns the canonical encoding hashed into a key hash:
// the big-endian X coordinate followed by the big-endian Y coordinate.
func PublicKeyBytes(pk *PublicKey) []byte {
	x := pk.A.X.Bytes()
	y := pk.A.Y.Bytes()
	out := make([]byte, 0, len(x)+len(y))
	out = append(out, x[:]...)
	return append(out, y[:]...)
}

// CompressPublicKey returns the 32-byte compressed point.
func CompressPublicKey(pk *PublicKey) []byte {
	return pk.Bytes()
}

// ParsePublicKey decodes a compressed point and checks it lies on the curve.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != CompressedPublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", CompressedPublicKeySize, len(b))
	}
	var pk PublicKey
	if _, err := pk.SetBytes(b); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	if !pk.A.IsOnCurve() {
		return nil, fmt.Errorf("invalid public key: point not on curve")
	}
	return &pk, nil
}
