package zkcrypto

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	"xdao.co/zklink/params"
)

// PubKeyHasher computes the raw key hash of a public key.
//
// The returned buffer is params.FRAddressLen bytes in little-endian order,
// the order a circuit hash gadget emits its truncated output bits in.
type PubKeyHasher interface {
	HashPubKey(pk *PublicKey) ([]byte, error)
}

// MiMCHasher hashes the public key coordinates with MiMC over the BN254
// scalar field and keeps the low params.FRAddressLen bytes of the digest.
type MiMCHasher struct{}

// DefaultHasher is the hasher used by account.FromPublicKey.
var DefaultHasher PubKeyHasher = MiMCHasher{}

func (MiMCHasher) HashPubKey(pk *PublicKey) ([]byte, error) {
	if pk == nil {
		return nil, fmt.Errorf("nil public key")
	}
	h := mimc.NewMiMC()
	if _, err := h.Write(PublicKeyBytes(pk)); err != nil {
		return nil, fmt.Errorf("mimc write: %w", err)
	}
	digest := h.Sum(nil)
	if len(digest) < params.FRAddressLen {
		return nil, fmt.Errorf("mimc digest too short: %d bytes", len(digest))
	}
	low := digest[len(digest)-params.FRAddressLen:]
	out := make([]byte, params.FRAddressLen)
	for i := range low {
		out[i] = low[len(low)-1-i]
	}
	return out, nil
}
