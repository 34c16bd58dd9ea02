package keys

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	"xdao.co/zklink/account"
	"xdao.co/zklink/zkcrypto"
)

const kdfDomain = "zklink-kms-lite-v1"

// DeriveRoleSeed deterministically derives a role-specific seed from a root seed.
func DeriveRoleSeed(rootSeed []byte, role string) ([]byte, error) {
	if len(rootSeed) != zkcrypto.SeedSize {
		return nil, fmt.Errorf("root seed must be %d bytes", zkcrypto.SeedSize)
	}
	if err := CheckRole(role); err != nil {
		return nil, err
	}

	h := sha3.New256()
	_, _ = h.Write(rootSeed)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(kdfDomain))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte("role:"))
	_, _ = h.Write([]byte(role))
	sum := h.Sum(nil)
	if len(sum) < zkcrypto.SeedSize {
		return nil, errors.New("kdf output too short")
	}
	out := make([]byte, zkcrypto.SeedSize)
	copy(out, sum[:zkcrypto.SeedSize])
	return out, nil
}

// KeyFromSeed returns the signing key for a seed.
func KeyFromSeed(seed []byte) (*zkcrypto.PrivateKey, error) {
	return zkcrypto.PrivateKeyFromSeed(seed)
}

// PubKeyHashFromSeed returns the PubKeyHash an account controlled by seed
// would register.
func PubKeyHashFromSeed(seed []byte) (account.PubKeyHash, error) {
	sk, err := KeyFromSeed(seed)
	if err != nil {
		return account.PubKeyHash{}, err
	}
	return account.FromPrivateKey(sk), nil
}
