// Package account defines the identity types of a zklink account: the key
// hash that authorizes layer-2 transactions and the layer-1 address.
package account

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"xdao.co/zklink/params"
	"xdao.co/zklink/serde"
	"xdao.co/zklink/zkcrypto"
)

// PubKeyHash is the hash of an account owner's public key.
//
// It authorizes the transaction author inside the circuit. The zero value is
// the "not set" sentinel of a fresh account; such accounts cannot execute
// layer-2 transactions.
type PubKeyHash struct {
	Data [params.FRAddressLen]byte
}

// Zero returns the unset sentinel.
func Zero() PubKeyHash {
	return PubKeyHash{}
}

// FromBytes copies b verbatim. It fails with serde.KindSizeMismatch unless
// len(b) == params.FRAddressLen.
func FromBytes(b []byte) (PubKeyHash, error) {
	var h PubKeyHash
	if err := serde.CheckLen("PubKeyHash", b, params.FRAddressLen); err != nil {
		return h, err
	}
	copy(h.Data[:], b)
	return h, nil
}

// FromHex decodes the "sync:"-prefixed form. Prefix, hex and size errors are
// reported with distinct serde kinds.
func FromHex(s string) (PubKeyHash, error) {
	b, err := serde.DecodePrefixed[serde.Sync](s)
	if err != nil {
		return PubKeyHash{}, err
	}
	return FromBytes(b)
}

// FromPublicKey hashes pk with the default hasher.
func FromPublicKey(pk *zkcrypto.PublicKey) PubKeyHash {
	return FromPublicKeyWith(zkcrypto.DefaultHasher, pk)
}

// FromPublicKeyWith hashes pk with hasher and reverses the hasher output
// before storing it. A failing hasher means the key object is corrupt and
// panics.
func FromPublicKeyWith(hasher zkcrypto.PubKeyHasher, pk *zkcrypto.PublicKey) PubKeyHash {
	raw, err := hasher.HashPubKey(pk)
	if err != nil {
		panic(fmt.Sprintf("account: pubkey hash: %v", err))
	}
	reversed := make([]byte, len(raw))
	for i := range raw {
		reversed[i] = raw[len(raw)-1-i]
	}
	h, err := FromBytes(reversed)
	if err != nil {
		panic(fmt.Sprintf("account: pubkey hash: %v", err))
	}
	return h
}

// FromPrivateKey derives the public key of sk and hashes it.
func FromPrivateKey(sk *zkcrypto.PrivateKey) PubKeyHash {
	return FromPublicKey(zkcrypto.PublicKeyFromPrivate(sk))
}

// Hex returns the "sync:"-prefixed lowercase hex form.
func (h PubKeyHash) Hex() string {
	return serde.EncodePrefixed[serde.Sync](h.Data[:])
}

func (h PubKeyHash) String() string { return h.Hex() }

// Bytes returns a copy of the raw bytes.
func (h PubKeyHash) Bytes() []byte {
	return append([]byte(nil), h.Data[:]...)
}

func (h PubKeyHash) IsZero() bool {
	return h == PubKeyHash{}
}

// Cmp orders hashes byte-wise, which matches the order of their hex forms.
func (h PubKeyHash) Cmp(o PubKeyHash) int {
	return bytes.Compare(h.Data[:], o.Data[:])
}

// Fr reads the bytes as a big-endian numeral and returns it as a field
// element. FRAddressLen is below the modulus width so this cannot fail for a
// well-formed hash; if it does, it panics.
func (h PubKeyHash) Fr() fr.Element {
	n, ok := new(big.Int).SetString(serde.EncodePrefixed[serde.ZeroX](h.Data[:]), 0)
	if !ok || n.Cmp(params.FieldModulus()) >= 0 {
		panic(fmt.Sprintf("account: %s is not a field element", h.Hex()))
	}
	var e fr.Element
	e.SetBigInt(n)
	return e
}

// Keccak256 hashes the raw bytes. Contracts check auth facts against this
// value instead of the circuit-side hash.
func (h PubKeyHash) Keccak256() zkcrypto.H256 {
	return zkcrypto.Keccak256(h.Data[:])
}

func (h PubKeyHash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *PubKeyHash) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
