package zkcrypto

import (
	"golang.org/x/crypto/sha3"

	"xdao.co/zklink/serde"
)

// H256 is a 256-bit hash. Its text form is "0x" followed by 64 hex digits.
type H256 [32]byte

// Keccak256 returns the legacy Keccak-256 hash of the concatenated inputs.
func Keccak256(data ...[]byte) H256 {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = d.Write(b)
	}
	var h H256
	d.Sum(h[:0])
	return h
}

func (h H256) Bytes() []byte { return h[:] }

func (h H256) Hex() string {
	return serde.EncodePrefixed[serde.ZeroX](h[:])
}

func (h H256) String() string { return h.Hex() }

func (h H256) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *H256) UnmarshalText(text []byte) error {
	b, err := serde.DecodePrefixed[serde.ZeroX](string(text))
	if err != nil {
		return err
	}
	if err := serde.CheckLen("H256", b, len(h)); err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}
