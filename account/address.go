package account

import (
	"bytes"

	"xdao.co/zklink/serde"
)

const (
	// EVMAddressLen is the width of an address on EVM-style chains.
	EVMAddressLen = 20
	// WideAddressLen is the width of an address on chains with 32-byte
	// account identifiers.
	WideAddressLen = 32
)

// Address is a layer-1 address carried as "0x"-prefixed hex.
type Address struct {
	b []byte
}

// AddressFromBytes copies b. Only EVMAddressLen and WideAddressLen are
// accepted.
func AddressFromBytes(b []byte) (Address, error) {
	if err := serde.CheckLenOneOf("address", b, EVMAddressLen, WideAddressLen); err != nil {
		return Address{}, err
	}
	return Address{b: append([]byte(nil), b...)}, nil
}

// ParseAddress decodes the "0x"-prefixed form.
func ParseAddress(s string) (Address, error) {
	b, err := serde.DecodePrefixed[serde.ZeroX](s)
	if err != nil {
		return Address{}, err
	}
	return AddressFromBytes(b)
}

func (a Address) Bytes() []byte {
	return append([]byte(nil), a.b...)
}

func (a Address) Len() int { return len(a.b) }

// IsZero reports whether the address is unset or all zero bytes.
func (a Address) IsZero() bool {
	for _, c := range a.b {
		if c != 0 {
			return false
		}
	}
	return true
}

func (a Address) Equal(o Address) bool {
	return bytes.Equal(a.b, o.b)
}

func (a Address) Hex() string {
	return serde.EncodePrefixed[serde.ZeroX](a.b)
}

func (a Address) String() string { return a.Hex() }

// MarshalText writes an unset address as the bare prefix "0x", which
// UnmarshalText reads back as unset.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	if string(text) == serde.PrefixOf[serde.ZeroX]() {
		*a = Address{}
		return nil
	}
	v, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
