package serde

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"xdao.co/zklink/params"
)

// maxDecimalExponent bounds positive exponents so "1e999999999" cannot force
// a huge allocation. Negative exponents are not capped: an integral value with
// exponent -n spells out n digits in the input itself.
const maxDecimalExponent = 4096

// BigUint is an arbitrary-precision non-negative integer whose text form is
// its base-10 representation.
//
// The zero value is 0. A BigUint is never mutated after construction.
type BigUint struct {
	v *big.Int
}

// NewBigUint copies x into a BigUint. Negative input fails with
// KindNegativeValue.
func NewBigUint(x *big.Int) (BigUint, error) {
	if x == nil {
		return BigUint{}, nil
	}
	if x.Sign() < 0 {
		return BigUint{}, newError(KindNegativeValue, "expected positive value")
	}
	return BigUint{v: new(big.Int).Set(x)}, nil
}

// MustBigUint is NewBigUint for values known to be non-negative.
func MustBigUint(x *big.Int) BigUint {
	b, err := NewBigUint(x)
	if err != nil {
		panic(err)
	}
	return b
}

func BigUintFromUint64(u uint64) BigUint {
	return BigUint{v: new(big.Int).SetUint64(u)}
}

func BigUintFromUint256(u *uint256.Int) BigUint {
	if u == nil {
		return BigUint{}
	}
	return BigUint{v: u.ToBig()}
}

// Int returns a copy of the value.
func (b BigUint) Int() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.v)
}

func (b BigUint) big() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return b.v
}

func (b BigUint) IsZero() bool {
	return b.v == nil || b.v.Sign() == 0
}

func (b BigUint) Cmp(o BigUint) int {
	return b.big().Cmp(o.big())
}

func (b BigUint) Equal(o BigUint) bool {
	return b.Cmp(o) == 0
}

// Uint64 returns the value and whether it fits in 64 bits.
func (b BigUint) Uint64() (uint64, bool) {
	v := b.big()
	if !v.IsUint64() {
		return 0, false
	}
	return v.Uint64(), true
}

// Uint256 returns the value and whether it fits in 256 bits.
func (b BigUint) Uint256() (*uint256.Int, bool) {
	u, overflow := uint256.FromBig(b.big())
	if overflow {
		return nil, false
	}
	return u, true
}

// FieldElement converts the value into the proof-system field without
// reduction. Values at or above the modulus fail with KindOutOfField.
func (b BigUint) FieldElement() (fr.Element, error) {
	var e fr.Element
	if b.big().Cmp(params.FieldModulus()) >= 0 {
		return e, newError(KindOutOfField, "value is not a canonical field element")
	}
	e.SetBigInt(b.big())
	return e, nil
}

func (b BigUint) String() string {
	return EncodeBigUint(b)
}

func (b BigUint) MarshalText() ([]byte, error) {
	return []byte(EncodeBigUint(b)), nil
}

func (b *BigUint) UnmarshalText(text []byte) error {
	v, err := DecodeBigUint(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b BigUint) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeBigUint(b))
}

// UnmarshalJSON accepts a JSON string or a bare JSON number. The literal text
// is parsed exactly in both cases.
func (b *BigUint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	return b.UnmarshalText([]byte(text))
}

// EncodeBigUint returns the canonical base-10 form of v.
//
// The value goes through an exact decimal with exponent 0; no binary
// floating point is involved.
func EncodeBigUint(v BigUint) string {
	return decimal.NewFromBigInt(v.big(), 0).String()
}

// DecodeBigUint parses s as an exact decimal and requires an integral,
// non-negative value.
func DecodeBigUint(s string) (BigUint, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return BigUint{}, err
	}
	return bigUintFromDecimal(d)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, wrapError(KindMalformedNumber, fmt.Sprintf("invalid decimal %q", s), err)
	}
	if d.Exponent() > maxDecimalExponent {
		return decimal.Decimal{}, newError(KindMalformedNumber, fmt.Sprintf("decimal exponent out of range in %q", s))
	}
	return d, nil
}

func bigUintFromDecimal(d decimal.Decimal) (BigUint, error) {
	if d.Sign() == 0 {
		// "0e-999999999" would otherwise walk every exponent digit.
		return BigUint{}, nil
	}
	if !d.IsInteger() {
		return BigUint{}, newError(KindFractionalValue, "expected integer value")
	}
	if d.Sign() < 0 {
		return BigUint{}, newError(KindNegativeValue, "expected positive value")
	}
	return BigUint{v: d.BigInt()}, nil
}

// EncodeBigUints encodes every element in order.
func EncodeBigUints(vs []BigUint) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = EncodeBigUint(v)
	}
	return out
}

// DecodeBigUints decodes every element in order. The first failure aborts
// the whole decode and no partial result is returned.
func DecodeBigUints(ss []string) ([]BigUint, error) {
	out := make([]BigUint, 0, len(ss))
	for i, s := range ss {
		v, err := DecodeBigUint(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeOptionalBigUint maps nil to nil.
func EncodeOptionalBigUint(v *BigUint) *string {
	if v == nil {
		return nil
	}
	s := EncodeBigUint(*v)
	return &s
}

// DecodeOptionalBigUint maps nil to nil and decodes present values.
func DecodeOptionalBigUint(s *string) (*BigUint, error) {
	if s == nil {
		return nil, nil
	}
	v, err := DecodeBigUint(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
