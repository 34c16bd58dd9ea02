package serde

import (
	"encoding/json"
	"math/big"

	"github.com/shopspring/decimal"
)

// RatioPrecision is the number of fractional digits kept when a ratio has no
// finite decimal expansion. Terminating ratios are always exact.
const RatioPrecision = 100

// EncodeRatio renders a non-negative ratio as a decimal string.
func EncodeRatio(r *big.Rat) string {
	if r == nil {
		return "0"
	}
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, RatioPrecision).String()
}

// DecodeRatio parses a decimal string into an exact non-negative ratio.
// Fractional digits are allowed.
func DecodeRatio(s string) (*big.Rat, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	if d.Sign() < 0 {
		return nil, newError(KindNegativeValue, "expected positive value")
	}
	return d.Rat(), nil
}

// UnsignedRatio is a non-negative rational carried as a decimal string, used
// for prices and fee ratios.
type UnsignedRatio struct {
	r *big.Rat
}

func NewUnsignedRatio(num, den BigUint) (UnsignedRatio, error) {
	if den.IsZero() {
		return UnsignedRatio{}, newError(KindMalformedNumber, "zero denominator")
	}
	return UnsignedRatio{r: new(big.Rat).SetFrac(num.Int(), den.Int())}, nil
}

// Rat returns a copy of the value.
func (u UnsignedRatio) Rat() *big.Rat {
	if u.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(u.r)
}

func (u UnsignedRatio) String() string {
	return EncodeRatio(u.r)
}

func (u UnsignedRatio) MarshalText() ([]byte, error) {
	return []byte(EncodeRatio(u.r)), nil
}

func (u *UnsignedRatio) UnmarshalText(text []byte) error {
	r, err := DecodeRatio(string(text))
	if err != nil {
		return err
	}
	u.r = r
	return nil
}

func (u UnsignedRatio) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeRatio(u.r))
}

func (u *UnsignedRatio) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}
